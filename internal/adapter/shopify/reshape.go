package shopify

import (
	"net/url"
	"slices"
	"strings"

	"github.com/niksmo/storefront/internal/adapter/upstream"
	"github.com/niksmo/storefront/internal/core/domain"
)

func reshapeMoney(m money) domain.Money {
	return domain.Money(m)
}

func reshapeImage(img *image) *domain.Image {
	if img == nil {
		return nil
	}
	v := domain.Image(*img)
	return &v
}

func reshapeSelectedOptions(opts []selectedOption) []domain.SelectedOption {
	res := make([]domain.SelectedOption, len(opts))
	for i, o := range opts {
		res[i] = domain.SelectedOption(o)
	}
	return res
}

func reshapeCart(c cart) domain.Cart {
	tax := domain.ZeroTax()
	if c.Cost.TotalTaxAmount != nil {
		tax = reshapeMoney(*c.Cost.TotalTaxAmount)
	}

	return domain.Cart{
		ID:          c.ID,
		CheckoutURL: c.CheckoutURL,
		Cost: domain.CartCost{
			SubtotalAmount: reshapeMoney(c.Cost.SubtotalAmount),
			TotalAmount:    reshapeMoney(c.Cost.TotalAmount),
			TotalTaxAmount: tax,
		},
		Lines:         upstream.MapNodes(c.Lines, reshapeCartLine),
		TotalQuantity: c.TotalQuantity,
	}
}

func reshapeCartLine(l cartLine) domain.CartLine {
	p := l.Merchandise.Product
	return domain.CartLine{
		ID:       l.ID,
		Quantity: l.Quantity,
		Cost: domain.CartLineCost{
			AmountPerQuantity: reshapeMoney(l.Cost.AmountPerQuantity),
			TotalAmount:       reshapeMoney(l.Cost.TotalAmount),
		},
		Merchandise: domain.CartMerchandise{
			ID:              l.Merchandise.ID,
			Title:           l.Merchandise.Title,
			SelectedOptions: reshapeSelectedOptions(l.Merchandise.SelectedOptions),
			Product: domain.CartProduct{
				ID:            p.ID,
				Handle:        p.Handle,
				Title:         p.Title,
				FeaturedImage: reshapeImage(p.FeaturedImage),
			},
		},
	}
}

// reshapeProduct returns nil for an absent product.
func reshapeProduct(p *product) *domain.Product {
	if p == nil {
		return nil
	}

	v := &domain.Product{
		ID:               p.ID,
		Handle:           p.Handle,
		AvailableForSale: p.AvailableForSale,
		Title:            p.Title,
		Description:      p.Description,
		DescriptionHTML:  p.DescriptionHTML,
		Vendor:           p.Vendor,
		ProductType:      p.ProductType,
		Options:          make([]domain.ProductOption, len(p.Options)),
		Variants:         upstream.MapNodes(p.Variants, reshapeVariant),
		Images: upstream.MapNodes(p.Images, func(img image) domain.Image {
			return domain.Image(img)
		}),
		FeaturedImage: reshapeImage(p.FeaturedImage),
		PriceRange: domain.PriceRange{
			MinVariantPrice: reshapeMoney(p.PriceRange.MinVariantPrice),
			MaxVariantPrice: reshapeMoney(p.PriceRange.MaxVariantPrice),
		},
		SEO:       domain.SEO(p.SEO),
		Tags:      slices.Clone(p.Tags),
		UpdatedAt: p.UpdatedAt,
	}
	if v.Tags == nil {
		v.Tags = []string{}
	}
	for i, o := range p.Options {
		v.Options[i] = domain.ProductOption{ID: o.ID, Name: o.Name, Values: slices.Clone(o.Values)}
	}
	return v
}

// reshapeProducts drops products carrying hiddenTag.
func reshapeProducts(ps []product, hiddenTag string) []domain.Product {
	res := make([]domain.Product, 0, len(ps))
	for i := range ps {
		if hiddenTag != "" && slices.Contains(ps[i].Tags, hiddenTag) {
			continue
		}
		res = append(res, *reshapeProduct(&ps[i]))
	}
	return res
}

func reshapeVariant(vr variant) domain.ProductVariant {
	v := domain.ProductVariant{
		ID:               vr.ID,
		Title:            vr.Title,
		AvailableForSale: vr.AvailableForSale,
		SelectedOptions:  reshapeSelectedOptions(vr.SelectedOptions),
		Price:            reshapeMoney(vr.Price),
	}
	if vr.CompareAtPrice != nil {
		compareAt := reshapeMoney(*vr.CompareAtPrice)
		v.CompareAtPrice = &compareAt
	}
	return v
}

// reshapeCollection returns nil for an absent collection.
func reshapeCollection(c *collection) *domain.Collection {
	if c == nil {
		return nil
	}
	return &domain.Collection{
		Handle:      c.Handle,
		Title:       c.Title,
		Description: c.Description,
		SEO:         domain.SEO(c.SEO),
		Path:        domain.CollectionPath(c.Handle),
		UpdatedAt:   c.UpdatedAt,
	}
}

func reshapeCollections(cs []collection) []domain.Collection {
	res := make([]domain.Collection, len(cs))
	for i := range cs {
		res[i] = *reshapeCollection(&cs[i])
	}
	return res
}

// menuPath turns a menu item url into a storefront path: the store domain
// is dropped, collections are browsed under /search and pages live at the
// root.
func menuPath(raw string) string {
	path := raw
	if u, err := url.Parse(raw); err == nil {
		path = u.EscapedPath()
		if path == "" {
			path = "/"
		}
	}
	path = strings.Replace(path, "/collections", "/search", 1)
	path = strings.Replace(path, "/pages", "", 1)
	return path
}

func reshapeMenu(items []menuItem) []domain.Menu {
	res := make([]domain.Menu, len(items))
	for i, item := range items {
		res[i] = domain.Menu{ID: item.ID, Title: item.Title, Path: menuPath(item.URL)}
	}
	return res
}

func reshapePage(p *page) *domain.Page {
	if p == nil {
		return nil
	}
	v := &domain.Page{
		ID:          p.ID,
		Handle:      p.Handle,
		Title:       p.Title,
		Body:        p.Body,
		BodySummary: p.BodySummary,
		SEO:         domain.SEO{Title: p.Title, Description: p.BodySummary},
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.SEO != nil && p.SEO.Title != "" {
		v.SEO = domain.SEO(*p.SEO)
	}
	return v
}

func reshapePages(ps []page) []domain.Page {
	res := make([]domain.Page, len(ps))
	for i := range ps {
		res[i] = *reshapePage(&ps[i])
	}
	return res
}

// collectionSortKey maps a product sort key to ProductCollectionSortKeys.
func collectionSortKey(key string) string {
	if key == domain.SortCreatedAt {
		return "CREATED"
	}
	return key
}
