package bigcommerce

import (
	"slices"
	"strconv"
	"strings"

	"github.com/niksmo/storefront/internal/adapter/upstream"
	"github.com/niksmo/storefront/internal/core/domain"
)

const availableStatus = "Available"

func handleFromPath(path string) string {
	return strings.Trim(path, "/")
}

func pathFromHandle(handle string) string {
	return "/" + strings.Trim(handle, "/") + "/"
}

func reshapeMoney(m *money) domain.Money {
	if m == nil {
		return domain.Money{}
	}
	return domain.Money{Amount: string(m.Value), CurrencyCode: m.CurrencyCode}
}

func reshapeCartMoney(m cartMoney) domain.Money {
	return domain.Money{Amount: string(m.Amount), CurrencyCode: m.CurrencyCode}
}

func reshapeSEO(s seo) domain.SEO {
	return domain.SEO{Title: s.PageTitle, Description: s.MetaDescription}
}

func reshapeCart(c cart) domain.Cart {
	tax := domain.ZeroTax()
	if c.Cost.TotalTaxAmount != nil {
		tax = reshapeCartMoney(*c.Cost.TotalTaxAmount)
	}

	return domain.Cart{
		ID:          c.ID,
		CheckoutURL: c.CheckoutURL,
		Cost: domain.CartCost{
			SubtotalAmount: reshapeCartMoney(c.Cost.SubtotalAmount),
			TotalAmount:    reshapeCartMoney(c.Cost.TotalAmount),
			TotalTaxAmount: tax,
		},
		Lines:         upstream.MapNodes(c.Lines, reshapeCartLine),
		TotalQuantity: c.TotalQuantity,
	}
}

func reshapeCartLine(l cartLine) (v domain.CartLine) {
	v.ID = l.ID
	v.Quantity = l.Quantity
	v.Cost.AmountPerQuantity = reshapeCartMoney(l.Cost.AmountPerQuantity)
	v.Cost.TotalAmount = reshapeCartMoney(l.Cost.TotalAmount)
	v.Merchandise.ID = l.Merchandise.ID
	v.Merchandise.Title = l.Merchandise.Title
	v.Merchandise.SelectedOptions = make([]domain.SelectedOption, len(l.Merchandise.SelectedOptions))
	for i, o := range l.Merchandise.SelectedOptions {
		v.Merchandise.SelectedOptions[i] = domain.SelectedOption(o)
	}
	p := l.Merchandise.Product
	v.Merchandise.Product = domain.CartProduct{ID: p.ID, Handle: p.Handle, Title: p.Title}
	if img := p.FeaturedImage; img != nil {
		v.Merchandise.Product.FeaturedImage = &domain.Image{
			URL: img.URL, AltText: img.AltText, Width: img.Width, Height: img.Height,
		}
	}
	return
}

// reshapeRESTCart maps a storefront REST cart, which carries no tax and no
// line connection.
func reshapeRESTCart(c restCart) domain.Cart {
	currency := c.Currency.Code
	v := domain.Cart{
		ID: c.ID,
		Cost: domain.CartCost{
			SubtotalAmount: domain.Money{Amount: string(c.BaseAmount), CurrencyCode: currency},
			TotalAmount:    domain.Money{Amount: string(c.CartAmount), CurrencyCode: currency},
			TotalTaxAmount: domain.ZeroTax(),
		},
		Lines: []domain.CartLine{},
	}
	if c.RedirectURLs != nil {
		v.CheckoutURL = c.RedirectURLs.CheckoutURL
	}

	items := slices.Concat(c.LineItems.PhysicalItems, c.LineItems.DigitalItems)
	for _, item := range items {
		line := domain.CartLine{
			ID:       item.ID,
			Quantity: item.Quantity,
			Cost: domain.CartLineCost{
				AmountPerQuantity: domain.Money{Amount: string(item.SalePrice), CurrencyCode: currency},
				TotalAmount:       domain.Money{Amount: string(item.ExtendedSalePrice), CurrencyCode: currency},
			},
			Merchandise: domain.CartMerchandise{
				ID:              strconv.Itoa(item.VariantID),
				Title:           item.Name,
				SelectedOptions: make([]domain.SelectedOption, len(item.Options)),
				Product: domain.CartProduct{
					ID:    strconv.Itoa(item.ProductID),
					Title: item.Name,
				},
			},
		}
		for i, o := range item.Options {
			line.Merchandise.SelectedOptions[i] = domain.SelectedOption{Name: o.Name, Value: o.Value}
		}
		if item.ImageURL != "" {
			line.Merchandise.Product.FeaturedImage = &domain.Image{URL: item.ImageURL, AltText: item.Name}
		}
		v.Lines = append(v.Lines, line)
		v.TotalQuantity += item.Quantity
	}
	return v
}

// reshapeProduct returns nil for an absent product.
//
// The featured image is the image flagged as default upstream; when no image
// carries the flag the product has no featured image.
func reshapeProduct(p *product) *domain.Product {
	if p == nil {
		return nil
	}

	v := &domain.Product{
		ID:              strconv.Itoa(p.EntityID),
		Handle:          handleFromPath(p.Path),
		Title:           p.Name,
		Description:     p.PlainTextDescription,
		DescriptionHTML: p.Description,
		SEO:             reshapeSEO(p.SEO),
		Options:         upstream.MapNodes(p.ProductOptions, reshapeOption),
		Variants:        upstream.MapNodes(p.Variants, reshapeVariant),
		Tags:            []string{},
	}
	if p.Brand != nil {
		v.Vendor = p.Brand.Name
	}
	if p.AvailabilityV2 != nil {
		v.AvailableForSale = p.AvailabilityV2.Status == availableStatus
	}

	images := p.Images.Nodes()
	v.Images = make([]domain.Image, len(images))
	for i, img := range images {
		v.Images[i] = domain.Image{URL: img.URLOriginal, AltText: img.AltText}
		if img.IsDefault && v.FeaturedImage == nil {
			featured := v.Images[i]
			v.FeaturedImage = &featured
		}
	}

	if p.Prices != nil && p.Prices.PriceRange != nil {
		v.PriceRange = domain.PriceRange{
			MinVariantPrice: reshapeMoney(p.Prices.PriceRange.Min),
			MaxVariantPrice: reshapeMoney(p.Prices.PriceRange.Max),
		}
	}
	return v
}

func reshapeProducts(ps []product) []domain.Product {
	res := make([]domain.Product, 0, len(ps))
	for i := range ps {
		if v := reshapeProduct(&ps[i]); v != nil {
			res = append(res, *v)
		}
	}
	return res
}

func reshapeOption(o productOption) domain.ProductOption {
	return domain.ProductOption{
		ID:     strconv.Itoa(o.EntityID),
		Name:   o.DisplayName,
		Values: upstream.MapNodes(o.Values, func(v optionValue) string { return v.Label }),
	}
}

func reshapeVariant(vr variant) domain.ProductVariant {
	v := domain.ProductVariant{
		ID:               vr.ID,
		AvailableForSale: vr.IsPurchasable,
		SelectedOptions:  []domain.SelectedOption{},
	}

	titles := []string{}
	for _, o := range vr.Options.Nodes() {
		values := o.Values.Nodes()
		if len(values) == 0 {
			continue
		}
		v.SelectedOptions = append(v.SelectedOptions, domain.SelectedOption{
			Name:  o.DisplayName,
			Value: values[0].Label,
		})
		titles = append(titles, values[0].Label)
	}
	v.Title = strings.Join(titles, " / ")

	if vr.Prices != nil {
		v.Price = reshapeMoney(vr.Prices.Price)
		if vr.Prices.RetailPrice != nil {
			compareAt := reshapeMoney(vr.Prices.RetailPrice)
			v.CompareAtPrice = &compareAt
		}
	}
	return v
}

// reshapeCollection returns nil for an absent category.
func reshapeCollection(c *category) *domain.Collection {
	if c == nil {
		return nil
	}
	handle := handleFromPath(c.Path)
	v := &domain.Collection{
		Handle:      handle,
		Title:       c.Name,
		Description: c.Description,
		SEO:         domain.SEO{Title: c.Name, Description: c.Description},
		Path:        domain.CollectionPath(handle),
	}
	if c.SEO != nil && c.SEO.PageTitle != "" {
		v.SEO = reshapeSEO(*c.SEO)
	}
	return v
}

// reshapeCollections walks the category tree depth first.
func reshapeCollections(tree []categoryTreeItem) []domain.Collection {
	res := []domain.Collection{}
	for _, item := range tree {
		c := reshapeCollection(&category{
			EntityID:    item.EntityID,
			Name:        item.Name,
			Path:        item.Path,
			Description: item.Description,
		})
		res = append(res, *c)
		res = append(res, reshapeCollections(item.Children)...)
	}
	return res
}

func reshapeMenu(tree []categoryTreeItem) []domain.Menu {
	res := make([]domain.Menu, len(tree))
	for i, item := range tree {
		res[i] = domain.Menu{
			ID:    strconv.Itoa(item.EntityID),
			Title: item.Name,
			Path:  item.Path,
		}
	}
	return res
}

func reshapePage(p *page) *domain.Page {
	if p == nil {
		return nil
	}
	return &domain.Page{
		ID:          strconv.Itoa(p.EntityID),
		Handle:      handleFromPath(p.Path),
		Title:       p.Name,
		Body:        p.HTMLBody,
		BodySummary: p.PlainTextSummary,
		SEO:         reshapeSEO(p.SEO),
	}
}

func reshapePages(ps []page) []domain.Page {
	res := make([]domain.Page, len(ps))
	for i := range ps {
		res[i] = *reshapePage(&ps[i])
	}
	return res
}

// sortInput maps a product sort key to the search and category sort enums.
func sortInput(key string, reverse bool) string {
	switch key {
	case domain.SortRelevance:
		return "RELEVANCE"
	case domain.SortBestSelling:
		return "BEST_SELLING"
	case domain.SortCreatedAt:
		return "NEWEST"
	case domain.SortPrice:
		if reverse {
			return "HIGHEST_PRICE"
		}
		return "LOWEST_PRICE"
	case domain.SortTitle:
		if reverse {
			return "Z_TO_A"
		}
		return "A_TO_Z"
	}
	return "FEATURED"
}

func categorySortInput(key string, reverse bool) string {
	switch s := sortInput(key, reverse); s {
	case "RELEVANCE", "FEATURED":
		return "DEFAULT"
	default:
		return s
	}
}
