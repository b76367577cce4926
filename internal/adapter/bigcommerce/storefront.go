package bigcommerce

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/niksmo/storefront/internal/adapter/upstream"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

const (
	typeProduct  = "Product"
	typeCategory = "Category"
)

var pageTypes = map[string]bool{
	"NormalPage":    true,
	"ContactPage":   true,
	"RawHtmlPage":   true,
	"BlogIndexPage": true,
}

var _ port.Storefront = (*Storefront)(nil)

type GraphQLFetcher interface {
	Fetch(context.Context, upstream.GraphQLRequest, any) (int, error)
}

type RESTFetcher interface {
	Fetch(context.Context, upstream.RESTRequest, any) (int, error)
}

// A Storefront serves the facade operations from a BigCommerce store.
//
// Carts are created through the REST API, everything else goes through
// GraphQL.
type Storefront struct {
	gql  GraphQLFetcher
	rest RESTFetcher
	now  func() time.Time
}

func New(gql GraphQLFetcher, rest RESTFetcher) Storefront {
	return Storefront{gql: gql, rest: rest, now: time.Now}
}

func (s Storefront) CreateCart(ctx context.Context) (domain.Cart, error) {
	const op = "bigcommerce.Storefront.CreateCart"

	var res restCart
	_, err := s.rest.Fetch(ctx, upstream.RESTRequest{
		Path:   createCartPath + "?include=redirectUrls",
		Method: http.MethodPost,
		Body:   map[string]any{"lineItems": []any{}},
		Cache:  upstream.CacheNoStore,
	}, &res)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	slog.Debug("cart created", "op", op, "cartID", res.ID)
	return reshapeRESTCart(res), nil
}

func (s Storefront) AddToCart(
	ctx context.Context, cartID string, lines []domain.CartLineInput,
) (domain.Cart, error) {
	const op = "bigcommerce.Storefront.AddToCart"

	var res addToCartData
	err := s.fetch(ctx, upstream.CacheNoStore, addToCartMutation, map[string]any{
		"cartId": cartID,
		"lines":  lines,
	}, &res)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	v, err := cartResult(res.CartLinesAdd.Cart, addToCartMutation)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func (s Storefront) RemoveFromCart(
	ctx context.Context, cartID string, lineIDs []string,
) (domain.Cart, error) {
	const op = "bigcommerce.Storefront.RemoveFromCart"

	var res removeFromCartData
	err := s.fetch(ctx, upstream.CacheNoStore, removeFromCartMutation, map[string]any{
		"cartId":  cartID,
		"lineIds": lineIDs,
	}, &res)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	v, err := cartResult(res.CartLinesRemove.Cart, removeFromCartMutation)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func (s Storefront) UpdateCart(
	ctx context.Context, cartID string, lines []domain.CartLineUpdate,
) (domain.Cart, error) {
	const op = "bigcommerce.Storefront.UpdateCart"

	var res updateCartData
	err := s.fetch(ctx, upstream.CacheNoStore, editCartItemsMutation, map[string]any{
		"cartId": cartID,
		"lines":  lines,
	}, &res)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	v, err := cartResult(res.CartLinesUpdate.Cart, editCartItemsMutation)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func (s Storefront) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	const op = "bigcommerce.Storefront.GetCart"

	var res cartQuery
	err := s.fetch(ctx, upstream.CacheNoStore, getCartQuery, map[string]any{"cartId": cartID}, &res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if res.Cart == nil {
		return nil, nil
	}
	v := reshapeCart(*res.Cart)
	return &v, nil
}

func (s Storefront) GetCollection(
	ctx context.Context, handle string,
) (*domain.Collection, error) {
	const op = "bigcommerce.Storefront.GetCollection"

	var res categoryRoute
	err := s.fetch(ctx, upstream.CacheForce, getCollectionQuery, map[string]any{
		"path": pathFromHandle(handle),
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	node := res.Site.Route.Node
	if node == nil || node.Typename != typeCategory {
		return nil, nil
	}
	return reshapeCollection(&node.category), nil
}

func (s Storefront) GetCollectionProducts(
	ctx context.Context, q port.CollectionProductsQuery,
) ([]domain.Product, error) {
	const op = "bigcommerce.Storefront.GetCollectionProducts"

	vars := map[string]any{
		"path":   pathFromHandle(q.Handle),
		"sortBy": categorySortInput(q.SortKey, q.Reverse),
	}
	if q.Limit > 0 {
		vars["first"] = q.Limit
	}

	var res categoryProductsRoute
	if err := s.fetch(ctx, upstream.CacheForce, getCollectionProductsQuery, vars, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	node := res.Site.Route.Node
	if node == nil || node.Typename != typeCategory {
		return []domain.Product{}, nil
	}
	return reshapeProducts(node.Products.Nodes()), nil
}

func (s Storefront) GetCollections(ctx context.Context) ([]domain.Collection, error) {
	const op = "bigcommerce.Storefront.GetCollections"

	var res categoryTree
	if err := s.fetch(ctx, upstream.CacheForce, getCollectionsQuery, nil, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	cs := reshapeCollections(res.Site.CategoryTree)
	return domain.VisibleCollections(cs, s.now().UTC()), nil
}

// GetMenu returns the top level of the category tree. BigCommerce has a
// single navigation tree, so handle is ignored.
func (s Storefront) GetMenu(ctx context.Context, handle string) ([]domain.Menu, error) {
	const op = "bigcommerce.Storefront.GetMenu"

	var res categoryTree
	if err := s.fetch(ctx, upstream.CacheForce, getMenuQuery, nil, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reshapeMenu(res.Site.CategoryTree), nil
}

func (s Storefront) GetPage(ctx context.Context, handle string) (*domain.Page, error) {
	const op = "bigcommerce.Storefront.GetPage"

	var res pageRoute
	err := s.fetch(ctx, upstream.CacheForce, getPageQuery, map[string]any{
		"path": pathFromHandle(handle),
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	node := res.Site.Route.Node
	if node == nil || !pageTypes[node.Typename] {
		return nil, nil
	}
	return reshapePage(&node.page), nil
}

func (s Storefront) GetPages(ctx context.Context) ([]domain.Page, error) {
	const op = "bigcommerce.Storefront.GetPages"

	var res pagesContent
	if err := s.fetch(ctx, upstream.CacheForce, getPagesQuery, nil, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reshapePages(res.Site.Content.Pages.Nodes()), nil
}

func (s Storefront) GetProduct(ctx context.Context, handle string) (*domain.Product, error) {
	const op = "bigcommerce.Storefront.GetProduct"

	var res productRoute
	err := s.fetch(ctx, upstream.CacheForce, getProductQuery, map[string]any{
		"path": pathFromHandle(handle),
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	node := res.Site.Route.Node
	if node == nil || node.Typename != typeProduct {
		return nil, nil
	}
	return reshapeProduct(&node.product), nil
}

// GetProductRecommendations returns products related to the product with
// the given entity id. A non-numeric id matches no product.
func (s Storefront) GetProductRecommendations(
	ctx context.Context, productID string,
) ([]domain.Product, error) {
	const op = "bigcommerce.Storefront.GetProductRecommendations"

	entityID, err := strconv.Atoi(productID)
	if err != nil {
		slog.Debug("not an entity id", "op", op, "productID", productID)
		return []domain.Product{}, nil
	}

	var res productRecommendations
	err = s.fetch(ctx, upstream.CacheForce, getProductRecommendationsQuery, map[string]any{
		"productId": entityID,
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if res.Site.Product == nil {
		return []domain.Product{}, nil
	}
	return reshapeProducts(res.Site.Product.RelatedProducts.Nodes()), nil
}

func (s Storefront) GetProducts(
	ctx context.Context, q port.ProductsQuery,
) ([]domain.Product, error) {
	const op = "bigcommerce.Storefront.GetProducts"

	vars := map[string]any{"sort": sortInput(q.SortKey, q.Reverse)}
	if q.Query != "" {
		vars["searchTerm"] = q.Query
	}

	var res productsSearch
	if err := s.fetch(ctx, upstream.CacheForce, getProductsQuery, vars, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reshapeProducts(res.Site.Search.SearchProducts.Products.Nodes()), nil
}

func (s Storefront) fetch(
	ctx context.Context, cache upstream.Cache, doc string, vars map[string]any, out any,
) error {
	_, err := s.gql.Fetch(ctx, upstream.GraphQLRequest{
		Query:     doc,
		Variables: vars,
		Cache:     cache,
	}, out)
	return err
}

// cartResult reshapes the cart of a mutation payload. The backend answers
// with no cart when the cart id is unknown.
func cartResult(c *cart, doc string) (domain.Cart, error) {
	if c == nil {
		return domain.Cart{}, &domain.UpstreamRequestError{
			Status:  http.StatusNotFound,
			Message: "cart not found",
			Request: doc,
		}
	}
	return reshapeCart(*c), nil
}
