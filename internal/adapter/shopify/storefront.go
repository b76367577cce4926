package shopify

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/niksmo/storefront/internal/adapter/upstream"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// DefaultHiddenTag marks products kept out of listings and search.
const DefaultHiddenTag = "nextjs-frontend-hidden"

var _ port.Storefront = (*Storefront)(nil)

type GraphQLFetcher interface {
	Fetch(context.Context, upstream.GraphQLRequest, any) (int, error)
}

// A Storefront serves the facade operations from the Shopify Storefront API.
type Storefront struct {
	gql       GraphQLFetcher
	hiddenTag string
	now       func() time.Time
}

// New returns a Storefront hiding products tagged with hiddenTag from
// product lists. Single product lookups are not filtered.
func New(gql GraphQLFetcher, hiddenTag string) Storefront {
	return Storefront{gql: gql, hiddenTag: hiddenTag, now: time.Now}
}

func (s Storefront) CreateCart(ctx context.Context) (domain.Cart, error) {
	const op = "shopify.Storefront.CreateCart"

	var res createCartData
	if err := s.fetch(ctx, upstream.CacheNoStore, createCartMutation, nil, &res); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	v, err := cartResult(res.CartCreate.Cart, createCartMutation)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	slog.Debug("cart created", "op", op, "cartID", v.ID)
	return v, nil
}

func (s Storefront) AddToCart(
	ctx context.Context, cartID string, lines []domain.CartLineInput,
) (domain.Cart, error) {
	const op = "shopify.Storefront.AddToCart"

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
	const op = "shopify.Storefront.RemoveFromCart"

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
	const op = "shopify.Storefront.UpdateCart"

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
	const op = "shopify.Storefront.GetCart"

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
	const op = "shopify.Storefront.GetCollection"

	var res collectionQuery
	err := s.fetch(ctx, upstream.CacheForce, getCollectionQuery, map[string]any{
		"handle": handle,
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reshapeCollection(res.Collection), nil
}

func (s Storefront) GetCollectionProducts(
	ctx context.Context, q port.CollectionProductsQuery,
) ([]domain.Product, error) {
	const op = "shopify.Storefront.GetCollectionProducts"

	vars := map[string]any{
		"handle":  q.Handle,
		"reverse": q.Reverse,
	}
	if q.SortKey != "" {
		vars["sortKey"] = collectionSortKey(q.SortKey)
	}
	if q.Limit > 0 {
		vars["first"] = q.Limit
	}

	var res collectionProductsQuery
	if err := s.fetch(ctx, upstream.CacheForce, getCollectionProductsQuery, vars, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if res.Collection == nil {
		slog.Debug("collection not found", "op", op, "handle", q.Handle)
		return []domain.Product{}, nil
	}
	return reshapeProducts(res.Collection.Products.Nodes(), s.hiddenTag), nil
}

func (s Storefront) GetCollections(ctx context.Context) ([]domain.Collection, error) {
	const op = "shopify.Storefront.GetCollections"

	var res collectionsQuery
	if err := s.fetch(ctx, upstream.CacheForce, getCollectionsQuery, nil, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	cs := reshapeCollections(res.Collections.Nodes())
	return domain.VisibleCollections(cs, s.now().UTC()), nil
}

func (s Storefront) GetMenu(ctx context.Context, handle string) ([]domain.Menu, error) {
	const op = "shopify.Storefront.GetMenu"

	var res menuQuery
	err := s.fetch(ctx, upstream.CacheForce, getMenuQuery, map[string]any{
		"handle": handle,
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if res.Menu == nil {
		return []domain.Menu{}, nil
	}
	return reshapeMenu(res.Menu.Items), nil
}

func (s Storefront) GetPage(ctx context.Context, handle string) (*domain.Page, error) {
	const op = "shopify.Storefront.GetPage"

	var res pageQuery
	err := s.fetch(ctx, upstream.CacheForce, getPageQuery, map[string]any{
		"handle": handle,
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reshapePage(res.Page), nil
}

func (s Storefront) GetPages(ctx context.Context) ([]domain.Page, error) {
	const op = "shopify.Storefront.GetPages"

	var res pagesQuery
	if err := s.fetch(ctx, upstream.CacheForce, getPagesQuery, nil, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reshapePages(res.Pages.Nodes()), nil
}

func (s Storefront) GetProduct(ctx context.Context, handle string) (*domain.Product, error) {
	const op = "shopify.Storefront.GetProduct"

	var res productQuery
	err := s.fetch(ctx, upstream.CacheForce, getProductQuery, map[string]any{
		"handle": handle,
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reshapeProduct(res.Product), nil
}

func (s Storefront) GetProductRecommendations(
	ctx context.Context, productID string,
) ([]domain.Product, error) {
	const op = "shopify.Storefront.GetProductRecommendations"

	var res productRecommendationsQuery
	err := s.fetch(ctx, upstream.CacheForce, getProductRecommendationsQuery, map[string]any{
		"productId": productID,
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reshapeProducts(res.ProductRecommendations, s.hiddenTag), nil
}

func (s Storefront) GetProducts(
	ctx context.Context, q port.ProductsQuery,
) ([]domain.Product, error) {
	const op = "shopify.Storefront.GetProducts"

	vars := map[string]any{
		"query":   q.Query,
		"reverse": q.Reverse,
	}
	if q.SortKey != "" {
		vars["sortKey"] = q.SortKey
	}

	var res productsQuery
	if err := s.fetch(ctx, upstream.CacheForce, getProductsQuery, vars, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reshapeProducts(res.Products.Nodes(), s.hiddenTag), nil
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

// cartResult reshapes the cart of a mutation payload. Shopify answers with
// no cart when the cart id is unknown.
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
