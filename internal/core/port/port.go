package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

type (
	// ProductsQuery selects products for listings and search.
	ProductsQuery struct {
		Query   string
		SortKey string
		Reverse bool
	}

	// CollectionProductsQuery selects products of one collection.
	CollectionProductsQuery struct {
		Handle  string
		SortKey string
		Reverse bool
		Limit   int
	}
)

type CartManager interface {
	CreateCart(context.Context) (domain.Cart, error)
	AddToCart(ctx context.Context, cartID string, lines []domain.CartLineInput) (domain.Cart, error)
	RemoveFromCart(ctx context.Context, cartID string, lineIDs []string) (domain.Cart, error)
	UpdateCart(ctx context.Context, cartID string, lines []domain.CartLineUpdate) (domain.Cart, error)
	GetCart(ctx context.Context, cartID string) (*domain.Cart, error)
}

type CatalogReader interface {
	GetCollection(ctx context.Context, handle string) (*domain.Collection, error)
	GetCollectionProducts(context.Context, CollectionProductsQuery) ([]domain.Product, error)
	GetCollections(context.Context) ([]domain.Collection, error)
	GetProduct(ctx context.Context, handle string) (*domain.Product, error)
	GetProductRecommendations(ctx context.Context, productID string) ([]domain.Product, error)
	GetProducts(context.Context, ProductsQuery) ([]domain.Product, error)
}

type ContentReader interface {
	GetMenu(ctx context.Context, handle string) ([]domain.Menu, error)
	GetPage(ctx context.Context, handle string) (*domain.Page, error)
	GetPages(context.Context) ([]domain.Page, error)
}

// Storefront is the facade every backend implements.
type Storefront interface {
	CartManager
	CatalogReader
	ContentReader
}

type CatalogPublisher interface {
	PublishCatalog(context.Context, ProductsQuery) (int, error)
}

type ProductsProducer interface {
	ProduceProducts(context.Context, []domain.Product) error
}
