package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.Storefront = (*Service)(nil)
var _ port.CatalogPublisher = (*Service)(nil)

// Service exposes the facade operations of the configured backend.
//
// Calls are passed through once: failures are reported to the caller and
// never retried.
type Service struct {
	storefront       port.Storefront
	productsProducer port.ProductsProducer
}

// New returns a Service. A nil productsProducer disables catalog
// publishing.
func New(storefront port.Storefront, productsProducer port.ProductsProducer) Service {
	return Service{storefront, productsProducer}
}

func (s Service) CreateCart(ctx context.Context) (domain.Cart, error) {
	const op = "Service.CreateCart"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.storefront.CreateCart(ctx)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s Service) AddToCart(
	ctx context.Context, cartID string, lines []domain.CartLineInput,
) (domain.Cart, error) {
	const op = "Service.AddToCart"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.storefront.AddToCart(ctx, cartID, lines)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s Service) RemoveFromCart(
	ctx context.Context, cartID string, lineIDs []string,
) (domain.Cart, error) {
	const op = "Service.RemoveFromCart"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.storefront.RemoveFromCart(ctx, cartID, lineIDs)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s Service) UpdateCart(
	ctx context.Context, cartID string, lines []domain.CartLineUpdate,
) (domain.Cart, error) {
	const op = "Service.UpdateCart"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.storefront.UpdateCart(ctx, cartID, lines)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s Service) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	const op = "Service.GetCart"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.storefront.GetCart(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s Service) GetCollection(ctx context.Context, handle string) (*domain.Collection, error) {
	const op = "Service.GetCollection"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.storefront.GetCollection(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s Service) GetCollectionProducts(
	ctx context.Context, q port.CollectionProductsQuery,
) ([]domain.Product, error) {
	const op = "Service.GetCollectionProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.storefront.GetCollectionProducts(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s Service) GetCollections(ctx context.Context) ([]domain.Collection, error) {
	const op = "Service.GetCollections"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs, err := s.storefront.GetCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}

func (s Service) GetProduct(ctx context.Context, handle string) (*domain.Product, error) {
	const op = "Service.GetProduct"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.storefront.GetProduct(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s Service) GetProductRecommendations(
	ctx context.Context, productID string,
) ([]domain.Product, error) {
	const op = "Service.GetProductRecommendations"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.storefront.GetProductRecommendations(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s Service) GetProducts(ctx context.Context, q port.ProductsQuery) ([]domain.Product, error) {
	const op = "Service.GetProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.storefront.GetProducts(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s Service) GetMenu(ctx context.Context, handle string) ([]domain.Menu, error) {
	const op = "Service.GetMenu"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m, err := s.storefront.GetMenu(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

func (s Service) GetPage(ctx context.Context, handle string) (*domain.Page, error) {
	const op = "Service.GetPage"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.storefront.GetPage(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s Service) GetPages(ctx context.Context) ([]domain.Page, error) {
	const op = "Service.GetPages"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.storefront.GetPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

// PublishCatalog sends the products matching q to the products topic and
// returns how many were sent.
func (s Service) PublishCatalog(ctx context.Context, q port.ProductsQuery) (int, error) {
	const op = "Service.PublishCatalog"
	log := slog.With("op", op)

	if s.productsProducer == nil {
		return 0, fmt.Errorf("%s: %w", op, domain.ErrNoPublisher)
	}

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.storefront.GetProducts(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if len(ps) == 0 {
		log.Info("nothing to publish")
		return 0, nil
	}

	if err := s.productsProducer.ProduceProducts(ctx, ps); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("catalog published", "products", len(ps))
	return len(ps), nil
}
