package httphandler

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/stretchr/testify/mock"
)

type MockStorefront struct {
	mock.Mock
}

func (m *MockStorefront) CreateCart(ctx context.Context) (domain.Cart, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockStorefront) AddToCart(
	ctx context.Context, cartID string, lines []domain.CartLineInput,
) (domain.Cart, error) {
	args := m.Called(ctx, cartID, lines)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockStorefront) RemoveFromCart(
	ctx context.Context, cartID string, lineIDs []string,
) (domain.Cart, error) {
	args := m.Called(ctx, cartID, lineIDs)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockStorefront) UpdateCart(
	ctx context.Context, cartID string, lines []domain.CartLineUpdate,
) (domain.Cart, error) {
	args := m.Called(ctx, cartID, lines)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockStorefront) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	args := m.Called(ctx, cartID)
	c, _ := args.Get(0).(*domain.Cart)
	return c, args.Error(1)
}

func (m *MockStorefront) GetCollection(ctx context.Context, handle string) (*domain.Collection, error) {
	args := m.Called(ctx, handle)
	c, _ := args.Get(0).(*domain.Collection)
	return c, args.Error(1)
}

func (m *MockStorefront) GetCollectionProducts(
	ctx context.Context, q port.CollectionProductsQuery,
) ([]domain.Product, error) {
	args := m.Called(ctx, q)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockStorefront) GetCollections(ctx context.Context) ([]domain.Collection, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]domain.Collection)
	return cs, args.Error(1)
}

func (m *MockStorefront) GetProduct(ctx context.Context, handle string) (*domain.Product, error) {
	args := m.Called(ctx, handle)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

func (m *MockStorefront) GetProductRecommendations(
	ctx context.Context, productID string,
) ([]domain.Product, error) {
	args := m.Called(ctx, productID)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockStorefront) GetProducts(ctx context.Context, q port.ProductsQuery) ([]domain.Product, error) {
	args := m.Called(ctx, q)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockStorefront) GetMenu(ctx context.Context, handle string) ([]domain.Menu, error) {
	args := m.Called(ctx, handle)
	ms, _ := args.Get(0).([]domain.Menu)
	return ms, args.Error(1)
}

func (m *MockStorefront) GetPage(ctx context.Context, handle string) (*domain.Page, error) {
	args := m.Called(ctx, handle)
	p, _ := args.Get(0).(*domain.Page)
	return p, args.Error(1)
}

func (m *MockStorefront) GetPages(ctx context.Context) ([]domain.Page, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]domain.Page)
	return ps, args.Error(1)
}

type MockCatalogPublisher struct {
	mock.Mock
}

func (m *MockCatalogPublisher) PublishCatalog(ctx context.Context, q port.ProductsQuery) (int, error) {
	args := m.Called(ctx, q)
	return args.Int(0), args.Error(1)
}
