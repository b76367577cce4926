package service

import (
	"context"
	"errors"
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

type MockProductsProducer struct {
	mock.Mock
}

func (m *MockProductsProducer) ProduceProducts(ctx context.Context, ps []domain.Product) error {
	return m.Called(ctx, ps).Error(0)
}

func TestServiceDelegates(t *testing.T) {
	ctx := context.Background()

	t.Run("GetProduct", func(t *testing.T) {
		sf := new(MockStorefront)
		want := &domain.Product{Handle: "tee"}
		sf.On("GetProduct", ctx, "tee").Return(want, nil).Once()

		got, err := New(sf, nil).GetProduct(ctx, "tee")
		require.NoError(t, err)
		assert.Same(t, want, got)
		sf.AssertExpectations(t)
	})

	t.Run("GetProductAbsent", func(t *testing.T) {
		sf := new(MockStorefront)
		sf.On("GetProduct", ctx, "missing").Return(nil, nil).Once()

		got, err := New(sf, nil).GetProduct(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("AddToCart", func(t *testing.T) {
		sf := new(MockStorefront)
		lines := []domain.CartLineInput{{MerchandiseID: "v", Quantity: 1}}
		sf.On("AddToCart", ctx, "c", lines).Return(domain.Cart{ID: "c", TotalQuantity: 1}, nil).Once()

		c, err := New(sf, nil).AddToCart(ctx, "c", lines)
		require.NoError(t, err)
		assert.Equal(t, 1, c.TotalQuantity)
	})

	t.Run("GetCollections", func(t *testing.T) {
		sf := new(MockStorefront)
		sf.On("GetCollections", ctx).Return([]domain.Collection{{Title: "All"}}, nil).Once()

		cs, err := New(sf, nil).GetCollections(ctx)
		require.NoError(t, err)
		assert.Len(t, cs, 1)
	})
}

func TestServiceErrors(t *testing.T) {
	t.Run("UpstreamErrorIsNotRetried", func(t *testing.T) {
		ctx := context.Background()
		upstreamErr := &domain.UpstreamRequestError{Status: 404, Message: "not found"}

		sf := new(MockStorefront)
		sf.On("GetMenu", ctx, "main").Return(nil, upstreamErr).Once()

		_, err := New(sf, nil).GetMenu(ctx, "main")
		var ue *domain.UpstreamRequestError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, 404, ue.Status)
		assert.Contains(t, err.Error(), "Service.GetMenu")
		sf.AssertNumberOfCalls(t, "GetMenu", 1)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		sf := new(MockStorefront)
		_, err := New(sf, nil).GetPages(ctx)
		require.ErrorIs(t, err, context.Canceled)
		sf.AssertNotCalled(t, "GetPages", mock.Anything)
	})
}

func TestServicePublishCatalog(t *testing.T) {
	ctx := context.Background()
	q := port.ProductsQuery{SortKey: domain.SortTitle}

	t.Run("Publishes", func(t *testing.T) {
		ps := []domain.Product{{Handle: "a"}, {Handle: "b"}}
		sf := new(MockStorefront)
		sf.On("GetProducts", ctx, q).Return(ps, nil).Once()
		pp := new(MockProductsProducer)
		pp.On("ProduceProducts", ctx, ps).Return(nil).Once()

		n, err := New(sf, pp).PublishCatalog(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		pp.AssertExpectations(t)
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		sf := new(MockStorefront)
		sf.On("GetProducts", ctx, q).Return([]domain.Product{}, nil).Once()
		pp := new(MockProductsProducer)

		n, err := New(sf, pp).PublishCatalog(ctx, q)
		require.NoError(t, err)
		assert.Zero(t, n)
		pp.AssertNotCalled(t, "ProduceProducts", mock.Anything, mock.Anything)
	})

	t.Run("ProducerFails", func(t *testing.T) {
		ps := []domain.Product{{Handle: "a"}}
		sf := new(MockStorefront)
		sf.On("GetProducts", ctx, q).Return(ps, nil).Once()
		pp := new(MockProductsProducer)
		produceErr := errors.New("broker down")
		pp.On("ProduceProducts", ctx, ps).Return(produceErr).Once()

		n, err := New(sf, pp).PublishCatalog(ctx, q)
		require.ErrorIs(t, err, produceErr)
		assert.Zero(t, n)
	})

	t.Run("NoPublisher", func(t *testing.T) {
		sf := new(MockStorefront)
		_, err := New(sf, nil).PublishCatalog(ctx, q)
		require.ErrorIs(t, err, domain.ErrNoPublisher)
		sf.AssertNotCalled(t, "GetProducts", mock.Anything, mock.Anything)
	})
}
