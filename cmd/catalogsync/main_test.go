package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCatalogPublisher struct {
	mock.Mock
}

func (m *MockCatalogPublisher) PublishCatalog(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestPublish(t *testing.T) {
	ctx := context.Background()

	t.Run("Published", func(t *testing.T) {
		p := new(MockCatalogPublisher)
		p.On("PublishCatalog", ctx).Return(3, nil).Once()

		assert.Equal(t, exitOK, publish(ctx, p))
		p.AssertExpectations(t)
	})

	t.Run("Failed", func(t *testing.T) {
		p := new(MockCatalogPublisher)
		p.On("PublishCatalog", ctx).Return(0, errors.New("broker down")).Once()

		assert.Equal(t, exitFailed, publish(ctx, p))
		p.AssertExpectations(t)
	})
}
