package ports

import (
	"context"
	"errors"

	"github.com/chronolux/watchstore/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists order aggregates keyed by their business identifier.
type Repository interface {
	FindAll(ctx context.Context) ([]*domain.Order, error)
	FindByOrderID(ctx context.Context, orderID string) (*domain.Order, error)
	ExistsByName(ctx context.Context, orderName string) (bool, error)
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, orderID string) error
}
