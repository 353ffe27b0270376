package ports

import (
	"context"

	types "github.com/chronolux/watchstore/internal/domains/orders/application/types"
)

// Service exposes the order lifecycle use cases to adapters.
type Service interface {
	ListOrders(ctx context.Context) ([]*types.OrderView, error)
	GetOrder(ctx context.Context, orderID string) (*types.OrderView, error)
	CreateOrder(ctx context.Context, input types.CreateOrderInput) (*types.OrderView, error)
	UpdateOrder(ctx context.Context, orderID string, input types.UpdateOrderInput) (*types.OrderView, error)
	DeleteOrder(ctx context.Context, orderID string) (string, error)
}
