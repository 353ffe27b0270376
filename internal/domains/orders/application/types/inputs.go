package types

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/chronolux/watchstore/internal/domains/orders/domain"
)

// CreateOrderInput captures an order creation request. Pointer fields
// preserve presence so missing values can be rejected individually.
type CreateOrderInput struct {
	OrderName       *string
	CustomerID      *string
	CatalogID       string
	WatchID         *string
	ServicePlanID   *string
	SalePrice       *decimal.Decimal
	Currency        *string
	PaymentCurrency *string
	OrderDate       *time.Time
	OrderStatus     domain.OrderStatus
}

// UpdateOrderInput captures an order mutation request. The order name must
// echo the stored name; status, date, and price are the only mutable fields.
type UpdateOrderInput struct {
	OrderName       *string
	SalePrice       *decimal.Decimal
	Currency        *string
	PaymentCurrency *string
	OrderDate       *time.Time
	OrderStatus     domain.OrderStatus
}
