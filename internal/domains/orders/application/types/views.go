package types

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/chronolux/watchstore/internal/domains/orders/domain"
)

// OrderView is the enriched read model returned by every order operation:
// the stored aggregate plus display attributes copied from the referenced
// customer, catalog, watch, and service plan.
type OrderView struct {
	OrderID string

	CustomerID        string
	CustomerFirstName string
	CustomerLastName  string

	CatalogID          string
	CatalogType        string
	CatalogDescription string

	WatchID       string
	WatchModel    string
	WatchMaterial string

	ServicePlanID              string
	ServicePlanCoverageDetails string
	ServicePlanExpirationDate  time.Time

	OrderName       string
	SalePrice       decimal.Decimal
	SaleCurrency    domain.Currency
	PaymentCurrency domain.Currency
	OrderDate       time.Time
	OrderStatus     domain.OrderStatus
}
