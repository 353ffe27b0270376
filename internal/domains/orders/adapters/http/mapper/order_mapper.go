package mapper

import (
	"time"

	"github.com/shopspring/decimal"

	types "github.com/chronolux/watchstore/internal/domains/orders/application/types"
	"github.com/chronolux/watchstore/internal/domains/orders/domain"
)

// expirationDateLayout matches the plan service's calendar-date encoding.
const expirationDateLayout = "2006-01-02"

// OrderRequest captures inbound payloads for create/update flows while
// preserving field presence.
type OrderRequest struct {
	CustomerID      *string          `json:"customerId,omitempty"`
	CatalogID       string           `json:"catalogId,omitempty"`
	WatchID         *string          `json:"watchId,omitempty"`
	ServicePlanID   *string          `json:"servicePlanId,omitempty"`
	OrderName       *string          `json:"orderName,omitempty"`
	SalePrice       *decimal.Decimal `json:"salePrice,omitempty"`
	Currency        *string          `json:"currency,omitempty"`
	PaymentCurrency *string          `json:"paymentCurrency,omitempty"`
	OrderDate       *time.Time       `json:"orderDate,omitempty"`
	OrderStatus     string           `json:"orderStatus,omitempty"`
}

// OrderResponse is the enriched order representation sent to callers.
type OrderResponse struct {
	OrderID string `json:"orderId"`

	CustomerID        string `json:"customerId"`
	CustomerFirstName string `json:"customerFirstName"`
	CustomerLastName  string `json:"customerLastName"`

	CatalogID          string `json:"catalogId"`
	CatalogType        string `json:"catalogType"`
	CatalogDescription string `json:"catalogDescription"`

	WatchID       string `json:"watchId"`
	WatchModel    string `json:"watchModel"`
	WatchMaterial string `json:"watchMaterial"`

	ServicePlanID              string `json:"servicePlanId"`
	ServicePlanCoverageDetails string `json:"servicePlanCoverageDetails"`
	ServicePlanExpirationDate  string `json:"servicePlanExpirationDate,omitempty"`

	OrderName       string          `json:"orderName"`
	SalePrice       decimal.Decimal `json:"salePrice"`
	SaleCurrency    string          `json:"saleCurrency"`
	PaymentCurrency string          `json:"paymentCurrency"`
	OrderDate       time.Time       `json:"orderDate"`
	OrderStatus     string          `json:"orderStatus"`
}

// ToCreateInput maps an inbound payload onto the create use case input.
func ToCreateInput(req OrderRequest) types.CreateOrderInput {
	return types.CreateOrderInput{
		OrderName:       req.OrderName,
		CustomerID:      req.CustomerID,
		CatalogID:       req.CatalogID,
		WatchID:         req.WatchID,
		ServicePlanID:   req.ServicePlanID,
		SalePrice:       req.SalePrice,
		Currency:        req.Currency,
		PaymentCurrency: req.PaymentCurrency,
		OrderDate:       req.OrderDate,
		OrderStatus:     domain.OrderStatus(req.OrderStatus),
	}
}

// ToUpdateInput maps an inbound payload onto the update use case input.
func ToUpdateInput(req OrderRequest) types.UpdateOrderInput {
	return types.UpdateOrderInput{
		OrderName:       req.OrderName,
		SalePrice:       req.SalePrice,
		Currency:        req.Currency,
		PaymentCurrency: req.PaymentCurrency,
		OrderDate:       req.OrderDate,
		OrderStatus:     domain.OrderStatus(req.OrderStatus),
	}
}

// FromView maps an enriched order view onto the wire representation.
func FromView(view *types.OrderView) OrderResponse {
	resp := OrderResponse{
		OrderID:                    view.OrderID,
		CustomerID:                 view.CustomerID,
		CustomerFirstName:          view.CustomerFirstName,
		CustomerLastName:           view.CustomerLastName,
		CatalogID:                  view.CatalogID,
		CatalogType:                view.CatalogType,
		CatalogDescription:         view.CatalogDescription,
		WatchID:                    view.WatchID,
		WatchModel:                 view.WatchModel,
		WatchMaterial:              view.WatchMaterial,
		ServicePlanID:              view.ServicePlanID,
		ServicePlanCoverageDetails: view.ServicePlanCoverageDetails,
		OrderName:                  view.OrderName,
		SalePrice:                  view.SalePrice,
		SaleCurrency:               string(view.SaleCurrency),
		PaymentCurrency:            string(view.PaymentCurrency),
		OrderDate:                  view.OrderDate,
		OrderStatus:                string(view.OrderStatus),
	}
	if !view.ServicePlanExpirationDate.IsZero() {
		resp.ServicePlanExpirationDate = view.ServicePlanExpirationDate.Format(expirationDateLayout)
	}
	return resp
}

// FromViewList maps a slice of enriched views.
func FromViewList(views []*types.OrderView) []OrderResponse {
	out := make([]OrderResponse, 0, len(views))
	for _, view := range views {
		out = append(out, FromView(view))
	}
	return out
}
