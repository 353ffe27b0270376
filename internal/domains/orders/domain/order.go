package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enumerates order progression. Only the completed and canceled
// states are reachable through the service API; offer and negotiation remain
// as forward-compatible tags.
type OrderStatus string

const (
	StatusPurchaseOffer       OrderStatus = "PURCHASE_OFFER"
	StatusPurchaseNegotiation OrderStatus = "PURCHASE_NEGOTIATION"
	StatusPurchaseCompleted   OrderStatus = "PURCHASE_COMPLETED"
	StatusPurchaseCanceled    OrderStatus = "PURCHASE_CANCELED"
)

// Currency is the closed set of currencies accepted for order prices.
type Currency string

const (
	CurrencyCAD Currency = "CAD"
	CurrencyUSD Currency = "USD"
	CurrencySAR Currency = "SAR"
	CurrencyEUR Currency = "EUR"
)

var (
	ErrInvalidCurrency  = errors.New("currency code is not one of CAD, USD, SAR, EUR")
	ErrInvalidStatus    = errors.New("order status is invalid")
	ErrEmptyOrderName   = errors.New("order name must not be empty")
	ErrEmptyReference   = errors.New("order reference identifiers must not be empty")
	ErrNegativePrice    = errors.New("sale price must not be negative")
)

// ParseCurrency maps a wire code onto the closed currency set.
func ParseCurrency(code string) (Currency, error) {
	switch Currency(strings.TrimSpace(code)) {
	case CurrencyCAD:
		return CurrencyCAD, nil
	case CurrencyUSD:
		return CurrencyUSD, nil
	case CurrencySAR:
		return CurrencySAR, nil
	case CurrencyEUR:
		return CurrencyEUR, nil
	default:
		return "", ErrInvalidCurrency
	}
}

// NormalizeStatus coerces any requested status other than an explicit
// cancellation to completed. Offer and negotiation values are accepted on the
// wire but never stored.
func NormalizeStatus(requested OrderStatus) OrderStatus {
	if requested == StatusPurchaseCanceled {
		return StatusPurchaseCanceled
	}
	return StatusPurchaseCompleted
}

// Price is the order price value object: an amount plus the currency the sale
// was quoted in and the currency the payment settles in.
type Price struct {
	Amount          decimal.Decimal
	SaleCurrency    Currency
	PaymentCurrency Currency
}

// NewPrice builds a Price from an amount and two wire currency codes.
func NewPrice(amount decimal.Decimal, saleCode, paymentCode string) (Price, error) {
	if amount.IsNegative() {
		return Price{}, ErrNegativePrice
	}
	sale, err := ParseCurrency(saleCode)
	if err != nil {
		return Price{}, err
	}
	payment, err := ParseCurrency(paymentCode)
	if err != nil {
		return Price{}, err
	}
	return Price{Amount: amount, SaleCurrency: sale, PaymentCurrency: payment}, nil
}

// Order is the aggregate root representing the purchase (or cancellation) of
// one watch by one customer under one service plan. The four foreign
// references are identifiers only; the referenced records live in separately
// owned services.
type Order struct {
	OrderID       string
	OrderName     string
	CustomerID    string
	CatalogID     string
	WatchID       string
	ServicePlanID string
	Status        OrderStatus
	Price         Price
	OrderDate     time.Time
}

// Validate enforces aggregate invariants.
func (o *Order) Validate() error {
	if strings.TrimSpace(o.OrderName) == "" {
		return ErrEmptyOrderName
	}
	if o.CustomerID == "" || o.CatalogID == "" || o.WatchID == "" || o.ServicePlanID == "" {
		return ErrEmptyReference
	}
	if !isValidStatus(o.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// Completed reports whether the order currently holds a unit of stock.
func (o *Order) Completed() bool {
	return o.Status == StatusPurchaseCompleted
}

func isValidStatus(status OrderStatus) bool {
	switch status {
	case StatusPurchaseOffer, StatusPurchaseNegotiation, StatusPurchaseCompleted, StatusPurchaseCanceled:
		return true
	default:
		return false
	}
}
