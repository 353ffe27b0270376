package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	for _, code := range []string{"CAD", "USD", "SAR", "EUR"} {
		parsed, err := ParseCurrency(code)
		require.NoError(t, err)
		require.Equal(t, Currency(code), parsed)
	}

	parsed, err := ParseCurrency(" USD ")
	require.NoError(t, err)
	require.Equal(t, CurrencyUSD, parsed)

	_, err = ParseCurrency("GBP")
	require.ErrorIs(t, err, ErrInvalidCurrency)
	_, err = ParseCurrency("usd")
	require.ErrorIs(t, err, ErrInvalidCurrency)
	_, err = ParseCurrency("")
	require.ErrorIs(t, err, ErrInvalidCurrency)
}

func TestNormalizeStatus(t *testing.T) {
	require.Equal(t, StatusPurchaseCanceled, NormalizeStatus(StatusPurchaseCanceled))
	require.Equal(t, StatusPurchaseCompleted, NormalizeStatus(StatusPurchaseCompleted))
	require.Equal(t, StatusPurchaseCompleted, NormalizeStatus(StatusPurchaseOffer))
	require.Equal(t, StatusPurchaseCompleted, NormalizeStatus(StatusPurchaseNegotiation))
	require.Equal(t, StatusPurchaseCompleted, NormalizeStatus(OrderStatus("")))
	require.Equal(t, StatusPurchaseCompleted, NormalizeStatus(OrderStatus("SOMETHING_ELSE")))
}

func TestNewPrice(t *testing.T) {
	price, err := NewPrice(decimal.NewFromFloat(1999.99), "USD", "CAD")
	require.NoError(t, err)
	require.True(t, price.Amount.Equal(decimal.NewFromFloat(1999.99)))
	require.Equal(t, CurrencyUSD, price.SaleCurrency)
	require.Equal(t, CurrencyCAD, price.PaymentCurrency)

	_, err = NewPrice(decimal.NewFromInt(-1), "USD", "USD")
	require.ErrorIs(t, err, ErrNegativePrice)

	_, err = NewPrice(decimal.NewFromInt(10), "JPY", "USD")
	require.ErrorIs(t, err, ErrInvalidCurrency)

	_, err = NewPrice(decimal.NewFromInt(10), "USD", "JPY")
	require.ErrorIs(t, err, ErrInvalidCurrency)

	zero, err := NewPrice(decimal.Zero, "EUR", "EUR")
	require.NoError(t, err)
	require.True(t, zero.Amount.IsZero())
}

func validOrder() *Order {
	return &Order{
		OrderID:       "ord-1",
		OrderName:     "anniversary gift",
		CustomerID:    "cust-1",
		CatalogID:     "cat-1",
		WatchID:       "watch-1",
		ServicePlanID: "plan-1",
		Status:        StatusPurchaseCompleted,
		Price:         Price{Amount: decimal.NewFromInt(100), SaleCurrency: CurrencyUSD, PaymentCurrency: CurrencyUSD},
		OrderDate:     time.Now(),
	}
}

func TestOrderValidate(t *testing.T) {
	require.NoError(t, validOrder().Validate())

	o := validOrder()
	o.OrderName = "   "
	require.ErrorIs(t, o.Validate(), ErrEmptyOrderName)

	o = validOrder()
	o.CustomerID = ""
	require.ErrorIs(t, o.Validate(), ErrEmptyReference)

	o = validOrder()
	o.CatalogID = ""
	require.ErrorIs(t, o.Validate(), ErrEmptyReference)

	o = validOrder()
	o.WatchID = ""
	require.ErrorIs(t, o.Validate(), ErrEmptyReference)

	o = validOrder()
	o.ServicePlanID = ""
	require.ErrorIs(t, o.Validate(), ErrEmptyReference)

	o = validOrder()
	o.Status = OrderStatus("SHIPPED")
	require.ErrorIs(t, o.Validate(), ErrInvalidStatus)
}

func TestOrderCompleted(t *testing.T) {
	o := validOrder()
	require.True(t, o.Completed())
	o.Status = StatusPurchaseCanceled
	require.False(t, o.Completed())
	o.Status = StatusPurchaseOffer
	require.False(t, o.Completed())
}
