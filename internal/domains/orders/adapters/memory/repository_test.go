package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/chronolux/watchstore/internal/domains/orders/domain"
	"github.com/chronolux/watchstore/internal/domains/orders/ports"
)

func sampleOrder(orderID, name string) *domain.Order {
	return &domain.Order{
		OrderID:       orderID,
		OrderName:     name,
		CustomerID:    "cust-1",
		CatalogID:     "cat-1",
		WatchID:       "watch-1",
		ServicePlanID: "plan-1",
		Status:        domain.StatusPurchaseCompleted,
		Price: domain.Price{
			Amount:          decimal.NewFromInt(500),
			SaleCurrency:    domain.CurrencyUSD,
			PaymentCurrency: domain.CurrencyUSD,
		},
		OrderDate: time.Now(),
	}
}

func TestRepository_SaveAndFind(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, sampleOrder("ord-1", "first"))
	require.NoError(t, err)
	require.Equal(t, "ord-1", saved.OrderID)

	found, err := repo.FindByOrderID(ctx, "ord-1")
	require.NoError(t, err)
	require.Equal(t, "first", found.OrderName)

	// Mutating a returned order must not leak into the stored copy.
	found.OrderName = "mutated"
	again, err := repo.FindByOrderID(ctx, "ord-1")
	require.NoError(t, err)
	require.Equal(t, "first", again.OrderName)

	_, err = repo.FindByOrderID(ctx, "ord-missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_SaveRejectsInvalidOrders(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, nil)
	require.Error(t, err)

	order := sampleOrder("", "no id")
	_, err = repo.Save(ctx, order)
	require.Error(t, err)

	order = sampleOrder("ord-1", "   ")
	_, err = repo.Save(ctx, order)
	require.ErrorIs(t, err, domain.ErrEmptyOrderName)
}

func TestRepository_SaveOverwritesByOrderID(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, sampleOrder("ord-1", "first"))
	require.NoError(t, err)

	updated := sampleOrder("ord-1", "first")
	updated.Status = domain.StatusPurchaseCanceled
	_, err = repo.Save(ctx, updated)
	require.NoError(t, err)

	found, err := repo.FindByOrderID(ctx, "ord-1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusPurchaseCanceled, found.Status)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestRepository_ExistsByName(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, sampleOrder("ord-1", "taken"))
	require.NoError(t, err)

	taken, err := repo.ExistsByName(ctx, "taken")
	require.NoError(t, err)
	require.True(t, taken)

	free, err := repo.ExistsByName(ctx, "free")
	require.NoError(t, err)
	require.False(t, free)
}

func TestRepository_Delete(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, sampleOrder("ord-1", "doomed"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "ord-1"))
	require.ErrorIs(t, repo.Delete(ctx, "ord-1"), ports.ErrNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}
