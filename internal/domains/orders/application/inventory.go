package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/chronolux/watchstore/internal/domains/orders/ports"
)

// maxInventoryRetries bounds the read-modify-write loop on watch quantity.
// The catalog service has no transactional quantity endpoint, so concurrent
// writers are serialized through conditional updates keyed on the watch's
// version; each conflict triggers one re-read.
const maxInventoryRetries = 3

// adjustInventory pushes quantity+delta to the catalog service, round-
// tripping the watch's full representation with only quantity changed. The
// write is conditional on the version the watch was read at and retries a
// bounded number of times when another writer got there first.
func (s *Service) adjustInventory(ctx context.Context, watch *ports.WatchView, delta int) error {
	if watch == nil {
		return errors.New("watch is nil")
	}
	for attempt := 0; ; attempt++ {
		newQty := watch.Quantity + delta
		if newQty < 0 {
			return invalidf("stock cannot go below zero")
		}
		update := ports.WatchUpdate{
			CatalogID:   watch.CatalogID,
			Quantity:    newQty,
			UsageType:   watch.UsageType,
			Model:       watch.Model,
			Material:    watch.Material,
			Accessories: watch.Accessories,
			Price:       watch.Price,
			Brand:       watch.Brand,
		}
		_, err := s.products.UpdateWatch(ctx, watch.CatalogID, watch.WatchID, update, watch.Version)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ports.ErrVersionConflict) {
			return err
		}
		if attempt >= maxInventoryRetries {
			return fmt.Errorf("inventory update for watch %q lost %d conflicts: %w",
				watch.WatchID, attempt+1, ports.ErrVersionConflict)
		}
		watch, err = s.products.GetWatch(ctx, watch.WatchID)
		if err != nil {
			return err
		}
	}
}
