package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	types "github.com/chronolux/watchstore/internal/domains/orders/application/types"
	"github.com/chronolux/watchstore/internal/domains/orders/domain"
	"github.com/chronolux/watchstore/internal/domains/orders/ports"
)

// Service orchestrates the order lifecycle across the order repository and
// the three downstream resource services. All outbound calls are issued
// sequentially on the caller's goroutine; the only shared mutable state is
// the repository and the remote services themselves.
type Service struct {
	repo      ports.Repository
	customers ports.CustomerClient
	products  ports.ProductClient
	plans     ports.ServicePlanClient
	now       func() time.Time
	newID     func() string
}

// Option configures optional Service behavior.
type Option func(*Service)

// WithClock overrides the order-date clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides order identifier assignment.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewService wires the order orchestrator with its collaborators.
func NewService(
	repo ports.Repository,
	customers ports.CustomerClient,
	products ports.ProductClient,
	plans ports.ServicePlanClient,
	opts ...Option,
) *Service {
	s := &Service{
		repo:      repo,
		customers: customers,
		products:  products,
		plans:     plans,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ListOrders returns the enriched view of every order whose four foreign
// references still resolve. Orders referring to a vanished customer,
// catalog, watch, or plan are deleted from the repository and omitted;
// staleness of one order never aborts the listing of the others.
func (s *Service) ListOrders(ctx context.Context) ([]*types.OrderView, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*types.OrderView, 0, len(orders))
	for _, order := range orders {
		view, err := s.enrich(ctx, order)
		if err != nil {
			// Read-repair: the order points at a resource that no longer
			// resolves, so it is removed rather than served stale.
			_ = s.repo.Delete(ctx, order.OrderID)
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

// GetOrder returns the enriched view of a single order. An order whose
// references no longer resolve is deleted and reported as not found.
func (s *Service) GetOrder(ctx context.Context, orderID string) (*types.OrderView, error) {
	order, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, notFoundf("order ID %q", orderID)
		}
		return nil, err
	}
	view, err := s.enrich(ctx, order)
	if err != nil {
		_ = s.repo.Delete(ctx, orderID)
		return nil, notFoundf("order ID %q referred to a missing resource and has been removed", orderID)
	}
	return view, nil
}

// CreateOrder validates the request, resolves its foreign references,
// persists the order, and adjusts the watch's catalog inventory.
func (s *Service) CreateOrder(ctx context.Context, input types.CreateOrderInput) (*types.OrderView, error) {
	if input.OrderName == nil {
		return nil, invalidf("orderName is required")
	}
	taken, err := s.repo.ExistsByName(ctx, *input.OrderName)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("order with order name %q already exists: %w", *input.OrderName, ErrDuplicateOrderName)
	}
	if input.CustomerID == nil {
		return nil, invalidf("customerId is required")
	}
	if input.WatchID == nil {
		return nil, invalidf("watchId is required")
	}
	if input.ServicePlanID == nil {
		return nil, invalidf("servicePlanId is required")
	}
	if input.SalePrice == nil {
		return nil, invalidf("salePrice is required")
	}
	if input.Currency == nil || input.PaymentCurrency == nil {
		return nil, invalidf("currency and paymentCurrency are required")
	}

	if _, err := s.customers.GetCustomer(ctx, *input.CustomerID); err != nil {
		if errors.Is(err, ports.ErrResourceNotFound) {
			return nil, notFoundf("customer ID %q", *input.CustomerID)
		}
		return nil, mapError(err)
	}
	watch, err := s.products.GetWatch(ctx, *input.WatchID)
	if err != nil {
		if errors.Is(err, ports.ErrResourceNotFound) {
			return nil, notFoundf("watch ID %q", *input.WatchID)
		}
		return nil, mapError(err)
	}
	if watch.CatalogID != input.CatalogID {
		return nil, invalidf("watch %q does not belong to catalog %q", *input.WatchID, input.CatalogID)
	}
	requested := domain.NormalizeStatus(input.OrderStatus)
	if watch.Quantity <= 0 && requested != domain.StatusPurchaseCanceled {
		return nil, invalidf("watch %q is out of stock", *input.WatchID)
	}
	if _, err := s.plans.GetServicePlan(ctx, *input.ServicePlanID); err != nil {
		if errors.Is(err, ports.ErrResourceNotFound) {
			return nil, notFoundf("service plan ID %q", *input.ServicePlanID)
		}
		return nil, mapError(err)
	}

	price, err := domain.NewPrice(*input.SalePrice, *input.Currency, *input.PaymentCurrency)
	if err != nil {
		return nil, mapError(err)
	}
	order := &domain.Order{
		OrderID:       s.newID(),
		OrderName:     *input.OrderName,
		CustomerID:    *input.CustomerID,
		CatalogID:     input.CatalogID,
		WatchID:       *input.WatchID,
		ServicePlanID: *input.ServicePlanID,
		Status:        requested,
		Price:         price,
		OrderDate:     s.now(),
	}
	if err := order.Validate(); err != nil {
		return nil, mapError(err)
	}

	// Stock floor is verified before the order row exists so a rejected
	// request leaves neither the order nor the watch mutated.
	delta := inventoryDelta(requested)
	if watch.Quantity+delta < 0 {
		return nil, invalidf("stock cannot go below zero")
	}
	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.adjustInventory(ctx, watch, delta); err != nil {
		return nil, mapError(err)
	}
	return s.enrich(ctx, saved)
}

// UpdateOrder mutates status, order date, and price of an existing order.
// The order name is immutable and must be echoed back. Inventory moves only
// on a status edge: into completed (-1) or into canceled (+1).
func (s *Service) UpdateOrder(ctx context.Context, orderID string, input types.UpdateOrderInput) (*types.OrderView, error) {
	existing, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, notFoundf("order ID %q", orderID)
		}
		return nil, err
	}
	if input.OrderName == nil || *input.OrderName != existing.OrderName {
		return nil, invalidf("orderName must remain %q for order ID %q", existing.OrderName, orderID)
	}

	origStatus := existing.Status
	requested := domain.NormalizeStatus(input.OrderStatus)
	existing.Status = requested
	if input.OrderDate != nil {
		existing.OrderDate = *input.OrderDate
	}
	if input.SalePrice != nil {
		if input.Currency == nil || input.PaymentCurrency == nil {
			return nil, invalidf("currency and paymentCurrency are required when salePrice is set")
		}
		price, err := domain.NewPrice(*input.SalePrice, *input.Currency, *input.PaymentCurrency)
		if err != nil {
			return nil, mapError(err)
		}
		existing.Price = price
	}

	delta := 0
	switch {
	case origStatus != domain.StatusPurchaseCompleted && requested == domain.StatusPurchaseCompleted:
		delta = -1
	case origStatus != domain.StatusPurchaseCanceled && requested == domain.StatusPurchaseCanceled:
		delta = +1
	}

	var watch *ports.WatchView
	if delta != 0 {
		watch, err = s.products.GetWatch(ctx, existing.WatchID)
		if err != nil {
			return nil, mapError(err)
		}
		if watch.Quantity+delta < 0 {
			return nil, invalidf("stock cannot go below zero")
		}
	}
	saved, err := s.repo.Save(ctx, existing)
	if err != nil {
		return nil, mapError(err)
	}
	if delta != 0 {
		if err := s.adjustInventory(ctx, watch, delta); err != nil {
			return nil, mapError(err)
		}
	}
	return s.enrich(ctx, saved)
}

// DeleteOrder removes an order, restoring one unit of watch stock first when
// the order held a completed purchase.
func (s *Service) DeleteOrder(ctx context.Context, orderID string) (string, error) {
	order, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return "", notFoundf("order ID %q", orderID)
		}
		return "", err
	}
	restored := order.Completed()
	if restored {
		watch, err := s.products.GetWatch(ctx, order.WatchID)
		if err != nil {
			return "", mapError(err)
		}
		if err := s.adjustInventory(ctx, watch, +1); err != nil {
			return "", mapError(err)
		}
	}
	if err := s.repo.Delete(ctx, orderID); err != nil {
		return "", mapError(err)
	}
	if restored {
		return fmt.Sprintf("order %q deleted; stock restored.", orderID), nil
	}
	return fmt.Sprintf("order %q deleted.", orderID), nil
}

// enrich resolves the order's four foreign references and copies their
// display attributes onto the response view. Callers treat any failure here
// as staleness (list/get) or as a hard error (create/update).
func (s *Service) enrich(ctx context.Context, order *domain.Order) (*types.OrderView, error) {
	customer, err := s.customers.GetCustomer(ctx, order.CustomerID)
	if err != nil {
		return nil, mapError(err)
	}
	catalog, err := s.products.GetCatalog(ctx, order.CatalogID)
	if err != nil {
		return nil, mapError(err)
	}
	watch, err := s.products.GetWatch(ctx, order.WatchID)
	if err != nil {
		return nil, mapError(err)
	}
	plan, err := s.plans.GetServicePlan(ctx, order.ServicePlanID)
	if err != nil {
		return nil, mapError(err)
	}
	return &types.OrderView{
		OrderID:                    order.OrderID,
		CustomerID:                 order.CustomerID,
		CustomerFirstName:          customer.FirstName,
		CustomerLastName:           customer.LastName,
		CatalogID:                  order.CatalogID,
		CatalogType:                catalog.Type,
		CatalogDescription:         catalog.Description,
		WatchID:                    order.WatchID,
		WatchModel:                 watch.Model,
		WatchMaterial:              watch.Material,
		ServicePlanID:              order.ServicePlanID,
		ServicePlanCoverageDetails: plan.CoverageDetails,
		ServicePlanExpirationDate:  plan.ExpirationDate,
		OrderName:                  order.OrderName,
		SalePrice:                  order.Price.Amount,
		SaleCurrency:               order.Price.SaleCurrency,
		PaymentCurrency:            order.Price.PaymentCurrency,
		OrderDate:                  order.OrderDate,
		OrderStatus:                order.Status,
	}, nil
}

func inventoryDelta(status domain.OrderStatus) int {
	if status == domain.StatusPurchaseCompleted {
		return -1
	}
	return +1
}

var _ ports.Service = (*Service)(nil)
