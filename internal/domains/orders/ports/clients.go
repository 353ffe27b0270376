package ports

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Downstream failures are collapsed into a small typed set at the client
// boundary. Remote 404s become ErrResourceNotFound; any other remote
// rejection becomes ErrResourceRejected and surfaces to callers as invalid
// input. ErrVersionConflict signals a lost conditional watch update.
var (
	ErrResourceNotFound = errors.New("downstream resource not found")
	ErrResourceRejected = errors.New("downstream request rejected")
	ErrVersionConflict  = errors.New("downstream resource version conflict")
)

// CustomerView is the customer-service read model consumed by order flows.
type CustomerView struct {
	CustomerID string
	FirstName  string
	LastName   string
}

// CatalogView is the catalog read model consumed by order flows.
type CatalogView struct {
	CatalogID   string
	Type        string
	Description string
}

// Accessory is one optional extra attached to a watch.
type Accessory struct {
	Name string
	Cost decimal.Decimal
}

// WatchPrice mirrors the catalog service's watch pricing block.
type WatchPrice struct {
	MSRP             decimal.Decimal
	Cost             decimal.Decimal
	TotalOptionsCost decimal.Decimal
}

// Brand identifies the watch manufacturer.
type Brand struct {
	Name    string
	Country string
}

// WatchView is the full watch representation held by the catalog service.
// Version carries the ETag of the read and is required for conditional
// updates.
type WatchView struct {
	WatchID     string
	CatalogID   string
	Quantity    int
	UsageType   string
	Model       string
	Material    string
	Accessories []Accessory
	Price       WatchPrice
	Brand       Brand
	Version     string
}

// WatchUpdate is the write model pushed back to the catalog service. The
// catalog API is not a partial-patch API, so every field must round-trip.
type WatchUpdate struct {
	CatalogID   string
	Quantity    int
	UsageType   string
	Model       string
	Material    string
	Accessories []Accessory
	Price       WatchPrice
	Brand       Brand
}

// ServicePlanView is the service-plan read model consumed by order flows.
type ServicePlanView struct {
	PlanID          string
	CoverageDetails string
	ExpirationDate  time.Time
}

// CustomerClient resolves customers in the customer service.
type CustomerClient interface {
	GetCustomer(ctx context.Context, customerID string) (*CustomerView, error)
}

// ProductClient resolves catalogs and watches in the product service and
// pushes watch inventory updates. UpdateWatch performs a conditional write
// when expectedVersion is non-empty and reports ErrVersionConflict when the
// watch changed since it was read.
type ProductClient interface {
	GetCatalog(ctx context.Context, catalogID string) (*CatalogView, error)
	GetWatch(ctx context.Context, watchID string) (*WatchView, error)
	UpdateWatch(ctx context.Context, catalogID, watchID string, update WatchUpdate, expectedVersion string) (*WatchView, error)
}

// ServicePlanClient resolves service plans in the plan service.
type ServicePlanClient interface {
	GetServicePlan(ctx context.Context, planID string) (*ServicePlanView, error)
}
