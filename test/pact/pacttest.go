//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// The order service is the consumer side of three downstream contracts.
const (
	ConsumerName = "watchstore-order-api"

	ProductProviderName  = "watch-product-api"
	CustomerProviderName = "watch-customer-api"
	PlanProviderName     = "watch-plan-api"

	StateWatchExists    = "watch watch-101 exists in catalog cat-1"
	StateWatchMissing   = "no watch with id watch-404"
	StateWatchContended = "watch watch-101 was updated by another writer"
	StateCustomerExists = "customer cust-101 exists"
	StateCustomerGone   = "no customer with id cust-404"
	StatePlanExists     = "service plan plan-101 exists"
	StatePlanMissing    = "no service plan with id plan-404"
)

const (
	ExistingWatchID  = "watch-101"
	MissingWatchID   = "watch-404"
	CatalogID        = "cat-1"
	ExistingCustomer = "cust-101"
	MissingCustomer  = "cust-404"
	ExistingPlanID   = "plan-101"
	MissingPlanID    = "plan-404"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleWatchPayload provides stable watch data for pact interactions.
func ExampleWatchPayload() map[string]any {
	return map[string]any{
		"watchId":   ExistingWatchID,
		"catalogId": CatalogID,
		"quantity":  5,
		"usageType": "NEW",
		"model":     "Meridian 38",
		"material":  "steel",
		"accessories": []map[string]any{
			{"accessoryName": "leather strap", "accessoryCost": 120.50},
		},
		"price": map[string]any{
			"msrp":             2500.00,
			"cost":             900.00,
			"totalOptionsCost": 120.50,
		},
		"watchBrand": map[string]any{
			"brandName":    "Chronolux",
			"brandCountry": "CH",
		},
	}
}

// ExampleCustomerPayload provides stable customer data for pact interactions.
func ExampleCustomerPayload() map[string]any {
	return map[string]any{
		"customerId": ExistingCustomer,
		"firstName":  "Amina",
		"lastName":   "Haddad",
	}
}

// ExamplePlanPayload provides stable service plan data for pact interactions.
func ExamplePlanPayload() map[string]any {
	return map[string]any{
		"planId":          ExistingPlanID,
		"coverageDetails": "full coverage",
		"expirationDate":  "2027-06-30",
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
