package products

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/chronolux/watchstore/internal/domains/orders/ports"
)

const watchBody = `{
	"watchId": "watch-1",
	"catalogId": "cat-1",
	"quantity": 5,
	"usageType": "NEW",
	"model": "Meridian 38",
	"material": "steel",
	"accessories": [{"accessoryName": "leather strap", "accessoryCost": 120.50}],
	"price": {"msrp": 2500, "cost": 900, "totalOptionsCost": 120.50},
	"watchBrand": {"brandName": "Chronolux", "brandCountry": "CH"}
}`

func TestGetWatch_MapsFullRepresentation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/watches/watch-1", r.URL.Path)
		w.Header().Set("ETag", `"v3"`)
		w.Write([]byte(watchBody))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, srv.Client())
	require.NoError(t, err)

	watch, err := client.GetWatch(context.Background(), "watch-1")
	require.NoError(t, err)
	require.Equal(t, "watch-1", watch.WatchID)
	require.Equal(t, "cat-1", watch.CatalogID)
	require.Equal(t, 5, watch.Quantity)
	require.Equal(t, "Meridian 38", watch.Model)
	require.Equal(t, `"v3"`, watch.Version)
	require.Len(t, watch.Accessories, 1)
	require.Equal(t, "leather strap", watch.Accessories[0].Name)
	require.True(t, watch.Accessories[0].Cost.Equal(decimal.NewFromFloat(120.50)))
	require.True(t, watch.Price.MSRP.Equal(decimal.NewFromInt(2500)))
	require.Equal(t, "Chronolux", watch.Brand.Name)
	require.Equal(t, "CH", watch.Brand.Country)
}

func TestGetWatch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, srv.Client())
	require.NoError(t, err)

	_, err = client.GetWatch(context.Background(), "watch-9")
	require.ErrorIs(t, err, ports.ErrResourceNotFound)
}

func TestUpdateWatch_RoundTripsAndSendsIfMatch(t *testing.T) {
	var received watchUpdateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/v1/catalogs/cat-1/watches/watch-1", r.URL.Path)
		require.Equal(t, `"v3"`, r.Header.Get("If-Match"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("ETag", `"v4"`)
		w.Write([]byte(watchBody))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, srv.Client())
	require.NoError(t, err)

	update := ports.WatchUpdate{
		CatalogID:   "cat-1",
		Quantity:    4,
		UsageType:   "NEW",
		Model:       "Meridian 38",
		Material:    "steel",
		Accessories: []ports.Accessory{{Name: "leather strap", Cost: decimal.NewFromFloat(120.50)}},
		Price:       ports.WatchPrice{MSRP: decimal.NewFromInt(2500), Cost: decimal.NewFromInt(900)},
		Brand:       ports.Brand{Name: "Chronolux", Country: "CH"},
	}
	watch, err := client.UpdateWatch(context.Background(), "cat-1", "watch-1", update, `"v3"`)
	require.NoError(t, err)
	require.Equal(t, `"v4"`, watch.Version)

	require.Equal(t, 4, received.Quantity)
	require.Equal(t, "Meridian 38", received.Model)
	require.Equal(t, "Chronolux", received.WatchBrand.BrandName)
	require.Len(t, received.Accessories, 1)
}

func TestUpdateWatch_VersionConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPreconditionFailed)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, srv.Client())
	require.NoError(t, err)

	_, err = client.UpdateWatch(context.Background(), "cat-1", "watch-1", ports.WatchUpdate{}, `"stale"`)
	require.ErrorIs(t, err, ports.ErrVersionConflict)
}
