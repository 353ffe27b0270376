//go:build pact
// +build pact

package consumer_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"

	"github.com/chronolux/watchstore/internal/clients/products"
	"github.com/chronolux/watchstore/internal/domains/orders/ports"
	pacttest "github.com/chronolux/watchstore/test/pact"
)

func watchBodyMatcher() matchers.Map {
	return matchers.Map{
		"watchId":   matchers.S(pacttest.ExistingWatchID),
		"catalogId": matchers.S(pacttest.CatalogID),
		"quantity":  matchers.Like(5),
		"usageType": matchers.Like("NEW"),
		"model":     matchers.Like("Meridian 38"),
		"material":  matchers.Like("steel"),
		"accessories": matchers.ArrayMinLike(map[string]any{
			"accessoryName": "leather strap",
			"accessoryCost": 120.50,
		}, 1),
		"price": matchers.Map{
			"msrp":             matchers.Like(2500.00),
			"cost":             matchers.Like(900.00),
			"totalOptionsCost": matchers.Like(120.50),
		},
		"watchBrand": matchers.Map{
			"brandName":    matchers.Like("Chronolux"),
			"brandCountry": matchers.Like("CH"),
		},
	}
}

func TestProductServiceContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProductProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")

	pact.AddInteraction().
		Given(pacttest.StateWatchExists).
		UponReceiving("a request to fetch an existing watch").
		WithRequest("GET", "/api/v1/watches/"+pacttest.ExistingWatchID).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.Header("ETag", matchers.Like(`"v3"`))
			b.JSONBody(watchBodyMatcher())
		})

	pact.AddInteraction().
		Given(pacttest.StateWatchMissing).
		UponReceiving("a request for a missing watch").
		WithRequest("GET", "/api/v1/watches/"+pacttest.MissingWatchID).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{
				"message": matchers.Like("watch watch-404 not found"),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateWatchExists).
		UponReceiving("a conditional watch inventory update").
		WithRequest("PUT", fmt.Sprintf("/api/v1/catalogs/%s/watches/%s", pacttest.CatalogID, pacttest.ExistingWatchID), func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.Header("If-Match", matchers.Like(`"v3"`))
			b.JSONBody(matchers.Map{
				"catalogId": matchers.S(pacttest.CatalogID),
				"quantity":  matchers.Like(4),
			})
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.Header("ETag", matchers.Like(`"v4"`))
			b.JSONBody(watchBodyMatcher())
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client, err := products.NewClient(mockServerURL(config), nil)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		watch, err := client.GetWatch(ctx, pacttest.ExistingWatchID)
		if err != nil {
			return fmt.Errorf("get watch: %w", err)
		}
		if watch.Version == "" {
			return fmt.Errorf("expected watch version from ETag")
		}

		if _, err := client.GetWatch(ctx, pacttest.MissingWatchID); !errors.Is(err, ports.ErrResourceNotFound) {
			return fmt.Errorf("expected resource-not-found for missing watch, got %v", err)
		}

		update := ports.WatchUpdate{
			CatalogID:   watch.CatalogID,
			Quantity:    watch.Quantity - 1,
			UsageType:   watch.UsageType,
			Model:       watch.Model,
			Material:    watch.Material,
			Accessories: watch.Accessories,
			Price:       watch.Price,
			Brand:       watch.Brand,
		}
		updated, err := client.UpdateWatch(ctx, watch.CatalogID, watch.WatchID, update, watch.Version)
		if err != nil {
			return fmt.Errorf("update watch: %w", err)
		}
		if updated.Version == "" {
			return fmt.Errorf("expected refreshed version from ETag")
		}
		return nil
	})
	require.NoError(t, err)
}

func mockServerURL(config pactconsumer.MockServerConfig) string {
	host := config.Host
	if host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%d", host, config.Port)
}
