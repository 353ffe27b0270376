// Package products is the HTTP client for the product (catalog/watch)
// service, including the conditional watch inventory update.
package products

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/chronolux/watchstore/internal/clients/rest"
	"github.com/chronolux/watchstore/internal/domains/orders/ports"
)

var _ ports.ProductClient = (*Client)(nil)

// Client resolves catalogs and watches over the product service's REST API.
type Client struct {
	rest *rest.Client
}

// NewClient builds a product client rooted at baseURL.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	restClient, err := rest.NewClient(baseURL, httpClient)
	if err != nil {
		return nil, err
	}
	return &Client{rest: restClient}, nil
}

type catalogResponse struct {
	CatalogID   string `json:"catalogId"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type accessoryModel struct {
	AccessoryName string          `json:"accessoryName"`
	AccessoryCost decimal.Decimal `json:"accessoryCost"`
}

type watchPriceModel struct {
	MSRP             decimal.Decimal `json:"msrp"`
	Cost             decimal.Decimal `json:"cost"`
	TotalOptionsCost decimal.Decimal `json:"totalOptionsCost"`
}

type watchBrandModel struct {
	BrandName    string `json:"brandName"`
	BrandCountry string `json:"brandCountry"`
}

type watchResponse struct {
	WatchID     string           `json:"watchId"`
	CatalogID   string           `json:"catalogId"`
	Quantity    int              `json:"quantity"`
	UsageType   string           `json:"usageType"`
	Model       string           `json:"model"`
	Material    string           `json:"material"`
	Accessories []accessoryModel `json:"accessories"`
	Price       watchPriceModel  `json:"price"`
	WatchBrand  watchBrandModel  `json:"watchBrand"`
}

// watchUpdateRequest round-trips every watch attribute; the product service
// is not a partial-patch API.
type watchUpdateRequest struct {
	CatalogID   string           `json:"catalogId"`
	Quantity    int              `json:"quantity"`
	UsageType   string           `json:"usageType"`
	Model       string           `json:"model"`
	Material    string           `json:"material"`
	Accessories []accessoryModel `json:"accessories"`
	Price       watchPriceModel  `json:"price"`
	WatchBrand  watchBrandModel  `json:"watchBrand"`
}

// GetCatalog fetches one catalog by identifier.
func (c *Client) GetCatalog(ctx context.Context, catalogID string) (*ports.CatalogView, error) {
	var body catalogResponse
	if _, err := c.rest.GetJSON(ctx, "/api/v1/catalogs/"+catalogID, &body); err != nil {
		return nil, err
	}
	return &ports.CatalogView{
		CatalogID:   body.CatalogID,
		Type:        body.Type,
		Description: body.Description,
	}, nil
}

// GetWatch fetches one watch by identifier. The returned view carries the
// response ETag so callers can make conditional inventory updates.
func (c *Client) GetWatch(ctx context.Context, watchID string) (*ports.WatchView, error) {
	var body watchResponse
	etag, err := c.rest.GetJSON(ctx, "/api/v1/watches/"+watchID, &body)
	if err != nil {
		return nil, err
	}
	return toWatchView(body, etag), nil
}

// UpdateWatch pushes the full watch representation to the catalog it belongs
// to. When expectedVersion is non-empty the write is conditional and a lost
// condition surfaces as ports.ErrVersionConflict.
func (c *Client) UpdateWatch(ctx context.Context, catalogID, watchID string, update ports.WatchUpdate, expectedVersion string) (*ports.WatchView, error) {
	payload := watchUpdateRequest{
		CatalogID:   update.CatalogID,
		Quantity:    update.Quantity,
		UsageType:   update.UsageType,
		Model:       update.Model,
		Material:    update.Material,
		Accessories: toAccessoryModels(update.Accessories),
		Price: watchPriceModel{
			MSRP:             update.Price.MSRP,
			Cost:             update.Price.Cost,
			TotalOptionsCost: update.Price.TotalOptionsCost,
		},
		WatchBrand: watchBrandModel{
			BrandName:    update.Brand.Name,
			BrandCountry: update.Brand.Country,
		},
	}
	var body watchResponse
	path := "/api/v1/catalogs/" + catalogID + "/watches/" + watchID
	etag, err := c.rest.PutJSON(ctx, path, payload, expectedVersion, &body)
	if err != nil {
		return nil, err
	}
	return toWatchView(body, etag), nil
}

func toWatchView(body watchResponse, etag string) *ports.WatchView {
	accessories := make([]ports.Accessory, 0, len(body.Accessories))
	for _, a := range body.Accessories {
		accessories = append(accessories, ports.Accessory{Name: a.AccessoryName, Cost: a.AccessoryCost})
	}
	return &ports.WatchView{
		WatchID:     body.WatchID,
		CatalogID:   body.CatalogID,
		Quantity:    body.Quantity,
		UsageType:   body.UsageType,
		Model:       body.Model,
		Material:    body.Material,
		Accessories: accessories,
		Price: ports.WatchPrice{
			MSRP:             body.Price.MSRP,
			Cost:             body.Price.Cost,
			TotalOptionsCost: body.Price.TotalOptionsCost,
		},
		Brand: ports.Brand{
			Name:    body.WatchBrand.BrandName,
			Country: body.WatchBrand.BrandCountry,
		},
		Version: etag,
	}
}

func toAccessoryModels(accessories []ports.Accessory) []accessoryModel {
	models := make([]accessoryModel, 0, len(accessories))
	for _, a := range accessories {
		models = append(models, accessoryModel{AccessoryName: a.Name, AccessoryCost: a.Cost})
	}
	return models
}
