// Package customers is the HTTP client for the customer service.
package customers

import (
	"context"
	"net/http"

	"github.com/chronolux/watchstore/internal/clients/rest"
	"github.com/chronolux/watchstore/internal/domains/orders/ports"
)

var _ ports.CustomerClient = (*Client)(nil)

// Client resolves customers over the customer service's REST API.
type Client struct {
	rest *rest.Client
}

// NewClient builds a customer client rooted at baseURL.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	restClient, err := rest.NewClient(baseURL, httpClient)
	if err != nil {
		return nil, err
	}
	return &Client{rest: restClient}, nil
}

type customerResponse struct {
	CustomerID string `json:"customerId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
}

// GetCustomer fetches one customer by identifier.
func (c *Client) GetCustomer(ctx context.Context, customerID string) (*ports.CustomerView, error) {
	var body customerResponse
	if _, err := c.rest.GetJSON(ctx, "/api/v1/customers/"+customerID, &body); err != nil {
		return nil, err
	}
	return &ports.CustomerView{
		CustomerID: body.CustomerID,
		FirstName:  body.FirstName,
		LastName:   body.LastName,
	}, nil
}
