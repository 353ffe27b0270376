// Package plans is the HTTP client for the service-plan service.
package plans

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/chronolux/watchstore/internal/clients/rest"
	"github.com/chronolux/watchstore/internal/domains/orders/ports"
)

var _ ports.ServicePlanClient = (*Client)(nil)

// Client resolves service plans over the plan service's REST API.
type Client struct {
	rest *rest.Client
}

// NewClient builds a plan client rooted at baseURL.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	restClient, err := rest.NewClient(baseURL, httpClient)
	if err != nil {
		return nil, err
	}
	return &Client{rest: restClient}, nil
}

// The plan service serializes expiration dates as calendar dates.
const expirationDateLayout = "2006-01-02"

type planResponse struct {
	PlanID          string `json:"planId"`
	CoverageDetails string `json:"coverageDetails"`
	ExpirationDate  string `json:"expirationDate"`
}

// GetServicePlan fetches one service plan by identifier.
func (c *Client) GetServicePlan(ctx context.Context, planID string) (*ports.ServicePlanView, error) {
	var body planResponse
	if _, err := c.rest.GetJSON(ctx, "/api/v1/plans/"+planID, &body); err != nil {
		return nil, err
	}
	view := &ports.ServicePlanView{
		PlanID:          body.PlanID,
		CoverageDetails: body.CoverageDetails,
	}
	if body.ExpirationDate != "" {
		expiry, err := time.Parse(expirationDateLayout, body.ExpirationDate)
		if err != nil {
			return nil, fmt.Errorf("parse plan %q expiration date: %w", planID, err)
		}
		view.ExpirationDate = expiry
	}
	return view, nil
}
