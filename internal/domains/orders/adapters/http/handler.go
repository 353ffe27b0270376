// Package http wires the order service to its gin transport.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	ordersmapper "github.com/chronolux/watchstore/internal/domains/orders/adapters/http/mapper"
	"github.com/chronolux/watchstore/internal/domains/orders/application"
	"github.com/chronolux/watchstore/internal/domains/orders/ports"
	apierrors "github.com/chronolux/watchstore/internal/shared/errors"
)

// OrderAPI exposes the order lifecycle over HTTP.
type OrderAPI struct {
	service   ports.Service
	responder *apierrors.Responder
}

// NewOrderAPI creates the transport adapter backed by the provided service.
func NewOrderAPI(service ports.Service) *OrderAPI {
	return &OrderAPI{
		service:   service,
		responder: apierrors.NewResponder(mapServiceError),
	}
}

// Register mounts the order routes on the router group.
func (api *OrderAPI) Register(r gin.IRouter) {
	orders := r.Group("/api/v1/orders")
	orders.GET("", api.ListOrders)
	orders.GET("/:orderId", api.GetOrder)
	orders.POST("", api.CreateOrder)
	orders.PUT("/:orderId", api.UpdateOrder)
	orders.DELETE("/:orderId", api.DeleteOrder)
}

// GET /api/v1/orders
func (api *OrderAPI) ListOrders(c *gin.Context) {
	views, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordersmapper.FromViewList(views))
}

// GET /api/v1/orders/:orderId
func (api *OrderAPI) GetOrder(c *gin.Context) {
	view, err := api.service.GetOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordersmapper.FromView(view))
}

// POST /api/v1/orders
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload ordersmapper.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	view, err := api.service.CreateOrder(c.Request.Context(), ordersmapper.ToCreateInput(payload))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ordersmapper.FromView(view))
}

// PUT /api/v1/orders/:orderId
func (api *OrderAPI) UpdateOrder(c *gin.Context) {
	var payload ordersmapper.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	view, err := api.service.UpdateOrder(c.Request.Context(), c.Param("orderId"), ordersmapper.ToUpdateInput(payload))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordersmapper.FromView(view))
}

// DELETE /api/v1/orders/:orderId
func (api *OrderAPI) DeleteOrder(c *gin.Context) {
	message, err := api.service.DeleteOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.String(http.StatusOK, message)
}

// mapServiceError translates the service taxonomy into problem details the
// gateway can act on without re-deriving the reason.
func mapServiceError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, application.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, application.ErrDuplicateOrderName):
		return apierrors.ErrUnprocessable.WithDetail(err.Error()), true
	case errors.Is(err, application.ErrInvalidInput):
		return apierrors.ErrUnprocessable.WithDetail(err.Error()), true
	default:
		return apierrors.ProblemDetail{}, false
	}
}
