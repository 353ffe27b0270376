// Package observability decorates the order service with tracing,
// structured logging, and metrics.
package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	types "github.com/chronolux/watchstore/internal/domains/orders/application/types"
	"github.com/chronolux/watchstore/internal/domains/orders/ports"
)

const tracerName = "github.com/chronolux/watchstore/internal/domains/orders/adapters/observability/service"

// Service decorates the order service with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) ListOrders(ctx context.Context) ([]*types.OrderView, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders")
	defer span.End()

	result, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*types.OrderView, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrder",
		trace.WithAttributes(attribute.String("order.id", orderID)))
	defer span.End()

	result, err := s.inner.GetOrder(ctx, orderID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.id", orderID))
	}
	return result, nil
}

func (s *Service) CreateOrder(ctx context.Context, input types.CreateOrderInput) (*types.OrderView, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.CreateOrder")
	defer span.End()

	s.logInfo(ctx, "creating order")
	result, err := s.inner.CreateOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create order")
	}
	s.metrics.recordCreated(ctx, string(result.OrderStatus))
	s.logInfo(ctx, "order created",
		slog.String("order.id", result.OrderID),
		slog.String("order.status", string(result.OrderStatus)))
	return result, nil
}

func (s *Service) UpdateOrder(ctx context.Context, orderID string, input types.UpdateOrderInput) (*types.OrderView, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.UpdateOrder",
		trace.WithAttributes(attribute.String("order.id", orderID)))
	defer span.End()

	s.logInfo(ctx, "updating order", slog.String("order.id", orderID))
	result, err := s.inner.UpdateOrder(ctx, orderID, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order", slog.String("order.id", orderID))
	}
	s.metrics.recordUpdated(ctx, string(result.OrderStatus))
	s.logInfo(ctx, "order updated",
		slog.String("order.id", orderID),
		slog.String("order.status", string(result.OrderStatus)))
	return result, nil
}

func (s *Service) DeleteOrder(ctx context.Context, orderID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.DeleteOrder",
		trace.WithAttributes(attribute.String("order.id", orderID)))
	defer span.End()

	s.logInfo(ctx, "deleting order", slog.String("order.id", orderID))
	message, err := s.inner.DeleteOrder(ctx, orderID)
	if err != nil {
		return "", s.handleError(ctx, span, err, "failed to delete order", slog.String("order.id", orderID))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "order deleted", slog.String("order.id", orderID))
	return message, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	ordersCreated metric.Int64Counter
	ordersUpdated metric.Int64Counter
	ordersDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("orders.service.created", metric.WithDescription("Number of orders created"))
	updated, _ := m.Int64Counter("orders.service.updated", metric.WithDescription("Number of orders updated"))
	deleted, _ := m.Int64Counter("orders.service.deleted", metric.WithDescription("Number of orders deleted"))
	return serviceMetrics{ordersCreated: created, ordersUpdated: updated, ordersDeleted: deleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context, status string) {
	if m.ordersCreated != nil {
		m.ordersCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", status)))
	}
}

func (m serviceMetrics) recordUpdated(ctx context.Context, status string) {
	if m.ordersUpdated != nil {
		m.ordersUpdated.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", status)))
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.ordersDeleted != nil {
		m.ordersDeleted.Add(ctx, 1)
	}
}

var _ ports.Service = (*Service)(nil)
