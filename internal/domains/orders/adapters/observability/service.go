package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/cantinota/noleggio-api/internal/domains/orders/domain"
	"github.com/cantinota/noleggio-api/internal/domains/orders/ports"
)

const tracerName = "github.com/cantinota/noleggio-api/internal/domains/orders/adapters/observability/service"

// Service decorates the orders application port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// Create persists one order per requested line with instrumentation.
func (s *Service) Create(ctx context.Context, input ports.CreateOrderInput) ([]*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.Create",
		attribute.Int64("order.customer_id", input.CustomerID),
		attribute.Int("order.lines", len(input.Lines)),
	)
	defer span.End()

	s.logInfo(ctx, "creating orders", slog.Int64("customer.id", input.CustomerID), slog.Int("lines", len(input.Lines)))
	result, err := s.inner.Create(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create orders", slog.Int64("customer.id", input.CustomerID))
	}
	s.metrics.recordCreated(ctx, int64(len(result)))
	s.logInfo(ctx, "orders created", slog.Int("count", len(result)))
	return result, nil
}

// List returns all orders joined with display data.
func (s *Service) List(ctx context.Context) ([]ports.OrderListing, error) {
	ctx, span := s.startSpan(ctx, "Service.List")
	defer span.End()

	s.logInfo(ctx, "listing orders")
	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.result.count", len(result)))
	s.logInfo(ctx, "listed orders", slog.Int("count", len(result)))
	return result, nil
}

// Update replaces an order's rental data.
func (s *Service) Update(ctx context.Context, id int64, input ports.UpdateOrderInput) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.Update", attribute.Int64("order.id", id))
	defer span.End()

	s.logInfo(ctx, "updating order", slog.Int64("order.id", id))
	result, err := s.inner.Update(ctx, id, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order", slog.Int64("order.id", id))
	}
	s.metrics.recordUpdated(ctx)
	if result != nil {
		s.logInfo(ctx, "order updated", slog.Int64("order.id", result.ID), slog.Float64("order.total", result.Total))
	}
	return result, nil
}

// SetStatus overwrites the delivery, return, and payment flags.
func (s *Service) SetStatus(ctx context.Context, id int64, delivered, returned, paid bool) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.SetStatus",
		attribute.Int64("order.id", id),
		attribute.Bool("order.delivered", delivered),
		attribute.Bool("order.returned", returned),
		attribute.Bool("order.paid", paid),
	)
	defer span.End()

	s.logInfo(ctx, "updating order status", slog.Int64("order.id", id))
	result, err := s.inner.SetStatus(ctx, id, delivered, returned, paid)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order status", slog.Int64("order.id", id))
	}
	s.metrics.recordStatusChanged(ctx, delivered, returned, paid)
	s.logInfo(ctx, "order status updated", slog.Int64("order.id", id))
	return result, nil
}

// Delete removes an order.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "Service.Delete", attribute.Int64("order.id", id))
	defer span.End()

	s.logInfo(ctx, "deleting order", slog.Int64("order.id", id))
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete order", slog.Int64("order.id", id))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "order deleted", slog.Int64("order.id", id))
	return nil
}

// MonthlyRevenue aggregates paid totals per delivery month.
func (s *Service) MonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenue, error) {
	ctx, span := s.startSpan(ctx, "Service.MonthlyRevenue")
	defer span.End()

	result, err := s.inner.MonthlyRevenue(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to compute monthly revenue")
	}
	span.SetAttributes(attribute.Int("report.months", len(result)))
	return result, nil
}

// MaterialStats counts orders per material.
func (s *Service) MaterialStats(ctx context.Context) ([]domain.MaterialOrderCount, error) {
	ctx, span := s.startSpan(ctx, "Service.MaterialStats")
	defer span.End()

	result, err := s.inner.MaterialStats(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to compute material stats")
	}
	span.SetAttributes(attribute.Int("report.materials", len(result)))
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	ordersCreated metric.Int64Counter
	ordersUpdated metric.Int64Counter
	ordersDeleted metric.Int64Counter
	statusChanges metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersCreated, _ := m.Int64Counter("orders.service.created", metric.WithDescription("Number of orders created"))
	ordersUpdated, _ := m.Int64Counter("orders.service.updated", metric.WithDescription("Number of orders updated"))
	ordersDeleted, _ := m.Int64Counter("orders.service.deleted", metric.WithDescription("Number of orders deleted"))
	statusChanges, _ := m.Int64Counter("orders.service.status_changes", metric.WithDescription("Number of status flag updates"))
	return serviceMetrics{
		ordersCreated: ordersCreated,
		ordersUpdated: ordersUpdated,
		ordersDeleted: ordersDeleted,
		statusChanges: statusChanges,
	}
}

func (m serviceMetrics) recordCreated(ctx context.Context, count int64) {
	addCounter(ctx, m.ordersCreated, count)
}

func (m serviceMetrics) recordUpdated(ctx context.Context) {
	addCounter(ctx, m.ordersUpdated, 1)
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	addCounter(ctx, m.ordersDeleted, 1)
}

func (m serviceMetrics) recordStatusChanged(ctx context.Context, delivered, returned, paid bool) {
	addCounter(ctx, m.statusChanges, 1,
		attribute.Bool("order.delivered", delivered),
		attribute.Bool("order.returned", returned),
		attribute.Bool("order.paid", paid),
	)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
