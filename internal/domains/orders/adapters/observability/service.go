package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	orderstypes "github.com/qashop/storefront-api/internal/domains/orders/application/types"
	ordersdomain "github.com/qashop/storefront-api/internal/domains/orders/domain"
	ordersports "github.com/qashop/storefront-api/internal/domains/orders/ports"
)

const tracerName = "github.com/qashop/storefront-api/internal/domains/orders/adapters/observability/service"

// Service decorates the orders service with tracing, logging, and metrics.
type Service struct {
	inner   ordersports.Service
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

// New wraps the core orders service.
func New(inner ordersports.Service, opts ...Option) ordersports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
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
	return s
}

func (s *Service) CreateOrders(ctx context.Context, idempotencyKey string, raws []orderstypes.RawOrder) (*orderstypes.CreateResult, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.CreateOrders",
		trace.WithAttributes(
			attribute.Int("batch.size", len(raws)),
			attribute.Bool("idempotency.keyed", idempotencyKey != ""),
		))
	defer span.End()

	s.logInfo(ctx, "creating orders", slog.Int("batch.size", len(raws)))
	result, err := s.inner.CreateOrders(ctx, idempotencyKey, raws)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create orders", slog.Int("batch.size", len(raws)))
	}
	s.metrics.recordCreated(ctx, len(result.OrderNumbers), result.Replayed)
	s.logInfo(ctx, "orders created",
		slog.Int("count", len(result.OrderNumbers)),
		slog.String("first_number", result.First()),
		slog.Bool("replayed", result.Replayed))
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.ListOrders")
	defer span.End()

	result, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) FindByNumber(ctx context.Context, number string) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.FindByNumber",
		trace.WithAttributes(attribute.String("order.number", number)))
	defer span.End()

	result, err := s.inner.FindByNumber(ctx, number)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to find order", slog.String("order.number", number))
	}
	return result, nil
}

func (s *Service) FindByEmail(ctx context.Context, email string) ([]*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.FindByEmail")
	defer span.End()

	result, err := s.inner.FindByEmail(ctx, email)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to find orders by email")
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) CancelOrder(ctx context.Context, number string) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.CancelOrder",
		trace.WithAttributes(attribute.String("order.number", number)))
	defer span.End()

	s.logInfo(ctx, "cancelling order", slog.String("order.number", number))
	result, err := s.inner.CancelOrder(ctx, number)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to cancel order", slog.String("order.number", number))
	}
	s.metrics.recordCancelled(ctx)
	s.logInfo(ctx, "order cancelled", slog.String("order.number", result.Number))
	return result, nil
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
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	ordersCreated   metric.Int64Counter
	ordersReplayed  metric.Int64Counter
	ordersCancelled metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("orders.service.orders_created", metric.WithDescription("Number of orders created"))
	replayed, _ := m.Int64Counter("orders.service.batches_replayed", metric.WithDescription("Number of idempotent batch replays"))
	cancelled, _ := m.Int64Counter("orders.service.orders_cancelled", metric.WithDescription("Number of orders cancelled"))
	return serviceMetrics{ordersCreated: created, ordersReplayed: replayed, ordersCancelled: cancelled}
}

func (m serviceMetrics) recordCreated(ctx context.Context, count int, replayed bool) {
	if replayed {
		if m.ordersReplayed != nil {
			m.ordersReplayed.Add(ctx, 1)
		}
		return
	}
	if m.ordersCreated != nil {
		m.ordersCreated.Add(ctx, int64(count))
	}
}

func (m serviceMetrics) recordCancelled(ctx context.Context) {
	if m.ordersCancelled != nil {
		m.ordersCancelled.Add(ctx, 1)
	}
}

var _ ordersports.Service = (*Service)(nil)
