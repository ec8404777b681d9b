package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/application/types"
	trackerdomain "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	trackerports "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/platform/metrics"
)

const tracerName = "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/adapters/observability/service"

// Service decorates the tracker service with tracing, logging, and metrics.
type Service struct {
	inner    trackerports.Service
	tracer   trace.Tracer
	logger   *slog.Logger
	metrics  serviceMetrics
	matching *metrics.MatchingMetrics
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

// WithMatchingMetrics reports matching passes to Prometheus as well.
func WithMatchingMetrics(m *metrics.MatchingMetrics) Option {
	return func(s *Service) {
		s.matching = m
	}
}

// New wraps the core tracker service.
func New(inner trackerports.Service, opts ...Option) trackerports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.DiscardHandler),
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

func (s *Service) ListDonations(ctx context.Context) ([]*trackerdomain.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "TrackerService.ListDonations")
	defer span.End()

	result, err := s.inner.ListDonations(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list donations")
	}
	span.SetAttributes(attribute.Int("donation.count", len(result)))
	return result, nil
}

func (s *Service) AddDonation(ctx context.Context, input types.AddDonationInput) (*trackerdomain.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "TrackerService.AddDonation", trace.WithAttributes(fieldAttrs(input.RecordFields)...))
	defer span.End()

	s.logInfo(ctx, "adding donation", slog.String("donor", input.Name), slog.String("item", input.Item), slog.Int("quantity", input.Quantity))
	result, err := s.inner.AddDonation(ctx, input)
	if err != nil {
		return result, s.handleError(ctx, span, err, "failed to add donation", slog.String("donor", input.Name))
	}
	s.metrics.recordCreated(ctx, trackerdomain.KindDonation, result.Category)
	s.logInfo(ctx, "donation added", slog.String("donation.id", result.ID), slog.String("status", string(result.Status)))
	return result, nil
}

func (s *Service) EditDonation(ctx context.Context, input types.EditDonationInput) (*trackerdomain.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "TrackerService.EditDonation", trace.WithAttributes(keyAttr(input.Key)))
	defer span.End()

	s.logInfo(ctx, "editing donation", slog.String("key", input.Key.String()))
	result, err := s.inner.EditDonation(ctx, input)
	if err != nil {
		return result, s.handleError(ctx, span, err, "failed to edit donation", slog.String("key", input.Key.String()))
	}
	s.logInfo(ctx, "donation edited", slog.String("key", result.Key().String()), slog.String("status", string(result.Status)))
	return result, nil
}

func (s *Service) DeleteDonation(ctx context.Context, key trackerdomain.NaturalKey) error {
	ctx, span := s.tracer.Start(ctx, "TrackerService.DeleteDonation", trace.WithAttributes(keyAttr(key)))
	defer span.End()

	if err := s.inner.DeleteDonation(ctx, key); err != nil {
		return s.handleError(ctx, span, err, "failed to delete donation", slog.String("key", key.String()))
	}
	s.metrics.recordDeleted(ctx, trackerdomain.KindDonation)
	s.logInfo(ctx, "donation deleted", slog.String("key", key.String()))
	return nil
}

func (s *Service) ListWishes(ctx context.Context) ([]*trackerdomain.Wish, error) {
	ctx, span := s.tracer.Start(ctx, "TrackerService.ListWishes")
	defer span.End()

	result, err := s.inner.ListWishes(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list wishes")
	}
	span.SetAttributes(attribute.Int("wish.count", len(result)))
	return result, nil
}

func (s *Service) AddWish(ctx context.Context, input types.AddWishInput) (*trackerdomain.Wish, error) {
	ctx, span := s.tracer.Start(ctx, "TrackerService.AddWish", trace.WithAttributes(fieldAttrs(input.RecordFields)...))
	defer span.End()

	s.logInfo(ctx, "adding wish", slog.String("recipient", input.Name), slog.String("item", input.Item), slog.Int("quantity", input.Quantity))
	result, err := s.inner.AddWish(ctx, input)
	if err != nil {
		return result, s.handleError(ctx, span, err, "failed to add wish", slog.String("recipient", input.Name))
	}
	s.metrics.recordCreated(ctx, trackerdomain.KindWish, result.Category)
	s.logInfo(ctx, "wish added", slog.String("wish.id", result.ID), slog.String("status", string(result.Status)))
	return result, nil
}

func (s *Service) EditWish(ctx context.Context, input types.EditWishInput) (*trackerdomain.Wish, error) {
	ctx, span := s.tracer.Start(ctx, "TrackerService.EditWish", trace.WithAttributes(keyAttr(input.Key)))
	defer span.End()

	s.logInfo(ctx, "editing wish", slog.String("key", input.Key.String()))
	result, err := s.inner.EditWish(ctx, input)
	if err != nil {
		return result, s.handleError(ctx, span, err, "failed to edit wish", slog.String("key", input.Key.String()))
	}
	s.logInfo(ctx, "wish edited", slog.String("key", result.Key().String()), slog.String("status", string(result.Status)))
	return result, nil
}

func (s *Service) DeleteWish(ctx context.Context, key trackerdomain.NaturalKey) error {
	ctx, span := s.tracer.Start(ctx, "TrackerService.DeleteWish", trace.WithAttributes(keyAttr(key)))
	defer span.End()

	if err := s.inner.DeleteWish(ctx, key); err != nil {
		return s.handleError(ctx, span, err, "failed to delete wish", slog.String("key", key.String()))
	}
	s.metrics.recordDeleted(ctx, trackerdomain.KindWish)
	s.logInfo(ctx, "wish deleted", slog.String("key", key.String()))
	return nil
}

func (s *Service) RunMatching(ctx context.Context) (*trackerdomain.MatchResult, error) {
	ctx, span := s.tracer.Start(ctx, "TrackerService.RunMatching")
	defer span.End()

	s.logInfo(ctx, "running matching pass")
	result, err := s.inner.RunMatching(ctx)
	if err != nil {
		s.matching.IncError()
		return nil, s.handleError(ctx, span, err, "matching pass failed")
	}
	moved := 0
	for _, e := range result.Events {
		moved += e.Quantity
	}
	failures := make(map[string]int)
	for _, f := range result.Failures {
		failures[string(f.Kind)]++
		s.logError(ctx, "match persistence failed", nil, slog.String("kind", string(f.Kind)), slog.String("key", f.Key.String()), slog.String("error", f.Err))
	}
	span.SetAttributes(
		attribute.Int("match.events", len(result.Events)),
		attribute.Int("match.quantity", moved),
		attribute.Int("match.failures", len(result.Failures)),
	)
	s.metrics.recordMatching(ctx, len(result.Events), moved)
	s.matching.ObserveRun(len(result.Events), moved, failures)
	s.logInfo(ctx, "matching pass finished", slog.Int("events", len(result.Events)), slog.Int("quantity", moved), slog.Int("failures", len(result.Failures)))
	return result, nil
}

func (s *Service) Stats(ctx context.Context) (types.Stats, error) {
	ctx, span := s.tracer.Start(ctx, "TrackerService.Stats")
	defer span.End()

	result, err := s.inner.Stats(ctx)
	if err != nil {
		return result, s.handleError(ctx, span, err, "failed to compute stats")
	}
	return result, nil
}

func (s *Service) Sync(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "TrackerService.Sync")
	defer span.End()

	s.logInfo(ctx, "syncing registry to stores")
	if err := s.inner.Sync(ctx); err != nil {
		return s.handleError(ctx, span, err, "failed to sync registry")
	}
	s.logInfo(ctx, "registry synced")
	return nil
}

func (s *Service) Reload(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "TrackerService.Reload")
	defer span.End()

	if err := s.inner.Reload(ctx); err != nil {
		return s.handleError(ctx, span, err, "failed to reload registry")
	}
	s.logInfo(ctx, "registry reloaded")
	return nil
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

func fieldAttrs(f types.RecordFields) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("record.item", f.Item),
		attribute.String("record.category", string(f.Category)),
		attribute.Int("record.quantity", f.Quantity),
	}
}

func keyAttr(key trackerdomain.NaturalKey) attribute.KeyValue {
	return attribute.String("record.key", key.String())
}

type serviceMetrics struct {
	created      metric.Int64Counter
	deleted      metric.Int64Counter
	matchEvents  metric.Int64Counter
	quantityMove metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("tracker.service.records_created", metric.WithDescription("Number of donations and wishes created"))
	deleted, _ := m.Int64Counter("tracker.service.records_deleted", metric.WithDescription("Number of donations and wishes deleted"))
	matchEvents, _ := m.Int64Counter("tracker.service.match_events", metric.WithDescription("Number of allocations made by matching passes"))
	quantityMove, _ := m.Int64Counter("tracker.service.quantity_moved", metric.WithDescription("Units moved from donations to wishes"))
	return serviceMetrics{created: created, deleted: deleted, matchEvents: matchEvents, quantityMove: quantityMove}
}

func (m serviceMetrics) recordCreated(ctx context.Context, kind trackerdomain.RecordKind, category trackerdomain.Category) {
	if m.created != nil {
		m.created.Add(ctx, 1, metric.WithAttributes(
			attribute.String("record.kind", string(kind)),
			attribute.String("record.category", string(category)),
		))
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context, kind trackerdomain.RecordKind) {
	if m.deleted != nil {
		m.deleted.Add(ctx, 1, metric.WithAttributes(attribute.String("record.kind", string(kind))))
	}
}

func (m serviceMetrics) recordMatching(ctx context.Context, events, quantity int) {
	if m.matchEvents != nil {
		m.matchEvents.Add(ctx, int64(events))
	}
	if m.quantityMove != nil {
		m.quantityMove.Add(ctx, int64(quantity))
	}
}

var _ trackerports.Service = (*Service)(nil)
