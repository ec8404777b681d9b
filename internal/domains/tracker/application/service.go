package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/application/types"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
)

// Service orchestrates the donation and wish list use cases over a Registry.
type Service struct {
	registry *Registry
	now      func() time.Time
	newID    func() string
}

// Option customises a Service.
type Option func(*Service)

// WithClock overrides the time source used to date new records.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the surrogate identifier source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewService wires the tracker service. The registry starts empty; call Reload
// to populate it from the stores.
func NewService(donations ports.DonationStore, wishes ports.WishStore, opts ...Option) *Service {
	s := &Service{
		registry: NewRegistry(donations, wishes),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Registry exposes the underlying registry.
func (s *Service) Registry() *Registry {
	return s.registry
}

func (s *Service) ListDonations(_ context.Context) ([]*domain.Donation, error) {
	return s.registry.Donations(), nil
}

// AddDonation creates a donation dated today.
func (s *Service) AddDonation(ctx context.Context, input types.AddDonationInput) (*domain.Donation, error) {
	f := normalize(input.RecordFields)
	d, err := domain.NewDonation(s.newID(), f.Name, f.Item, f.Quantity, f.Category, s.now())
	if err != nil {
		return nil, mapError(err)
	}
	return s.registry.AddDonation(ctx, d)
}

// EditDonation rewrites the donation stored under input.Key.
func (s *Service) EditDonation(ctx context.Context, input types.EditDonationInput) (*domain.Donation, error) {
	f := normalize(input.RecordFields)
	updated, err := s.registry.EditDonation(ctx, input.Key, func(d *domain.Donation) error {
		return d.Edit(f.Name, f.Item, f.Quantity, f.Category)
	})
	return updated, mapError(err)
}

func (s *Service) DeleteDonation(ctx context.Context, key domain.NaturalKey) error {
	return s.registry.DeleteDonation(ctx, key)
}

func (s *Service) ListWishes(_ context.Context) ([]*domain.Wish, error) {
	return s.registry.Wishes(), nil
}

// AddWish creates a wish dated today.
func (s *Service) AddWish(ctx context.Context, input types.AddWishInput) (*domain.Wish, error) {
	f := normalize(input.RecordFields)
	w, err := domain.NewWish(s.newID(), f.Name, f.Item, f.Quantity, f.Category, s.now())
	if err != nil {
		return nil, mapError(err)
	}
	return s.registry.AddWish(ctx, w)
}

// EditWish rewrites the wish stored under input.Key.
func (s *Service) EditWish(ctx context.Context, input types.EditWishInput) (*domain.Wish, error) {
	f := normalize(input.RecordFields)
	updated, err := s.registry.EditWish(ctx, input.Key, func(w *domain.Wish) error {
		return w.Edit(f.Name, f.Item, f.Quantity, f.Category)
	})
	return updated, mapError(err)
}

func (s *Service) DeleteWish(ctx context.Context, key domain.NaturalKey) error {
	return s.registry.DeleteWish(ctx, key)
}

// RunMatching executes one matching pass. Per-record persistence failures are
// reported in the result, not as an error.
func (s *Service) RunMatching(ctx context.Context) (*domain.MatchResult, error) {
	return s.registry.Match(ctx)
}

// Stats counts records and sums the quantities still open for matching.
func (s *Service) Stats(_ context.Context) (types.Stats, error) {
	var stats types.Stats
	for _, d := range s.registry.Donations() {
		stats.TotalDonations++
		if d.Open() {
			stats.AvailableQuantity += d.Quantity
		}
	}
	for _, w := range s.registry.Wishes() {
		stats.TotalWishes++
		if w.Open() {
			stats.PendingQuantity += w.Quantity
		}
	}
	return stats, nil
}

// Sync writes the whole registry back to the stores.
func (s *Service) Sync(ctx context.Context) error {
	return s.registry.Sync(ctx)
}

// Reload discards the registry and reads both stores again.
func (s *Service) Reload(ctx context.Context) error {
	return s.registry.Load(ctx)
}

func normalize(f types.RecordFields) types.RecordFields {
	f.Name = strings.TrimSpace(f.Name)
	f.Item = strings.TrimSpace(f.Item)
	return f
}

var _ ports.Service = (*Service)(nil)
