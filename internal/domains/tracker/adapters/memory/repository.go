package memory

import (
	"context"
	"time"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/shared/projection"
)

var (
	_ ports.DonationStore = (*DonationStore)(nil)
	_ ports.WishStore     = (*WishStore)(nil)
)

// DonationStore is an in-memory donation store for development and tests.
type DonationStore struct {
	table *table[*domain.Donation]
}

func NewDonationStore() *DonationStore {
	return &DonationStore{table: newTable((*domain.Donation).Key, (*domain.Donation).Clone, assignDonation, func(d *domain.Donation) bool { return d == nil })}
}

// WithClock overrides the time source for deterministic testing.
func (s *DonationStore) WithClock(now func() time.Time) {
	s.table.withClock(now)
}

func (s *DonationStore) LoadAll(ctx context.Context) ([]*projection.Projection[*domain.Donation], error) {
	return s.table.loadAll(ctx)
}

func (s *DonationStore) Add(ctx context.Context, d *domain.Donation) (*projection.Projection[*domain.Donation], error) {
	if d == nil {
		return nil, errNilRecord
	}
	return s.table.add(ctx, d)
}

func (s *DonationStore) Update(ctx context.Context, key domain.NaturalKey, d *domain.Donation) error {
	if d == nil {
		return errNilRecord
	}
	return s.table.update(ctx, key, d)
}

func (s *DonationStore) Delete(ctx context.Context, key domain.NaturalKey) error {
	return s.table.delete(ctx, key)
}

func (s *DonationStore) ReplaceAll(ctx context.Context, donations []*domain.Donation) error {
	return s.table.replaceAll(ctx, donations)
}

// WishStore is an in-memory wish store for development and tests.
type WishStore struct {
	table *table[*domain.Wish]
}

func NewWishStore() *WishStore {
	return &WishStore{table: newTable((*domain.Wish).Key, (*domain.Wish).Clone, assignWish, func(w *domain.Wish) bool { return w == nil })}
}

// WithClock overrides the time source for deterministic testing.
func (s *WishStore) WithClock(now func() time.Time) {
	s.table.withClock(now)
}

func (s *WishStore) LoadAll(ctx context.Context) ([]*projection.Projection[*domain.Wish], error) {
	return s.table.loadAll(ctx)
}

func (s *WishStore) Add(ctx context.Context, w *domain.Wish) (*projection.Projection[*domain.Wish], error) {
	if w == nil {
		return nil, errNilRecord
	}
	return s.table.add(ctx, w)
}

func (s *WishStore) Update(ctx context.Context, key domain.NaturalKey, w *domain.Wish) error {
	if w == nil {
		return errNilRecord
	}
	return s.table.update(ctx, key, w)
}

func (s *WishStore) Delete(ctx context.Context, key domain.NaturalKey) error {
	return s.table.delete(ctx, key)
}

func (s *WishStore) ReplaceAll(ctx context.Context, wishes []*domain.Wish) error {
	return s.table.replaceAll(ctx, wishes)
}

func assignDonation(dst, src *domain.Donation) {
	dst.Donor = src.Donor
	dst.Item = src.Item
	dst.Quantity = src.Quantity
	dst.Category = src.Category
	dst.Status = src.Status
}

func assignWish(dst, src *domain.Wish) {
	dst.Recipient = src.Recipient
	dst.Item = src.Item
	dst.Quantity = src.Quantity
	dst.Category = src.Category
	dst.Status = src.Status
}
