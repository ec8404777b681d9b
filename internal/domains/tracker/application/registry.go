package application

import (
	"context"
	"errors"
	"sync"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/shared/projection"
)

// Registry keeps the session copy of both record collections in step with the
// stores. Every mutation updates the cached collection first and then asks the
// store to persist the same change; a failed store call is reported but the
// cached change is kept.
type Registry struct {
	mu            sync.Mutex
	donations     []*domain.Donation
	wishes        []*domain.Wish
	donationStore ports.DonationStore
	wishStore     ports.WishStore
}

// NewRegistry builds an empty registry over the given stores.
func NewRegistry(donationStore ports.DonationStore, wishStore ports.WishStore) *Registry {
	return &Registry{donationStore: donationStore, wishStore: wishStore}
}

// Load replaces both collections with the store contents. On failure the
// previous collections are kept.
func (r *Registry) Load(ctx context.Context) error {
	if err := r.ensureStores(); err != nil {
		return err
	}
	donations, err := r.donationStore.LoadAll(ctx)
	if err != nil {
		return err
	}
	wishes, err := r.wishStore.LoadAll(ctx)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.donations = projection.Entities(donations)
	r.wishes = projection.Entities(wishes)
	return nil
}

// Donations returns copies of the cached donations in collection order.
func (r *Registry) Donations() []*domain.Donation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Donation, 0, len(r.donations))
	for _, d := range r.donations {
		out = append(out, d.Clone())
	}
	return out
}

// Wishes returns copies of the cached wishes in collection order.
func (r *Registry) Wishes() []*domain.Wish {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Wish, 0, len(r.wishes))
	for _, w := range r.wishes {
		out = append(out, w.Clone())
	}
	return out
}

// AddDonation appends the donation and inserts it into the store.
func (r *Registry) AddDonation(ctx context.Context, d *domain.Donation) (*domain.Donation, error) {
	if err := r.ensureStores(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.donations = append(r.donations, d)
	if _, err := r.donationStore.Add(ctx, d.Clone()); err != nil {
		return d.Clone(), persistenceError(domain.KindDonation, d.Key(), err)
	}
	return d.Clone(), nil
}

// EditDonation applies edit to the first donation stored under key and
// persists it against the original key.
func (r *Registry) EditDonation(ctx context.Context, key domain.NaturalKey, edit func(*domain.Donation) error) (*domain.Donation, error) {
	if err := r.ensureStores(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.findDonation(key)
	if idx < 0 {
		return nil, ports.ErrNotFound
	}
	d := r.donations[idx]
	if err := edit(d); err != nil {
		return nil, err
	}
	if err := r.donationStore.Update(ctx, key, d.Clone()); err != nil {
		return d.Clone(), persistenceError(domain.KindDonation, key, err)
	}
	return d.Clone(), nil
}

// DeleteDonation removes the first donation stored under key.
func (r *Registry) DeleteDonation(ctx context.Context, key domain.NaturalKey) error {
	if err := r.ensureStores(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.findDonation(key)
	if idx < 0 {
		return ports.ErrNotFound
	}
	r.donations = append(r.donations[:idx], r.donations[idx+1:]...)
	if err := r.donationStore.Delete(ctx, key); err != nil {
		return persistenceError(domain.KindDonation, key, err)
	}
	return nil
}

// AddWish appends the wish and inserts it into the store.
func (r *Registry) AddWish(ctx context.Context, w *domain.Wish) (*domain.Wish, error) {
	if err := r.ensureStores(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wishes = append(r.wishes, w)
	if _, err := r.wishStore.Add(ctx, w.Clone()); err != nil {
		return w.Clone(), persistenceError(domain.KindWish, w.Key(), err)
	}
	return w.Clone(), nil
}

// EditWish applies edit to the first wish stored under key and persists it
// against the original key.
func (r *Registry) EditWish(ctx context.Context, key domain.NaturalKey, edit func(*domain.Wish) error) (*domain.Wish, error) {
	if err := r.ensureStores(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.findWish(key)
	if idx < 0 {
		return nil, ports.ErrNotFound
	}
	w := r.wishes[idx]
	if err := edit(w); err != nil {
		return nil, err
	}
	if err := r.wishStore.Update(ctx, key, w.Clone()); err != nil {
		return w.Clone(), persistenceError(domain.KindWish, key, err)
	}
	return w.Clone(), nil
}

// DeleteWish removes the first wish stored under key.
func (r *Registry) DeleteWish(ctx context.Context, key domain.NaturalKey) error {
	if err := r.ensureStores(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.findWish(key)
	if idx < 0 {
		return ports.ErrNotFound
	}
	r.wishes = append(r.wishes[:idx], r.wishes[idx+1:]...)
	if err := r.wishStore.Delete(ctx, key); err != nil {
		return persistenceError(domain.KindWish, key, err)
	}
	return nil
}

// Match runs one matching pass over the cached collections, writing every
// touched record to its store as the pass goes.
func (r *Registry) Match(ctx context.Context) (*domain.MatchResult, error) {
	if err := r.ensureStores(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	result := domain.RunMatching(r.donations, r.wishes, func(a domain.Allocation) []domain.PersistFailure {
		var failures []domain.PersistFailure
		if err := r.donationStore.Update(ctx, a.DonationKey, a.Donation.Clone()); err != nil {
			failures = append(failures, domain.PersistFailure{Kind: domain.KindDonation, Key: a.DonationKey, Err: err.Error()})
		}
		if err := r.wishStore.Update(ctx, a.WishKey, a.Wish.Clone()); err != nil {
			failures = append(failures, domain.PersistFailure{Kind: domain.KindWish, Key: a.WishKey, Err: err.Error()})
		}
		return failures
	})
	return &result, nil
}

// Sync overwrites both stores with the cached collections.
func (r *Registry) Sync(ctx context.Context) error {
	if err := r.ensureStores(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	donations := make([]*domain.Donation, 0, len(r.donations))
	for _, d := range r.donations {
		donations = append(donations, d.Clone())
	}
	wishes := make([]*domain.Wish, 0, len(r.wishes))
	for _, w := range r.wishes {
		wishes = append(wishes, w.Clone())
	}
	return errors.Join(
		r.donationStore.ReplaceAll(ctx, donations),
		r.wishStore.ReplaceAll(ctx, wishes),
	)
}

func (r *Registry) findDonation(key domain.NaturalKey) int {
	for i, d := range r.donations {
		if d.Key() == key {
			return i
		}
	}
	return -1
}

func (r *Registry) findWish(key domain.NaturalKey) int {
	for i, w := range r.wishes {
		if w.Key() == key {
			return i
		}
	}
	return -1
}

func (r *Registry) ensureStores() error {
	if r == nil || r.donationStore == nil || r.wishStore == nil {
		return errors.New("tracker registry not configured")
	}
	return nil
}
