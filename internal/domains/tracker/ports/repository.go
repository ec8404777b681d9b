package ports

import (
	"context"
	"errors"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/shared/projection"
)

// ErrNotFound signals that no stored or cached record matched a natural key.
var ErrNotFound = errors.New("record not found")

// DonationStore is the durable store for donations, addressed by natural key.
// LoadAll returns records most recently inserted first.
type DonationStore interface {
	LoadAll(ctx context.Context) ([]*projection.Projection[*domain.Donation], error)
	Add(ctx context.Context, donation *domain.Donation) (*projection.Projection[*domain.Donation], error)
	// Update overwrites every row matching key; ErrNotFound when none matched.
	Update(ctx context.Context, key domain.NaturalKey, donation *domain.Donation) error
	// Delete removes every row matching key; ErrNotFound when none matched.
	Delete(ctx context.Context, key domain.NaturalKey) error
	// ReplaceAll swaps the stored set for donations, preserving their order on the next LoadAll.
	ReplaceAll(ctx context.Context, donations []*domain.Donation) error
}

// WishStore is the durable store for wishes, addressed by natural key.
type WishStore interface {
	LoadAll(ctx context.Context) ([]*projection.Projection[*domain.Wish], error)
	Add(ctx context.Context, wish *domain.Wish) (*projection.Projection[*domain.Wish], error)
	Update(ctx context.Context, key domain.NaturalKey, wish *domain.Wish) error
	Delete(ctx context.Context, key domain.NaturalKey) error
	ReplaceAll(ctx context.Context, wishes []*domain.Wish) error
}
