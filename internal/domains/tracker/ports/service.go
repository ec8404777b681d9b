package ports

import (
	"context"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/application/types"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
)

// Service exposes the tracker use cases to driving adapters.
type Service interface {
	ListDonations(ctx context.Context) ([]*domain.Donation, error)
	AddDonation(ctx context.Context, input types.AddDonationInput) (*domain.Donation, error)
	EditDonation(ctx context.Context, input types.EditDonationInput) (*domain.Donation, error)
	DeleteDonation(ctx context.Context, key domain.NaturalKey) error

	ListWishes(ctx context.Context) ([]*domain.Wish, error)
	AddWish(ctx context.Context, input types.AddWishInput) (*domain.Wish, error)
	EditWish(ctx context.Context, input types.EditWishInput) (*domain.Wish, error)
	DeleteWish(ctx context.Context, key domain.NaturalKey) error

	RunMatching(ctx context.Context) (*domain.MatchResult, error)
	Stats(ctx context.Context) (types.Stats, error)
	Sync(ctx context.Context) error
	Reload(ctx context.Context) error
}
