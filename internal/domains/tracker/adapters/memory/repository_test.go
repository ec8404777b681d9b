package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/shared/projection"
)

func TestDonationStore_LoadAllMostRecentFirst(t *testing.T) {
	store := NewDonationStore()
	ctx := context.Background()
	for _, donor := range []string{"first", "second", "third"} {
		_, err := store.Add(ctx, &domain.Donation{Donor: donor, Item: "Toy", Quantity: 1, Category: domain.CategoryToys, Status: domain.DonationAvailable, Date: "2024-12-01"})
		require.NoError(t, err)
	}

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	donors := []string{}
	for _, d := range projection.Entities(loaded) {
		donors = append(donors, d.Donor)
	}
	require.Equal(t, []string{"third", "second", "first"}, donors)
}

func TestDonationStore_UpdateAndDeleteByKey(t *testing.T) {
	store := NewDonationStore()
	ctx := context.Background()
	d := &domain.Donation{Donor: "Ann", Item: "Coat", Quantity: 2, Category: domain.CategoryClothes, Status: domain.DonationAvailable, Date: "2024-12-01"}
	_, err := store.Add(ctx, d)
	require.NoError(t, err)

	renamed := d.Clone()
	renamed.Donor = "Anna"
	require.NoError(t, store.Update(ctx, d.Key(), renamed))
	require.ErrorIs(t, store.Update(ctx, d.Key(), renamed), ports.ErrNotFound)

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, "Anna", loaded[0].Entity.Donor)

	require.NoError(t, store.Delete(ctx, renamed.Key()))
	require.ErrorIs(t, store.Delete(ctx, renamed.Key()), ports.ErrNotFound)
}

func TestWishStore_DuplicateKeysAreKept(t *testing.T) {
	store := NewWishStore()
	ctx := context.Background()
	w := &domain.Wish{Recipient: "Bo", Item: "Book", Quantity: 1, Category: domain.CategoryBooks, Status: domain.WishPending, Date: "2024-12-01"}
	_, err := store.Add(ctx, w)
	require.NoError(t, err)
	_, err = store.Add(ctx, w)
	require.NoError(t, err)

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	require.NoError(t, store.Delete(ctx, w.Key()))
	loaded, err = store.LoadAll(ctx)
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestWishStore_ReplaceAllKeepsGivenOrder(t *testing.T) {
	store := NewWishStore()
	ctx := context.Background()
	wishes := []*domain.Wish{
		{Recipient: "A", Item: "Toy", Quantity: 1, Category: domain.CategoryToys, Status: domain.WishPending, Date: "2024-12-01"},
		{Recipient: "B", Item: "Toy", Quantity: 1, Category: domain.CategoryToys, Status: domain.WishPending, Date: "2024-12-01"},
	}
	require.NoError(t, store.ReplaceAll(ctx, wishes))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, "A", loaded[0].Entity.Recipient)
	require.Equal(t, "B", loaded[1].Entity.Recipient)
}

func TestStore_ReturnsDetachedCopies(t *testing.T) {
	store := NewDonationStore()
	ctx := context.Background()
	d := &domain.Donation{Donor: "Ann", Item: "Coat", Quantity: 2, Category: domain.CategoryClothes, Status: domain.DonationAvailable, Date: "2024-12-01"}
	_, err := store.Add(ctx, d)
	require.NoError(t, err)
	d.Quantity = 99

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, loaded[0].Entity.Quantity)
}

func TestDonationStore_UpdateKeepsEachRowID(t *testing.T) {
	store := NewDonationStore()
	ctx := context.Background()
	first := &domain.Donation{ID: "id-a", Donor: "A", Item: "Coat", Quantity: 3, Category: domain.CategoryClothes, Status: domain.DonationAvailable, Date: "2024-12-01"}
	second := first.Clone()
	second.ID = "id-b"
	_, err := store.Add(ctx, first)
	require.NoError(t, err)
	_, err = store.Add(ctx, second)
	require.NoError(t, err)

	updated := first.Clone()
	updated.Quantity = 2
	require.NoError(t, store.Update(ctx, first.Key(), updated))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	require.Equal(t, "id-b", loaded[0].Entity.ID)
	require.Equal(t, "id-a", loaded[1].Entity.ID)
	for _, p := range loaded {
		require.Equal(t, 2, p.Entity.Quantity)
		require.Equal(t, "2024-12-01", p.Entity.Date)
	}
}

func TestWishStore_ReplaceAllSkipsNilRecords(t *testing.T) {
	store := NewWishStore()
	ctx := context.Background()
	wishes := []*domain.Wish{
		{ID: "w-1", Recipient: "A", Item: "Toy", Quantity: 1, Category: domain.CategoryToys, Status: domain.WishPending, Date: "2024-12-01"},
		nil,
	}
	require.NoError(t, store.ReplaceAll(ctx, wishes))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.NoError(t, store.Delete(ctx, wishes[0].Key()))
}
