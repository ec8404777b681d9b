package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&donationRecord{}, &wishRecord{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func donation(donor, item string, qty int, date string) *domain.Donation {
	return &domain.Donation{
		ID:       donor + "-" + item,
		Donor:    donor,
		Item:     item,
		Quantity: qty,
		Category: domain.CategoryToys,
		Status:   domain.DonationAvailable,
		Date:     date,
	}
}

func wish(recipient, item string, qty int, date string) *domain.Wish {
	return &domain.Wish{
		ID:        recipient + "-" + item,
		Recipient: recipient,
		Item:      item,
		Quantity:  qty,
		Category:  domain.CategoryBooks,
		Status:    domain.WishPending,
		Date:      date,
	}
}

func TestDonationStore_LoadAllMostRecentFirst(t *testing.T) {
	store := NewDonationStore(newTestDB(t))
	ctx := context.Background()

	for _, donor := range []string{"first", "second", "third"} {
		_, err := store.Add(ctx, donation(donor, "Kite", 1, "2024-12-01"))
		require.NoError(t, err)
	}

	all, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "third", all[0].Entity.Donor)
	require.Equal(t, "first", all[2].Entity.Donor)
	require.Greater(t, all[0].Metadata.Sequence, all[1].Metadata.Sequence)
	require.Equal(t, "third-Kite", all[0].Entity.ID)
}

func TestDonationStore_UpdateTouchesEveryRowWithKey(t *testing.T) {
	store := NewDonationStore(newTestDB(t))
	ctx := context.Background()
	_, err := store.Add(ctx, donation("Ann", "Kite", 2, "2024-12-01"))
	require.NoError(t, err)
	_, err = store.Add(ctx, donation("Ann", "Kite", 5, "2024-12-01"))
	require.NoError(t, err)
	_, err = store.Add(ctx, donation("Ann", "Kite", 7, "2024-12-02"))
	require.NoError(t, err)

	changed := donation("Ann", "Kite", 0, "2024-12-01")
	changed.Status = domain.DonationMatched
	require.NoError(t, store.Update(ctx, changed.Key(), changed))

	all, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, 7, all[0].Entity.Quantity)
	for _, p := range all[1:] {
		require.Equal(t, 0, p.Entity.Quantity)
		require.Equal(t, domain.DonationMatched, p.Entity.Status)
	}
}

func TestDonationStore_UpdateAndDeleteMissingKey(t *testing.T) {
	store := NewDonationStore(newTestDB(t))
	ctx := context.Background()
	missing := domain.NaturalKey{Name: "x", Item: "y", Date: "2024-01-01"}

	require.ErrorIs(t, store.Update(ctx, missing, donation("x", "y", 1, "2024-01-01")), ports.ErrNotFound)
	require.ErrorIs(t, store.Delete(ctx, missing), ports.ErrNotFound)
}

func TestDonationStore_ReplaceAllPreservesOrder(t *testing.T) {
	store := NewDonationStore(newTestDB(t))
	ctx := context.Background()
	_, err := store.Add(ctx, donation("stale", "Kite", 1, "2024-12-01"))
	require.NoError(t, err)

	require.NoError(t, store.ReplaceAll(ctx, []*domain.Donation{
		donation("a", "Kite", 1, "2024-12-01"),
		donation("b", "Kite", 2, "2024-12-01"),
	}))

	all, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "a", all[0].Entity.Donor)
	require.Equal(t, "b", all[1].Entity.Donor)
}

func TestWishStore_RoundTrip(t *testing.T) {
	store := NewWishStore(newTestDB(t))
	ctx := context.Background()
	w := wish("Bo", "Atlas", 3, "2024-12-03")
	_, err := store.Add(ctx, w)
	require.NoError(t, err)

	edited := w.Clone()
	edited.Recipient = "Bob"
	edited.Quantity = 0
	edited.Status = domain.WishFulfilled
	require.NoError(t, store.Update(ctx, w.Key(), edited))

	all, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Bob", all[0].Entity.Recipient)
	require.Equal(t, domain.WishFulfilled, all[0].Entity.Status)
	require.Equal(t, "2024-12-03", all[0].Entity.Date)

	require.ErrorIs(t, store.Delete(ctx, w.Key()), ports.ErrNotFound)
	require.NoError(t, store.Delete(ctx, edited.Key()))
	all, err = store.LoadAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestStores_NotConfigured(t *testing.T) {
	var donations *DonationStore
	_, err := donations.LoadAll(context.Background())
	require.Error(t, err)

	wishes := NewWishStore(nil)
	require.Error(t, wishes.ReplaceAll(context.Background(), nil))
}
