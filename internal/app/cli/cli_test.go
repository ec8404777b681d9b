package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	trackermemory "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/adapters/memory"
	trackerapp "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/application"
	trackerports "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
)

var testNow = time.Date(2024, 12, 24, 8, 0, 0, 0, time.UTC)

type harness struct {
	service *trackerapp.Service
	cleaned int
}

func newHarness() *harness {
	ids := 0
	svc := trackerapp.NewService(trackermemory.NewDonationStore(), trackermemory.NewWishStore(),
		trackerapp.WithClock(func() time.Time { return testNow }),
		trackerapp.WithIDGenerator(func() string {
			ids++
			return fmt.Sprintf("id-%d", ids)
		}),
	)
	return &harness{service: svc}
}

func (h *harness) run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Execute(context.Background(), Options{
		Out: &out,
		Err: &errOut,
		NewService: func(context.Context) (trackerports.Service, func(), error) {
			return h.service, func() { h.cleaned++ }, nil
		},
	}, args)
	return out.String(), errOut.String(), code
}

func TestDonationAddAndList(t *testing.T) {
	h := newHarness()

	out, _, code := h.run(t, "donation", "add", "--donor", "Ann", "--item", "Coat", "--quantity", "3", "--category", "Clothes")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Added donation Ann/Coat/2024-12-24 (Available)")

	out, _, code = h.run(t, "donation", "list")
	require.Equal(t, 0, code)
	require.Contains(t, out, "DONOR")
	require.Contains(t, out, "Ann")
	require.Contains(t, out, "Coat")
	require.Equal(t, 2, h.cleaned)
}

func TestDonationAdd_RejectsUnknownCategory(t *testing.T) {
	h := newHarness()

	_, errOut, code := h.run(t, "donation", "add", "--donor", "Ann", "--item", "Coat", "--quantity", "3", "--category", "Shoes")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "category is invalid")

	donations, err := h.service.ListDonations(context.Background())
	require.NoError(t, err)
	require.Empty(t, donations)
}

func TestDonationAdd_RequiresFlags(t *testing.T) {
	h := newHarness()

	_, errOut, code := h.run(t, "donation", "add", "--donor", "Ann")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "required flag")
}

func TestDonationAdd_MalformedQuantityIsInvalidInput(t *testing.T) {
	h := newHarness()

	_, errOut, code := h.run(t, "donation", "add", "--donor", "Ann", "--item", "Coat", "--quantity", "abc", "--category", "Clothes")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "invalid record input")
	require.Contains(t, errOut, "--quantity")
}

func TestWishEdit_KeepsUnsetFields(t *testing.T) {
	h := newHarness()
	_, _, code := h.run(t, "wish", "add", "--recipient", "Bo", "--item", "Lego", "--quantity", "2", "--category", "Toys")
	require.Equal(t, 0, code)

	out, _, code := h.run(t, "wish", "edit", "--recipient", "Bo", "--item", "Lego", "--date", "2024-12-24", "--set-quantity", "5")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Updated wish Bo/Lego/2024-12-24: 5 Lego (Pending)")

	wishes, err := h.service.ListWishes(context.Background())
	require.NoError(t, err)
	require.Len(t, wishes, 1)
	require.Equal(t, "Bo", wishes[0].Recipient)
	require.Equal(t, 5, wishes[0].Quantity)
}

func TestWishDelete_UnknownKey(t *testing.T) {
	h := newHarness()

	_, errOut, code := h.run(t, "wish", "delete", "--recipient", "Nobody", "--item", "Lego", "--date", "2024-12-24")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "record not found")
}

func TestMatchAndStats(t *testing.T) {
	h := newHarness()
	h.run(t, "donation", "add", "--donor", "Ann", "--item", "lego", "--quantity", "3", "--category", "Toys")
	h.run(t, "wish", "add", "--recipient", "Bo", "--item", "Lego", "--quantity", "2", "--category", "Toys")

	out, _, code := h.run(t, "match")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Matched: lego (2) from Ann -> Bo")
	require.Contains(t, out, "Total Matches: 1")

	out, _, code = h.run(t, "match")
	require.Equal(t, 0, code)
	require.Contains(t, out, "No matches found.")

	out, _, code = h.run(t, "stats")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Total Donations: 1")
	require.Contains(t, out, "Available Items: 1")
	require.Contains(t, out, "Total Wishes: 1")
	require.Contains(t, out, "Pending Items: 0")
}

func TestSync(t *testing.T) {
	h := newHarness()

	out, _, code := h.run(t, "sync")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Registry synced.")
}
