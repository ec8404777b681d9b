package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func donation(donor, item string, qty int, cat Category) *Donation {
	d := &Donation{Donor: donor, Item: item, Quantity: qty, Category: cat, Status: DonationAvailable, Date: "2024-12-01"}
	if qty == 0 {
		d.Status = DonationMatched
	}
	return d
}

func wish(recipient, item string, qty int, cat Category) *Wish {
	w := &Wish{Recipient: recipient, Item: item, Quantity: qty, Category: cat, Status: WishPending, Date: "2024-12-02"}
	if qty == 0 {
		w.Status = WishFulfilled
	}
	return w
}

func TestRunMatching_PartialDonation(t *testing.T) {
	d := donation("A", "Coat", 5, CategoryClothes)
	w := wish("B", "coat", 3, CategoryClothes)

	result := RunMatching([]*Donation{d}, []*Wish{w}, nil)

	require.Equal(t, []MatchEvent{{DonationDonor: "A", DonationItem: "Coat", Quantity: 3, Recipient: "B"}}, result.Events)
	require.Equal(t, 2, d.Quantity)
	require.Equal(t, DonationAvailable, d.Status)
	require.Equal(t, 0, w.Quantity)
	require.Equal(t, WishFulfilled, w.Status)
}

func TestRunMatching_DonationSpreadsAcrossWishes(t *testing.T) {
	d := donation("A", "Book", 4, CategoryBooks)
	first := wish("B", "Book", 3, CategoryBooks)
	second := wish("C", "book", 2, CategoryBooks)

	result := RunMatching([]*Donation{d}, []*Wish{first, second}, nil)

	require.Len(t, result.Events, 2)
	require.Equal(t, 3, result.Events[0].Quantity)
	require.Equal(t, "B", result.Events[0].Recipient)
	require.Equal(t, 1, result.Events[1].Quantity)
	require.Equal(t, "C", result.Events[1].Recipient)

	require.Equal(t, 0, d.Quantity)
	require.Equal(t, DonationMatched, d.Status)
	require.Equal(t, WishFulfilled, first.Status)
	require.Equal(t, 1, second.Quantity)
	require.Equal(t, WishPending, second.Status)
}

func TestRunMatching_DuplicateKeysAreNotDeduplicated(t *testing.T) {
	d1 := donation("A", "Coat", 2, CategoryClothes)
	d2 := donation("A", "Coat", 3, CategoryClothes)
	w := wish("B", "Coat", 4, CategoryClothes)
	require.Equal(t, d1.Key(), d2.Key())

	var persisted []NaturalKey
	result := RunMatching([]*Donation{d1, d2}, []*Wish{w}, func(a Allocation) []PersistFailure {
		persisted = append(persisted, a.DonationKey)
		return nil
	})

	require.Len(t, result.Events, 2)
	require.Equal(t, 2, result.Events[0].Quantity)
	require.Equal(t, 2, result.Events[1].Quantity)
	require.Equal(t, 0, d1.Quantity)
	require.Equal(t, DonationMatched, d1.Status)
	require.Equal(t, 1, d2.Quantity)
	require.Equal(t, DonationAvailable, d2.Status)
	require.Equal(t, 0, w.Quantity)
	require.Equal(t, WishFulfilled, w.Status)
	require.Equal(t, []NaturalKey{d1.Key(), d1.Key()}, persisted)
}

func TestRunMatching_CategoryMismatch(t *testing.T) {
	d := donation("A", "Blanket", 2, CategoryOther)
	w := wish("B", "Blanket", 2, CategoryClothes)

	result := RunMatching([]*Donation{d}, []*Wish{w}, nil)

	require.Empty(t, result.Events)
	require.Equal(t, 2, d.Quantity)
	require.Equal(t, 2, w.Quantity)
}

func TestRunMatching_CaseInsensitiveItem(t *testing.T) {
	d := donation("A", "Blanket", 1, CategoryOther)
	w := wish("B", "blanket", 1, CategoryOther)

	result := RunMatching([]*Donation{d}, []*Wish{w}, nil)

	require.Len(t, result.Events, 1)
}

func TestRunMatching_WishCollectsFromSeveralDonations(t *testing.T) {
	first := donation("A", "Rice", 2, CategoryFood)
	second := donation("B", "Rice", 5, CategoryFood)
	third := donation("C", "Rice", 5, CategoryFood)
	w := wish("D", "rice", 4, CategoryFood)

	result := RunMatching([]*Donation{first, second, third}, []*Wish{w}, nil)

	require.Len(t, result.Events, 2)
	require.Equal(t, 0, first.Quantity)
	require.Equal(t, 3, second.Quantity)
	require.Equal(t, 5, third.Quantity, "scanning stops once the wish is fulfilled")
}

func TestRunMatching_SkipsClosedRecords(t *testing.T) {
	matched := donation("A", "Toy", 3, CategoryToys)
	matched.Status = DonationMatched
	empty := donation("B", "Toy", 0, CategoryToys)
	fulfilled := wish("C", "Toy", 2, CategoryToys)
	fulfilled.Status = WishFulfilled

	result := RunMatching([]*Donation{matched, empty}, []*Wish{fulfilled}, nil)

	require.Empty(t, result.Events)
	require.NotNil(t, result.Events)
	require.Equal(t, 3, matched.Quantity)
}

func TestRunMatching_SecondPassIsNoop(t *testing.T) {
	d := donation("A", "Laptop", 1, CategoryElectronics)
	w := wish("B", "laptop", 1, CategoryElectronics)
	calls := 0
	persist := func(Allocation) []PersistFailure {
		calls++
		return nil
	}

	first := RunMatching([]*Donation{d}, []*Wish{w}, persist)
	require.Len(t, first.Events, 1)
	require.Equal(t, 1, calls)

	second := RunMatching([]*Donation{d}, []*Wish{w}, persist)
	require.Empty(t, second.Events)
	require.Equal(t, 1, calls)
}

func TestRunMatching_PersistsWithPrePassKeys(t *testing.T) {
	d := donation("A", "Coat", 5, CategoryClothes)
	w1 := wish("B", "coat", 2, CategoryClothes)
	w2 := wish("C", "COAT", 2, CategoryClothes)
	var allocations []Allocation

	RunMatching([]*Donation{d}, []*Wish{w1, w2}, func(a Allocation) []PersistFailure {
		allocations = append(allocations, a)
		return nil
	})

	require.Len(t, allocations, 2)
	for _, a := range allocations {
		require.Equal(t, NaturalKey{Name: "A", Item: "Coat", Date: "2024-12-01"}, a.DonationKey)
	}
	require.Equal(t, NaturalKey{Name: "B", Item: "coat", Date: "2024-12-02"}, allocations[0].WishKey)
	require.Equal(t, NaturalKey{Name: "C", Item: "COAT", Date: "2024-12-02"}, allocations[1].WishKey)
}

func TestRunMatching_PersistFailureDoesNotAbort(t *testing.T) {
	d := donation("A", "Coat", 5, CategoryClothes)
	w1 := wish("B", "coat", 2, CategoryClothes)
	w2 := wish("C", "coat", 2, CategoryClothes)
	calls := 0

	result := RunMatching([]*Donation{d}, []*Wish{w1, w2}, func(a Allocation) []PersistFailure {
		calls++
		if calls == 1 {
			return []PersistFailure{{Kind: KindWish, Key: a.WishKey, Err: errors.New("disk full").Error()}}
		}
		return nil
	})

	require.Len(t, result.Events, 2)
	require.Len(t, result.Failures, 1)
	require.Equal(t, KindWish, result.Failures[0].Kind)
	require.Equal(t, 1, d.Quantity)
}

func TestRunMatching_QuantitiesStayNonNegativeAndConsistent(t *testing.T) {
	donations := []*Donation{
		donation("A", "Toy", 3, CategoryToys),
		donation("B", "toy", 1, CategoryToys),
		donation("C", "Book", 2, CategoryBooks),
	}
	wishes := []*Wish{
		wish("X", "TOY", 2, CategoryToys),
		wish("Y", "Toy", 5, CategoryToys),
		wish("Z", "book", 1, CategoryBooks),
	}
	before := 0
	for _, d := range donations {
		before += d.Quantity
	}

	result := RunMatching(donations, wishes, nil)

	moved := 0
	for _, e := range result.Events {
		moved += e.Quantity
	}
	after := 0
	for _, d := range donations {
		require.GreaterOrEqual(t, d.Quantity, 0)
		require.Equal(t, d.Quantity == 0, d.Status == DonationMatched)
		after += d.Quantity
	}
	for _, w := range wishes {
		require.GreaterOrEqual(t, w.Quantity, 0)
		require.Equal(t, w.Quantity == 0, w.Status == WishFulfilled)
	}
	require.Equal(t, before-moved, after)
}

func TestMatchResult_Report(t *testing.T) {
	empty := MatchResult{}
	require.Equal(t, []string{"No matches found."}, empty.Report())

	result := MatchResult{Events: []MatchEvent{{DonationDonor: "A", DonationItem: "Coat", Quantity: 3, Recipient: "B"}}}
	require.Equal(t, "Matched: Coat (3) from A -> B\nTotal Matches: 1", result.String())
}
