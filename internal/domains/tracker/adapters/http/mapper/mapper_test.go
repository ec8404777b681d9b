package mapper

import (
	"testing"

	"github.com/stretchr/testify/require"

	trackerdomain "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
)

func intPtr(v int) *int { return &v }

func TestValidate_DonationBody(t *testing.T) {
	require.NoError(t, Validate(DonationBody{Donor: "Ann", Item: "Kite", Quantity: intPtr(0), Category: "Toys"}))

	err := Validate(DonationBody{Donor: " ", Item: "", Quantity: intPtr(-2), Category: "Pets"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "is required", verr.Fields["donor"])
	require.Equal(t, "is required", verr.Fields["item"])
	require.Equal(t, "must be at least 0", verr.Fields["quantity"])
	require.Contains(t, verr.Fields["category"], "Toys, Clothes, Food, Books, Electronics, Other")
}

func TestValidate_MissingQuantity(t *testing.T) {
	err := Validate(WishBody{Recipient: "Bo", Item: "Atlas", Category: "Books"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "is required", verr.Fields["quantity"])
}

func TestValidate_EditKeyDate(t *testing.T) {
	edit := WishEdit{
		Key:      WishKey{Recipient: "Bo", Item: "Atlas", Date: "20-12-2024"},
		WishBody: WishBody{Recipient: "Bo", Item: "Atlas", Quantity: intPtr(1), Category: "Books"},
	}
	var verr *ValidationError
	require.ErrorAs(t, Validate(edit), &verr)
	require.Contains(t, verr.Fields, "key.date")
	require.Contains(t, verr.Error(), "key.date must be a date formatted 2006-01-02")
}

func TestToEditDonationInput(t *testing.T) {
	in := ToEditDonationInput(DonationEdit{
		Key:          DonationKey{Donor: "Ann", Item: "Kite", Date: "2024-12-01"},
		DonationBody: DonationBody{Donor: "Anne", Item: "Kite", Quantity: intPtr(4), Category: "Toys"},
	})
	require.Equal(t, trackerdomain.NaturalKey{Name: "Ann", Item: "Kite", Date: "2024-12-01"}, in.Key)
	require.Equal(t, "Anne", in.Name)
	require.Equal(t, 4, in.Quantity)
	require.Equal(t, trackerdomain.CategoryToys, in.Category)
}

func TestFromMatchResult(t *testing.T) {
	empty := FromMatchResult(&trackerdomain.MatchResult{})
	require.NotNil(t, empty.Events)
	require.Equal(t, []string{"No matches found."}, empty.Report)

	run := FromMatchResult(&trackerdomain.MatchResult{Events: []trackerdomain.MatchEvent{
		{DonationDonor: "A", DonationItem: "Kite", Quantity: 2, Recipient: "B"},
	}})
	require.Equal(t, 1, run.Total)
	require.Equal(t, []string{"Matched: Kite (2) from A -> B", "Total Matches: 1"}, run.Report)
}

func TestValidate_EmbeddedFieldsUseJSONNames(t *testing.T) {
	edit := DonationEdit{
		Key:          DonationKey{Donor: "Ann", Item: "Kite", Date: "2024-12-01"},
		DonationBody: DonationBody{Donor: "Ann", Item: "Kite", Quantity: intPtr(-1), Category: "Toys"},
	}
	var verr *ValidationError
	require.ErrorAs(t, Validate(edit), &verr)
	require.Equal(t, map[string]string{"quantity": "must be at least 0"}, verr.Fields)
}
