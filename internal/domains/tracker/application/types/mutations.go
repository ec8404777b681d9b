package types

import "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"

// RecordFields carries the user-editable fields shared by donations and wishes.
// Name is the donor or the recipient depending on the record kind.
type RecordFields struct {
	Name     string
	Item     string
	Quantity int
	Category domain.Category
}

// AddDonationInput creates a donation dated today.
type AddDonationInput struct {
	RecordFields
}

// EditDonationInput replaces the fields of the donation stored under Key.
type EditDonationInput struct {
	Key domain.NaturalKey
	RecordFields
}

// AddWishInput creates a wish dated today.
type AddWishInput struct {
	RecordFields
}

// EditWishInput replaces the fields of the wish stored under Key.
type EditWishInput struct {
	Key domain.NaturalKey
	RecordFields
}
