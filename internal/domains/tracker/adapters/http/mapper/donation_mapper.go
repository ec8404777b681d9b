package mapper

import (
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/application/types"
	trackerdomain "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
)

// Donation is the JSON shape returned for a donation.
type Donation struct {
	ID       string `json:"id"`
	Donor    string `json:"donor"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}

// DonationBody carries the editable donation fields.
type DonationBody struct {
	Donor    string `json:"donor" validate:"notblank"`
	Item     string `json:"item" validate:"notblank"`
	Quantity *int   `json:"quantity" validate:"required,min=0"`
	Category string `json:"category" validate:"required,category"`
}

// DonationKey addresses a stored donation. It binds from JSON or query string.
type DonationKey struct {
	Donor string `json:"donor" form:"donor" validate:"required"`
	Item  string `json:"item" form:"item" validate:"required"`
	Date  string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
}

// DonationEdit is the PUT body: the original key plus the replacement fields.
type DonationEdit struct {
	Key DonationKey `json:"key"`
	DonationBody
}

func (k DonationKey) ToDomain() trackerdomain.NaturalKey {
	return trackerdomain.NaturalKey{Name: k.Donor, Item: k.Item, Date: k.Date}
}

func (b DonationBody) fields() types.RecordFields {
	qty := 0
	if b.Quantity != nil {
		qty = *b.Quantity
	}
	return types.RecordFields{
		Name:     b.Donor,
		Item:     b.Item,
		Quantity: qty,
		Category: trackerdomain.Category(b.Category),
	}
}

// ToAddDonationInput converts a validated body into the add use-case input.
func ToAddDonationInput(b DonationBody) types.AddDonationInput {
	return types.AddDonationInput{RecordFields: b.fields()}
}

// ToEditDonationInput converts a validated edit into the edit use-case input.
func ToEditDonationInput(e DonationEdit) types.EditDonationInput {
	return types.EditDonationInput{Key: e.Key.ToDomain(), RecordFields: e.DonationBody.fields()}
}

func FromDomainDonation(d *trackerdomain.Donation) Donation {
	if d == nil {
		return Donation{}
	}
	return Donation{
		ID:       d.ID,
		Donor:    d.Donor,
		Item:     d.Item,
		Quantity: d.Quantity,
		Category: string(d.Category),
		Status:   string(d.Status),
		Date:     d.Date,
	}
}

func FromDomainDonations(items []*trackerdomain.Donation) []Donation {
	out := make([]Donation, 0, len(items))
	for _, d := range items {
		out = append(out, FromDomainDonation(d))
	}
	return out
}
