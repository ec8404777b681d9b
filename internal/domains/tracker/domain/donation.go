package domain

import "time"

// DonationStatus tracks whether a donation still has quantity to give.
type DonationStatus string

const (
	DonationAvailable DonationStatus = "Available"
	DonationMatched   DonationStatus = "Matched"
)

// Valid reports whether s is a known donation status.
func (s DonationStatus) Valid() bool {
	return s == DonationAvailable || s == DonationMatched
}

// Donation is a supply-side record: an offered item in a quantity.
type Donation struct {
	ID       string
	Donor    string
	Item     string
	Quantity int
	Category Category
	Status   DonationStatus
	Date     string
}

// NewDonation validates the fields and builds a donation dated at now.
// The initial status is derived from the quantity.
func NewDonation(id, donor, item string, quantity int, category Category, now time.Time) (*Donation, error) {
	if err := validateFields(donor, item, quantity, category); err != nil {
		return nil, err
	}
	d := &Donation{
		ID:       id,
		Donor:    donor,
		Item:     item,
		Quantity: quantity,
		Category: category,
		Status:   DonationAvailable,
		Date:     FormatDate(now),
	}
	if quantity == 0 {
		d.Status = DonationMatched
	}
	return d, nil
}

// Key returns the natural key identifying the donation in the store.
func (d *Donation) Key() NaturalKey {
	return NaturalKey{Name: d.Donor, Item: d.Item, Date: d.Date}
}

// Validate enforces the record invariants.
func (d *Donation) Validate() error {
	if err := validateFields(d.Donor, d.Item, d.Quantity, d.Category); err != nil {
		return err
	}
	if !d.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// Open reports whether the donation can take part in a matching pass.
func (d *Donation) Open() bool {
	return d.Status == DonationAvailable && d.Quantity > 0
}

// Edit replaces the user-editable fields and reconciles the status.
// The date is kept so the record stays addressable by its creation day.
func (d *Donation) Edit(donor, item string, quantity int, category Category) error {
	if err := validateFields(donor, item, quantity, category); err != nil {
		return err
	}
	d.Donor = donor
	d.Item = item
	d.Category = category
	d.SetQuantity(quantity)
	return nil
}

// SetQuantity applies a manual quantity change: zero forces Matched,
// a positive quantity on a Matched donation reverts it to Available.
func (d *Donation) SetQuantity(quantity int) {
	d.Quantity = quantity
	if quantity == 0 {
		d.Status = DonationMatched
		return
	}
	if d.Status == DonationMatched {
		d.Status = DonationAvailable
	}
}

// give removes qty from the donation during a matching pass.
func (d *Donation) give(qty int) {
	d.Quantity -= qty
	if d.Quantity == 0 {
		d.Status = DonationMatched
	}
}

// Clone returns a copy detached from the receiver.
func (d *Donation) Clone() *Donation {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
