package domain

import "time"

// WishStatus tracks whether a wish still waits for items.
type WishStatus string

const (
	WishPending   WishStatus = "Pending"
	WishFulfilled WishStatus = "Fulfilled"
)

// Valid reports whether s is a known wish status.
func (s WishStatus) Valid() bool {
	return s == WishPending || s == WishFulfilled
}

// Wish is a demand-side record: a requested item in a quantity.
type Wish struct {
	ID        string
	Recipient string
	Item      string
	Quantity  int
	Category  Category
	Status    WishStatus
	Date      string
}

// NewWish validates the fields and builds a wish dated at now.
func NewWish(id, recipient, item string, quantity int, category Category, now time.Time) (*Wish, error) {
	if err := validateFields(recipient, item, quantity, category); err != nil {
		return nil, err
	}
	w := &Wish{
		ID:        id,
		Recipient: recipient,
		Item:      item,
		Quantity:  quantity,
		Category:  category,
		Status:    WishPending,
		Date:      FormatDate(now),
	}
	if quantity == 0 {
		w.Status = WishFulfilled
	}
	return w, nil
}

// Key returns the natural key identifying the wish in the store.
func (w *Wish) Key() NaturalKey {
	return NaturalKey{Name: w.Recipient, Item: w.Item, Date: w.Date}
}

// Validate enforces the record invariants.
func (w *Wish) Validate() error {
	if err := validateFields(w.Recipient, w.Item, w.Quantity, w.Category); err != nil {
		return err
	}
	if !w.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// Open reports whether the wish can take part in a matching pass.
func (w *Wish) Open() bool {
	return w.Status == WishPending && w.Quantity > 0
}

// Edit replaces the user-editable fields and reconciles the status.
func (w *Wish) Edit(recipient, item string, quantity int, category Category) error {
	if err := validateFields(recipient, item, quantity, category); err != nil {
		return err
	}
	w.Recipient = recipient
	w.Item = item
	w.Category = category
	w.SetQuantity(quantity)
	return nil
}

// SetQuantity applies a manual quantity change: zero forces Fulfilled,
// a positive quantity on a Fulfilled wish reverts it to Pending.
func (w *Wish) SetQuantity(quantity int) {
	w.Quantity = quantity
	if quantity == 0 {
		w.Status = WishFulfilled
		return
	}
	if w.Status == WishFulfilled {
		w.Status = WishPending
	}
}

func (w *Wish) receive(qty int) {
	w.Quantity -= qty
	if w.Quantity == 0 {
		w.Status = WishFulfilled
	}
}

// Clone returns a copy detached from the receiver.
func (w *Wish) Clone() *Wish {
	if w == nil {
		return nil
	}
	c := *w
	return &c
}
