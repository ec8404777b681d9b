package mapper

import (
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/application/types"
	trackerdomain "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
)

// Wish is the JSON shape returned for a wish.
type Wish struct {
	ID        string `json:"id"`
	Recipient string `json:"recipient"`
	Item      string `json:"item"`
	Quantity  int    `json:"quantity"`
	Category  string `json:"category"`
	Status    string `json:"status"`
	Date      string `json:"date"`
}

type WishBody struct {
	Recipient string `json:"recipient" validate:"notblank"`
	Item      string `json:"item" validate:"notblank"`
	Quantity  *int   `json:"quantity" validate:"required,min=0"`
	Category  string `json:"category" validate:"required,category"`
}

type WishKey struct {
	Recipient string `json:"recipient" form:"recipient" validate:"required"`
	Item      string `json:"item" form:"item" validate:"required"`
	Date      string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
}

type WishEdit struct {
	Key WishKey `json:"key"`
	WishBody
}

func (k WishKey) ToDomain() trackerdomain.NaturalKey {
	return trackerdomain.NaturalKey{Name: k.Recipient, Item: k.Item, Date: k.Date}
}

func (b WishBody) fields() types.RecordFields {
	qty := 0
	if b.Quantity != nil {
		qty = *b.Quantity
	}
	return types.RecordFields{
		Name:     b.Recipient,
		Item:     b.Item,
		Quantity: qty,
		Category: trackerdomain.Category(b.Category),
	}
}

func ToAddWishInput(b WishBody) types.AddWishInput {
	return types.AddWishInput{RecordFields: b.fields()}
}

func ToEditWishInput(e WishEdit) types.EditWishInput {
	return types.EditWishInput{Key: e.Key.ToDomain(), RecordFields: e.WishBody.fields()}
}

func FromDomainWish(w *trackerdomain.Wish) Wish {
	if w == nil {
		return Wish{}
	}
	return Wish{
		ID:        w.ID,
		Recipient: w.Recipient,
		Item:      w.Item,
		Quantity:  w.Quantity,
		Category:  string(w.Category),
		Status:    string(w.Status),
		Date:      w.Date,
	}
}

func FromDomainWishes(items []*trackerdomain.Wish) []Wish {
	out := make([]Wish, 0, len(items))
	for _, w := range items {
		out = append(out, FromDomainWish(w))
	}
	return out
}
