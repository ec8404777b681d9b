package postgres

import (
	"time"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/shared/projection"
)

// donationRecord maps a donation to the donations table. The autoincrement id
// doubles as the insertion sequence used for ordering.
type donationRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	UID       string    `gorm:"column:uid;type:varchar(36);index"`
	Donor     string    `gorm:"column:donor;not null;index:idx_donations_key"`
	Item      string    `gorm:"column:item;not null;index:idx_donations_key"`
	Quantity  int       `gorm:"column:quantity;not null"`
	Category  string    `gorm:"column:category;type:varchar(32);index:idx_donations_status_category"`
	Status    string    `gorm:"column:status;type:varchar(32);index:idx_donations_status_category"`
	Date      string    `gorm:"column:date;type:varchar(10);index:idx_donations_key"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (donationRecord) TableName() string { return "donations" }

// wishRecord maps a wish to the wishes table.
type wishRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	UID       string    `gorm:"column:uid;type:varchar(36);index"`
	Recipient string    `gorm:"column:recipient;not null;index:idx_wishes_key"`
	Item      string    `gorm:"column:item;not null;index:idx_wishes_key"`
	Quantity  int       `gorm:"column:quantity;not null"`
	Category  string    `gorm:"column:category;type:varchar(32);index:idx_wishes_status_category"`
	Status    string    `gorm:"column:status;type:varchar(32);index:idx_wishes_status_category"`
	Date      string    `gorm:"column:date;type:varchar(10);index:idx_wishes_key"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (wishRecord) TableName() string { return "wishes" }

func toDonationRecord(d *domain.Donation) donationRecord {
	return donationRecord{
		UID:      d.ID,
		Donor:    d.Donor,
		Item:     d.Item,
		Quantity: d.Quantity,
		Category: string(d.Category),
		Status:   string(d.Status),
		Date:     d.Date,
	}
}

func (r donationRecord) toDomain() *projection.Projection[*domain.Donation] {
	return projection.New(&domain.Donation{
		ID:       r.UID,
		Donor:    r.Donor,
		Item:     r.Item,
		Quantity: r.Quantity,
		Category: domain.Category(r.Category),
		Status:   domain.DonationStatus(r.Status),
		Date:     r.Date,
	}, projection.Metadata{Sequence: r.ID, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt})
}

func toWishRecord(w *domain.Wish) wishRecord {
	return wishRecord{
		UID:       w.ID,
		Recipient: w.Recipient,
		Item:      w.Item,
		Quantity:  w.Quantity,
		Category:  string(w.Category),
		Status:    string(w.Status),
		Date:      w.Date,
	}
}

func (r wishRecord) toDomain() *projection.Projection[*domain.Wish] {
	return projection.New(&domain.Wish{
		ID:        r.UID,
		Recipient: r.Recipient,
		Item:      r.Item,
		Quantity:  r.Quantity,
		Category:  domain.Category(r.Category),
		Status:    domain.WishStatus(r.Status),
		Date:      r.Date,
	}, projection.Metadata{Sequence: r.ID, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt})
}
