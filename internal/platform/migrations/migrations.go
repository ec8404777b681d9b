package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the tracker schema. Adapters do not migrate on their own.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&donationRecord{},
		&wishRecord{},
	)
}

// Donation schema mirrors the tracker donation store.
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

// Wish schema mirrors the tracker wish store.
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
