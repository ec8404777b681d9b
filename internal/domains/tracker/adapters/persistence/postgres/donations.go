package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/shared/projection"
)

var _ ports.DonationStore = (*DonationStore)(nil)

// DonationStore persists donations through GORM. Caller manages DB lifecycle.
type DonationStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDonationStore(db *gorm.DB) *DonationStore {
	return &DonationStore{db: db, now: time.Now}
}

// LoadAll returns every donation, most recently inserted first.
func (s *DonationStore) LoadAll(ctx context.Context) ([]*projection.Projection[*domain.Donation], error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var records []donationRecord
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	out := make([]*projection.Projection[*domain.Donation], 0, len(records))
	for i := range records {
		out = append(out, records[i].toDomain())
	}
	return out, nil
}

func (s *DonationStore) Add(ctx context.Context, d *domain.Donation) (*projection.Projection[*domain.Donation], error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	if d == nil {
		return nil, errors.New("donation is nil")
	}
	record := toDonationRecord(d)
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// Update rewrites every row stored under key.
func (s *DonationStore) Update(ctx context.Context, key domain.NaturalKey, d *domain.Donation) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	if d == nil {
		return errors.New("donation is nil")
	}
	result := s.db.WithContext(ctx).
		Model(&donationRecord{}).
		Where("donor = ? AND item = ? AND date = ?", key.Name, key.Item, key.Date).
		Updates(map[string]any{
			"donor":      d.Donor,
			"item":       d.Item,
			"quantity":   d.Quantity,
			"category":   string(d.Category),
			"status":     string(d.Status),
			"updated_at": s.now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// Delete removes every row stored under key.
func (s *DonationStore) Delete(ctx context.Context, key domain.NaturalKey) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	result := s.db.WithContext(ctx).
		Where("donor = ? AND item = ? AND date = ?", key.Name, key.Item, key.Date).
		Delete(&donationRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// ReplaceAll swaps the table contents in one transaction. Rows are inserted
// last-to-first so LoadAll returns them in the given order.
func (s *DonationStore) ReplaceAll(ctx context.Context, donations []*domain.Donation) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&donationRecord{}).Error; err != nil {
			return err
		}
		for i := len(donations) - 1; i >= 0; i-- {
			if donations[i] == nil {
				continue
			}
			record := toDonationRecord(donations[i])
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *DonationStore) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("donation store not configured")
	}
	return nil
}
