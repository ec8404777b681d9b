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

var _ ports.WishStore = (*WishStore)(nil)

// WishStore persists wishes through GORM. Caller manages DB lifecycle.
type WishStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewWishStore(db *gorm.DB) *WishStore {
	return &WishStore{db: db, now: time.Now}
}

// LoadAll returns every wish, most recently inserted first.
func (s *WishStore) LoadAll(ctx context.Context) ([]*projection.Projection[*domain.Wish], error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var records []wishRecord
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	out := make([]*projection.Projection[*domain.Wish], 0, len(records))
	for i := range records {
		out = append(out, records[i].toDomain())
	}
	return out, nil
}

func (s *WishStore) Add(ctx context.Context, w *domain.Wish) (*projection.Projection[*domain.Wish], error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, errors.New("wish is nil")
	}
	record := toWishRecord(w)
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// Update rewrites every row stored under key.
func (s *WishStore) Update(ctx context.Context, key domain.NaturalKey, w *domain.Wish) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	if w == nil {
		return errors.New("wish is nil")
	}
	result := s.db.WithContext(ctx).
		Model(&wishRecord{}).
		Where("recipient = ? AND item = ? AND date = ?", key.Name, key.Item, key.Date).
		Updates(map[string]any{
			"recipient":  w.Recipient,
			"item":       w.Item,
			"quantity":   w.Quantity,
			"category":   string(w.Category),
			"status":     string(w.Status),
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
func (s *WishStore) Delete(ctx context.Context, key domain.NaturalKey) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	result := s.db.WithContext(ctx).
		Where("recipient = ? AND item = ? AND date = ?", key.Name, key.Item, key.Date).
		Delete(&wishRecord{})
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
func (s *WishStore) ReplaceAll(ctx context.Context, wishes []*domain.Wish) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&wishRecord{}).Error; err != nil {
			return err
		}
		for i := len(wishes) - 1; i >= 0; i-- {
			if wishes[i] == nil {
				continue
			}
			record := toWishRecord(wishes[i])
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *WishStore) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("wish store not configured")
	}
	return nil
}
