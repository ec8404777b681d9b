package domain

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the calendar date format stored on every record.
const DateLayout = "2006-01-02"

var (
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyItem        = errors.New("item is required")
	ErrNegativeQuantity = errors.New("quantity must be a non-negative integer")
	ErrInvalidStatus    = errors.New("status is invalid")
)

// FormatDate renders t in the stored calendar date layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func validateFields(name, item string, quantity int, category Category) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(item) == "" {
		return ErrEmptyItem
	}
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if !category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

// sameItem compares item names after case-folding.
func sameItem(a, b string) bool {
	return strings.ToLower(a) == strings.ToLower(b)
}
