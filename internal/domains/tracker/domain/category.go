package domain

import "errors"

// Category groups donations and wishes; matching requires an exact category match.
type Category string

const (
	CategoryToys        Category = "Toys"
	CategoryClothes     Category = "Clothes"
	CategoryFood        Category = "Food"
	CategoryBooks       Category = "Books"
	CategoryElectronics Category = "Electronics"
	CategoryOther       Category = "Other"
)

var ErrInvalidCategory = errors.New("category is invalid")

// Categories lists the fixed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryToys,
		CategoryClothes,
		CategoryFood,
		CategoryBooks,
		CategoryElectronics,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryToys, CategoryClothes, CategoryFood, CategoryBooks, CategoryElectronics, CategoryOther:
		return true
	default:
		return false
	}
}

// ParseCategory validates a raw category value.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}
