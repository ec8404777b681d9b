package domain

import "fmt"

// NaturalKey is the (name, item, date) tuple used to locate a stored record.
// Name is the donor for donations and the recipient for wishes.
type NaturalKey struct {
	Name string
	Item string
	Date string
}

// String renders the key for logs and reports.
func (k NaturalKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Name, k.Item, k.Date)
}
