package domain

import (
	"fmt"
	"strings"
)

// MatchEvent reports one allocation made during a matching pass.
type MatchEvent struct {
	DonationDonor string `json:"donationDonor"`
	DonationItem  string `json:"donationItem"`
	Quantity      int    `json:"quantity"`
	Recipient     string `json:"recipient"`
}

// Allocation carries the records touched by a single allocation together with
// the keys they had when the pass started.
type Allocation struct {
	Donation    *Donation
	DonationKey NaturalKey
	Wish        *Wish
	WishKey     NaturalKey
	Quantity    int
}

// RecordKind names which side of an allocation failed to persist.
type RecordKind string

const (
	KindDonation RecordKind = "donation"
	KindWish     RecordKind = "wish"
)

// PersistFailure describes a record whose write failed mid-pass.
type PersistFailure struct {
	Kind RecordKind `json:"kind"`
	Key  NaturalKey `json:"key"`
	Err  string     `json:"error"`
}

func (f PersistFailure) String() string {
	return fmt.Sprintf("Persistence failed for %s %s: %s", f.Kind, f.Key, f.Err)
}

// MatchResult is the outcome of one matching pass.
type MatchResult struct {
	Events   []MatchEvent     `json:"events"`
	Failures []PersistFailure `json:"failures,omitempty"`
}

// Persister writes the records of an allocation. It may report one failure per
// side; a failure never stops the pass.
type Persister func(Allocation) []PersistFailure

// RunMatching greedily allocates quantity from open donations to open wishes.
//
// Candidates are snapshotted before any mutation. Wishes are scanned in
// collection order and, for each, donations in collection order; a pair
// matches on exact category and case-insensitive item name and moves
// min(donation, wish) units. A wish stops scanning once it is fulfilled.
// persist is invoked after each allocation with the pre-pass keys.
func RunMatching(donations []*Donation, wishes []*Wish, persist Persister) MatchResult {
	supply := make([]*Donation, 0, len(donations))
	for _, d := range donations {
		if d != nil && d.Open() {
			supply = append(supply, d)
		}
	}
	demand := make([]*Wish, 0, len(wishes))
	for _, w := range wishes {
		if w != nil && w.Open() {
			demand = append(demand, w)
		}
	}

	donationKeys := make(map[*Donation]NaturalKey, len(supply))
	for _, d := range supply {
		donationKeys[d] = d.Key()
	}

	result := MatchResult{Events: []MatchEvent{}}
	for _, w := range demand {
		wishKey := w.Key()
		for _, d := range supply {
			if !Compatible(d, w) {
				continue
			}
			qty := min(d.Quantity, w.Quantity)
			if qty <= 0 {
				continue
			}
			d.give(qty)
			w.receive(qty)
			result.Events = append(result.Events, MatchEvent{
				DonationDonor: d.Donor,
				DonationItem:  d.Item,
				Quantity:      qty,
				Recipient:     w.Recipient,
			})
			if persist != nil {
				failures := persist(Allocation{
					Donation:    d,
					DonationKey: donationKeys[d],
					Wish:        w,
					WishKey:     wishKey,
					Quantity:    qty,
				})
				result.Failures = append(result.Failures, failures...)
			}
			if w.Quantity == 0 {
				break
			}
		}
	}
	return result
}

// Compatible reports whether a donation can serve a wish.
func Compatible(d *Donation, w *Wish) bool {
	return d.Category == w.Category && sameItem(d.Item, w.Item)
}

// Report renders a pass outcome as human-readable lines.
func (r MatchResult) Report() []string {
	if len(r.Events) == 0 && len(r.Failures) == 0 {
		return []string{"No matches found."}
	}
	lines := make([]string, 0, len(r.Events)+len(r.Failures)+1)
	for _, e := range r.Events {
		lines = append(lines, fmt.Sprintf("Matched: %s (%d) from %s -> %s", e.DonationItem, e.Quantity, e.DonationDonor, e.Recipient))
	}
	lines = append(lines, fmt.Sprintf("Total Matches: %d", len(r.Events)))
	for _, f := range r.Failures {
		lines = append(lines, f.String())
	}
	return lines
}

// String joins the report lines.
func (r MatchResult) String() string {
	return strings.Join(r.Report(), "\n")
}
