package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/shared/projection"
)

type row[T any] struct {
	value T
	meta  projection.Metadata
}

// table keeps rows in insertion order and, like the relational store, does not
// enforce natural key uniqueness.
type table[T any] struct {
	mu    sync.RWMutex
	rows  []*row[T]
	seq   int64
	now   func() time.Time
	key   func(T) domain.NaturalKey
	clone func(T) T
	// assign copies the mutable fields of src onto a stored row, leaving its ID and date.
	assign func(dst, src T)
	isNil  func(T) bool
}

func newTable[T any](key func(T) domain.NaturalKey, clone func(T) T, assign func(dst, src T), isNil func(T) bool) *table[T] {
	return &table[T]{now: time.Now, key: key, clone: clone, assign: assign, isNil: isNil}
}

func (t *table[T]) loadAll(_ context.Context) ([]*projection.Projection[T], error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*projection.Projection[T], 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, projection.New(t.clone(r.value), r.meta))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Metadata.Sequence > out[j].Metadata.Sequence
	})
	return out, nil
}

func (t *table[T]) add(_ context.Context, value T) (*projection.Projection[T], error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := t.insertLocked(value)
	return projection.New(t.clone(r.value), r.meta), nil
}

func (t *table[T]) update(_ context.Context, key domain.NaturalKey, value T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	matched := 0
	for _, r := range t.rows {
		if t.key(r.value) != key {
			continue
		}
		t.assign(r.value, value)
		r.meta.UpdatedAt = t.now()
		matched++
	}
	if matched == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (t *table[T]) delete(_ context.Context, key domain.NaturalKey) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	kept := t.rows[:0]
	for _, r := range t.rows {
		if t.key(r.value) != key {
			kept = append(kept, r)
		}
	}
	removed := len(t.rows) - len(kept)
	t.rows = kept
	if removed == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// replaceAll inserts values last-to-first so that loadAll yields them in the given order.
func (t *table[T]) replaceAll(_ context.Context, values []T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = nil
	for i := len(values) - 1; i >= 0; i-- {
		if t.isNil(values[i]) {
			continue
		}
		t.insertLocked(values[i])
	}
	return nil
}

func (t *table[T]) insertLocked(value T) *row[T] {
	t.seq++
	now := t.now()
	r := &row[T]{value: t.clone(value), meta: projection.Metadata{Sequence: t.seq, CreatedAt: now, UpdatedAt: now}}
	t.rows = append(t.rows, r)
	return r
}

func (t *table[T]) withClock(now func() time.Time) {
	if now == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = now
}

var errNilRecord = errors.New("record is nil")
