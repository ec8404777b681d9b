package projection

import "time"

// Metadata captures persistence details shared by projections.
type Metadata struct {
	Sequence  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Projection represents an aggregate view plus persistence metadata.
type Projection[T any] struct {
	Entity   T
	Metadata Metadata
}

// New wraps entity with the supplied metadata.
func New[T any](entity T, meta Metadata) *Projection[T] {
	return &Projection[T]{Entity: entity, Metadata: meta}
}

// Entities unwraps a projection list, preserving order.
func Entities[T any](items []*Projection[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, item.Entity)
	}
	return out
}
