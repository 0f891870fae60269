package gotodo

import "context"

// TodoStore defines the persistence interface for todos. Implementations
// must preserve insertion order during iteration: List walks records in the
// order their keys first appeared, Put under an existing key keeps the
// record's position, Delete removes it.
//
// Concrete implementations live in the store package (the interface sits
// here to avoid an import cycle between the core and store packages).
type TodoStore interface {
	// Put inserts or replaces the record stored under todo.ID.
	Put(ctx context.Context, todo *Todo) error

	// Get returns the record stored under id, or a NOT_FOUND error.
	Get(ctx context.Context, id uint32) (*Todo, error)

	// List returns up to limit records in insertion order, starting at
	// position offset. Out-of-range offsets yield an empty slice; the
	// range is clamped to the store size and never wraps.
	List(ctx context.Context, offset, limit uint32) ([]*Todo, error)

	// Delete removes the record stored under id. Deleting an absent id
	// is a no-op.
	Delete(ctx context.Context, id uint32) error

	// Len returns the number of stored records.
	Len(ctx context.Context) (int, error)
}
