package store

import (
	"context"
	"sync"

	"github.com/sicko7947/gotodo"
)

// MemoryStore implements gotodo.TodoStore using in-memory storage. Insertion
// order is tracked in a separate slice so that List iterates records in the
// order their keys first appeared; Put under an existing key keeps its
// position, Delete removes it.
type MemoryStore struct {
	todos map[uint32]*gotodo.Todo
	order []uint32
	mu    sync.RWMutex
}

// NewMemoryStore creates a new in-memory todo store
func NewMemoryStore() gotodo.TodoStore {
	return &MemoryStore{
		todos: make(map[uint32]*gotodo.Todo),
	}
}

func (s *MemoryStore) Put(ctx context.Context, todo *gotodo.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.todos[todo.ID]; !exists {
		s.order = append(s.order, todo.ID)
	}

	// Deep copy
	todoCopy := *todo
	s.todos[todo.ID] = &todoCopy

	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id uint32) (*gotodo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todo, exists := s.todos[id]
	if !exists {
		return nil, gotodo.NewNotFoundError(id)
	}

	// Deep copy
	todoCopy := *todo
	return &todoCopy, nil
}

func (s *MemoryStore) List(ctx context.Context, offset, limit uint32) ([]*gotodo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start, end := gotodo.ClampRange(offset, limit, len(s.order))

	todos := make([]*gotodo.Todo, 0, end-start)
	for _, id := range s.order[start:end] {
		// Deep copy
		todoCopy := *s.todos[id]
		todos = append(todos, &todoCopy)
	}

	return todos, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.todos[id]; !exists {
		// Deleting an absent id is a no-op
		return nil
	}

	delete(s.todos, id)
	for i, orderedID := range s.order {
		if orderedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

func (s *MemoryStore) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order), nil
}
