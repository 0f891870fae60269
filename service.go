package gotodo

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// maxIDAttempts bounds collision retries when random ids are enabled
const maxIDAttempts = 5

// Service implements the todo entry points over an injected TodoStore.
// The host dispatcher is expected to invoke one call at a time to
// completion; the service itself holds no state besides its dependencies.
type Service struct {
	store            TodoStore
	ids              IDGenerator
	logger           zerolog.Logger
	retryOnCollision bool
}

// NewService creates a new todo service with optional configuration.
// If no logger is provided, a default stdout console logger at Info level is used.
// If no id generator is provided, ids are derived by hashing the task text.
func NewService(store TodoStore, opts ...ServiceOption) *Service {
	defaultLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger().
		Level(zerolog.InfoLevel)

	s := &Service{
		store:  store,
		ids:    HashID,
		logger: defaultLogger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create derives an id for the task, stores a new record with done=false
// and returns it. With the default hash-derived ids, creating the same task
// twice writes to the same key and the second record replaces the first.
func (s *Service) Create(ctx context.Context, task string) (*Todo, error) {
	id := s.ids(task)

	if s.retryOnCollision {
		for attempt := 0; attempt < maxIDAttempts; attempt++ {
			_, err := s.store.Get(ctx, id)
			if IsNotFound(err) {
				break
			}
			if err != nil {
				LogStoreError(s.logger, "create", err)
				return nil, err
			}
			// Key already taken, draw again
			id = s.ids(task)
		}
	}

	todo := &Todo{ID: id, Task: task, Done: false}
	if err := s.store.Put(ctx, todo); err != nil {
		LogStoreError(s.logger, "create", err)
		return nil, err
	}

	LogTodoCreated(s.logger, todo)
	return todo, nil
}

// GetByID returns the record stored under id, or a NOT_FOUND error.
func (s *Service) GetByID(ctx context.Context, id uint32) (*Todo, error) {
	todo, err := s.store.Get(ctx, id)
	if err != nil {
		if !IsNotFound(err) {
			LogStoreError(s.logger, "get", err)
		}
		return nil, err
	}
	return todo, nil
}

// List returns up to limit records in insertion order starting at position
// offset. A zero limit means DefaultListLimit. Out-of-range pages yield an
// empty slice, never an error.
func (s *Service) List(ctx context.Context, offset, limit uint32) ([]*Todo, error) {
	limit = NormalizeLimit(limit)

	todos, err := s.store.List(ctx, offset, limit)
	if err != nil {
		LogStoreError(s.logger, "list", err)
		return nil, err
	}

	LogTodoListed(s.logger, offset, limit, len(todos))
	return todos, nil
}

// Update looks up the record under id, replaces its task and done with the
// payload values and writes it back under the same key. The id itself is
// immutable. Fails with NOT_FOUND when the key is absent; nothing is
// written in that case.
func (s *Service) Update(ctx context.Context, id uint32, partial PartialTodo) (*Todo, error) {
	todo, err := s.store.Get(ctx, id)
	if err != nil {
		if !IsNotFound(err) {
			LogStoreError(s.logger, "update", err)
		}
		return nil, err
	}

	partial.Apply(todo)
	if err := s.store.Put(ctx, todo); err != nil {
		LogStoreError(s.logger, "update", err)
		return nil, err
	}

	LogTodoUpdated(s.logger, todo)
	return todo, nil
}

// Delete removes the record stored under id. Deleting an absent id is a
// no-op, not an error.
func (s *Service) Delete(ctx context.Context, id uint32) error {
	if err := s.store.Delete(ctx, id); err != nil {
		LogStoreError(s.logger, "delete", err)
		return err
	}

	LogTodoDeleted(s.logger, id)
	return nil
}
