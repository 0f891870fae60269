package gotodo

import "github.com/rs/zerolog"

// Log event names
const (
	EventTodoCreated = "todo_created"
	EventTodoUpdated = "todo_updated"
	EventTodoDeleted = "todo_deleted"
	EventTodoListed  = "todo_listed"
	EventStoreError  = "store_error"
)

// LogTodoCreated logs a successful insert
func LogTodoCreated(logger zerolog.Logger, todo *Todo) {
	logger.Info().
		Str("event", EventTodoCreated).
		Uint32("id", todo.ID).
		Str("task", todo.Task).
		Msg("Todo created")
}

// LogTodoUpdated logs a successful update
func LogTodoUpdated(logger zerolog.Logger, todo *Todo) {
	logger.Info().
		Str("event", EventTodoUpdated).
		Uint32("id", todo.ID).
		Bool("done", todo.Done).
		Msg("Todo updated")
}

// LogTodoDeleted logs a delete, whether or not the record existed
func LogTodoDeleted(logger zerolog.Logger, id uint32) {
	logger.Info().
		Str("event", EventTodoDeleted).
		Uint32("id", id).
		Msg("Todo deleted")
}

// LogTodoListed logs a page read
func LogTodoListed(logger zerolog.Logger, offset, limit uint32, count int) {
	logger.Debug().
		Str("event", EventTodoListed).
		Uint32("offset", offset).
		Uint32("limit", limit).
		Int("count", count).
		Msg("Todos listed")
}

// LogStoreError logs a failed store operation
func LogStoreError(logger zerolog.Logger, operation string, err error) {
	logger.Error().
		Str("event", EventStoreError).
		Str("operation", operation).
		Err(err).
		Msg("Store operation failed")
}
