package gotodo

// Todo is a single todo record. The ID is derived once at creation time and
// is never reassigned afterwards; updates replace the value stored under the
// same key.
type Todo struct {
	ID   uint32 `json:"id" dynamodbav:"id"`
	Task string `json:"task" dynamodbav:"task"`
	Done bool   `json:"done" dynamodbav:"done"`
}

// PartialTodo is the update payload. It is a full replacement, not a sparse
// patch: both Task and Done are always written.
type PartialTodo struct {
	Task string `json:"task" dynamodbav:"task"`
	Done bool   `json:"done" dynamodbav:"done"`
}

// Apply writes the payload onto a todo, leaving the ID untouched.
func (p PartialTodo) Apply(t *Todo) {
	t.Task = p.Task
	t.Done = p.Done
}
