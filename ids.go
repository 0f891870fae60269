package gotodo

import (
	"hash/fnv"

	"github.com/google/uuid"
)

// IDGenerator derives a 32-bit id for a new todo from its task text.
type IDGenerator func(task string) uint32

// HashID derives the id as the FNV-1a 32-bit hash of the task text. This is
// deterministic: inserting the same task twice (or two tasks that happen to
// collide) produces the same key, and the later insert overwrites the
// earlier record.
func HashID(task string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(task))
	return h.Sum32()
}

// RandomID ignores the task text and returns a random 32-bit id. Use with
// WithRandomIDs when overwrite-on-duplicate-task is not acceptable.
func RandomID(string) uint32 {
	return uuid.New().ID()
}
