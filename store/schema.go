package store

import "fmt"

// DynamoDB schema constants for single-table design
const (
	// Table attributes
	AttrPK         = "PK"
	AttrSK         = "SK"
	AttrGSI1PK     = "GSI1PK"
	AttrGSI1SK     = "GSI1SK"
	AttrEntityType = "entity_type"
	AttrSeq        = "seq"

	// Entity types
	EntityTypeTodo    = "Todo"
	EntityTypeCounter = "Counter"

	// Index names
	IndexListIndex = "GSI1"
)

// Key builders for single-table design

// Todo keys: PK=TODO#{id}, SK=META
func todoPK(id uint32) string {
	return fmt.Sprintf("TODO#%d", id)
}

func todoSK() string {
	return "META"
}

// The list index keeps every todo under one partition, ordered by the
// insertion sequence: GSI1PK=TODOS, GSI1SK={seq, zero-padded}
func todoGSI1PK() string {
	return "TODOS"
}

func todoGSI1SK(seq uint64) string {
	return fmt.Sprintf("%020d", seq)
}

// Counter keys: PK=SEQ, SK=COUNTER
func counterPK() string {
	return "SEQ"
}

func counterSK() string {
	return "COUNTER"
}
