package store

import "testing"

func TestTodoKeys(t *testing.T) {
	if got := todoPK(42); got != "TODO#42" {
		t.Errorf("todoPK(42) = %s, want TODO#42", got)
	}
	if got := todoSK(); got != "META" {
		t.Errorf("todoSK() = %s, want META", got)
	}
}

func TestListIndexKeys(t *testing.T) {
	if got := todoGSI1PK(); got != "TODOS" {
		t.Errorf("todoGSI1PK() = %s, want TODOS", got)
	}

	if got := todoGSI1SK(7); got != "00000000000000000007" {
		t.Errorf("todoGSI1SK(7) = %s, want 00000000000000000007", got)
	}

	// Zero padding keeps lexicographic order aligned with numeric order
	if todoGSI1SK(9) >= todoGSI1SK(10) {
		t.Error("todoGSI1SK(9) should sort before todoGSI1SK(10)")
	}
	if todoGSI1SK(99) >= todoGSI1SK(100) {
		t.Error("todoGSI1SK(99) should sort before todoGSI1SK(100)")
	}
}

func TestCounterKeys(t *testing.T) {
	if got := counterPK(); got != "SEQ" {
		t.Errorf("counterPK() = %s, want SEQ", got)
	}
	if got := counterSK(); got != "COUNTER" {
		t.Errorf("counterSK() = %s, want COUNTER", got)
	}
}
