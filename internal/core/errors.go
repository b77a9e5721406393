package core

import "fmt"

// ValidationError reports malformed or contradictory query parameters.
// It is caller-correctable and maps to a 400 at the transport boundary.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IntegrityError reports a purchase referencing a customer or product
// id absent from the dataset. It indicates upstream data corruption;
// the affected query aborts rather than report partial totals.
type IntegrityError struct {
	Entity string
	ID     string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

// NotFoundError reports that a directly queried record does not exist.
// Distinct from IntegrityError: the caller asked for a bad id, the
// dataset itself is fine.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}
