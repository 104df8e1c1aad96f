package entity

import "fmt"

// ValidationError reports a field that failed its constraint.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InvalidTransitionError reports a status transition invoked from a state
// that does not permit it. Status carries the record's current status.
type InvalidTransitionError struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	Status string `json:"status"`
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s %s in status '%s'", e.Action, e.Entity, e.Status)
}
