package core

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned for process sets or parameters that cannot be simulated.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes which process or parameter was rejected.
type InputError struct {
	ProcessID string
	Field     string
	Reason    string
}

func (e *InputError) Error() string {
	if e.ProcessID == "" {
		return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid input: process %q: %s %s", e.ProcessID, e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// ValidateProcesses checks the constraints every algorithm relies on.
// An empty set is valid.
func ValidateProcesses(specs []ProcessSpec) error {
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		if spec.ID == "" {
			return &InputError{Field: "id", Reason: "must not be empty"}
		}
		if _, dup := seen[spec.ID]; dup {
			return &InputError{ProcessID: spec.ID, Field: "id", Reason: "is duplicated"}
		}
		seen[spec.ID] = struct{}{}

		if spec.ArrivalTime < 0 {
			return &InputError{ProcessID: spec.ID, Field: "arrival time", Reason: "must be >= 0"}
		}
		if spec.BurstTime <= 0 {
			return &InputError{ProcessID: spec.ID, Field: "burst time", Reason: "must be > 0"}
		}
	}
	return nil
}

// ValidateQuantum checks a time slice length.
func ValidateQuantum(field string, quantum int) error {
	if quantum <= 0 {
		return &InputError{Field: field, Reason: "must be > 0"}
	}
	return nil
}
