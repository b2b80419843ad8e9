package errors

import "fmt"

// InvalidStateError reports an entity that violates its own invariants,
// e.g. a user without a password hash.
type InvalidStateError struct {
	reason string
}

func NewInvalidStateError(reason string) *InvalidStateError {
	return &InvalidStateError{reason: reason}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s", e.reason)
}

// NilArgumentError is used by constructors to reject nil dependencies
// at wiring time instead of failing on first use.
type NilArgumentError struct {
	argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("nil argument: %s", e.argument)
}
