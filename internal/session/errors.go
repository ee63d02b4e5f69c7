package session

import "fmt"

// ConfigurationError reports invalid session setup or an operation
// against a session that cannot accept it. Fatal to the operation;
// retrying without fixing the input will fail the same way.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("session configuration: %s", e.Reason)
}

// OutOfRangeError reports a reference outside the session's bounds:
// an unknown or inactive question id, a negative time or attempt, or
// a frustration level outside [0, 1]. The operation is rejected before
// any state changes.
type OutOfRangeError struct {
	Field string
	Value any
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s out of range: %v", e.Field, e.Value)
}
