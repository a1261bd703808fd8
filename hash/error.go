package hash

import (
	"errors"
	"fmt"
)

// invalidInputsError is returned when a function input does not allow
// the operation to be performed, for instance an unknown algorithm
// identifier.
type invalidInputsError struct {
	msg string
}

func (e invalidInputsError) Error() string {
	return e.msg
}

// newInvalidInputsError constructs a new invalidInputsError
func newInvalidInputsError(msg string, args ...interface{}) error {
	return invalidInputsError{msg: fmt.Sprintf(msg, args...)}
}

// IsInvalidInputsError checks if the input error is of an invalidInputsError type
func IsInvalidInputsError(err error) bool {
	var target invalidInputsError
	return errors.As(err, &target)
}
