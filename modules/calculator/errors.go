package calculator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDivisionByZero is returned when the divisor of a divide operation is zero.
// The message text is part of the API contract.
var ErrDivisionByZero = errors.New("Cannot divide by zero")

// UnsupportedOperationError is returned when the requested operation is not
// one of the supported kinds. It carries the rejected key and the full list
// of valid keys.
type UnsupportedOperationError struct {
	Operation string
	Supported []string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("Unsupported operation: %s. Supported operations: %s",
		e.Operation, strings.Join(e.Supported, ", "))
}
