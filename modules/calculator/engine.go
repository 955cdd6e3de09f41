package calculator

import (
	"strings"

	"github.com/example/calculator-service/domain/calculation"
)

// OperationKind identifies one of the supported arithmetic operations.
type OperationKind string

// Supported operation kinds. Declaration order is the canonical listing order.
const (
	OpAdd      OperationKind = "add"
	OpSubtract OperationKind = "subtract"
	OpMultiply OperationKind = "multiply"
	OpDivide   OperationKind = "divide"
)

// operationKinds preserves declaration order for listings.
var operationKinds = []OperationKind{OpAdd, OpSubtract, OpMultiply, OpDivide}

// ParseOperationKind normalizes raw input to a supported operation kind.
// Matching is case-insensitive; the canonical form is lowercase.
func ParseOperationKind(raw string) (OperationKind, error) {
	kind := OperationKind(strings.ToLower(raw))
	switch kind {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return kind, nil
	default:
		return "", &UnsupportedOperationError{
			Operation: string(kind),
			Supported: SupportedOperations(),
		}
	}
}

// Apply performs the arithmetic operation on the two operands.
func (k OperationKind) Apply(a, b float64) (float64, error) {
	switch k {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, &UnsupportedOperationError{
			Operation: string(k),
			Supported: SupportedOperations(),
		}
	}
}

// Calculate parses the operation name and applies it to the operands.
func Calculate(operation string, a, b float64) (float64, error) {
	kind, err := ParseOperationKind(operation)
	if err != nil {
		return 0, err
	}
	return kind.Apply(a, b)
}

// SupportedOperations returns the canonical operation names in declaration order.
func SupportedOperations() []string {
	names := make([]string, 0, len(operationKinds))
	for _, kind := range operationKinds {
		names = append(names, string(kind))
	}
	return names
}

// OperationCatalog returns the supported operations annotated with a
// human-readable description and symbol, in declaration order.
func OperationCatalog() []calculation.OperationInfo {
	catalog := make([]calculation.OperationInfo, 0, len(operationKinds))
	for _, kind := range operationKinds {
		var description, symbol string
		switch kind {
		case OpAdd:
			description, symbol = "Addition (a + b)", "+"
		case OpSubtract:
			description, symbol = "Subtraction (a - b)", "-"
		case OpMultiply:
			description, symbol = "Multiplication (a × b)", "×"
		case OpDivide:
			description, symbol = "Division (a ÷ b)", "÷"
		}
		catalog = append(catalog, calculation.OperationInfo{
			Operation:   string(kind),
			Description: description,
			Symbol:      symbol,
		})
	}
	return catalog
}
