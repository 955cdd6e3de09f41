package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// CalculationCompletedEvent is emitted when a calculation succeeds.
type CalculationCompletedEvent struct {
	CalculationID string    `json:"calculation_id"`
	Operation     string    `json:"operation"`
	Num1          float64   `json:"num1"`
	Num2          float64   `json:"num2"`
	Result        float64   `json:"result"`
	ComputedAt    time.Time `json:"computed_at"`
}

// CalculationCompletedV1 is the typed event definition for successful calculations.
// Subject: events.calculator.v1.calculation-completed
var CalculationCompletedV1 = helper.EventDefinition[CalculationCompletedEvent](
	"calculator", "CalculationCompleted", "v1",
)

// CalculationFailedEvent is emitted when a calculation is rejected
// (unsupported operation or division by zero).
type CalculationFailedEvent struct {
	Operation string    `json:"operation"`
	Num1      float64   `json:"num1"`
	Num2      float64   `json:"num2"`
	Reason    string    `json:"reason"`
	FailedAt  time.Time `json:"failed_at"`
}

// CalculationFailedV1 is the typed event definition for rejected calculations.
// Subject: events.calculator.v1.calculation-failed
var CalculationFailedV1 = helper.EventDefinition[CalculationFailedEvent](
	"calculator", "CalculationFailed", "v1",
)
