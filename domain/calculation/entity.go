package calculation

import (
	"time"
)

// Calculation represents one completed arithmetic calculation.
// It exists only for the duration of a request; nothing is persisted.
type Calculation struct {
	ID         string    `json:"id"`
	Operation  string    `json:"operation"`
	Num1       float64   `json:"num1"`
	Num2       float64   `json:"num2"`
	Result     float64   `json:"result"`
	ComputedAt time.Time `json:"computed_at"`
}

// OperationInfo describes a supported operation for the listing endpoint.
type OperationInfo struct {
	Operation   string `json:"operation"`
	Description string `json:"description"`
	Symbol      string `json:"symbol"`
}
