package calculator

import (
	"time"

	"github.com/example/calculator-service/domain/calculation"
)

// CalculateRequest is the request payload for the calculate service.
type CalculateRequest struct {
	Operation string  `json:"operation"`
	Num1      float64 `json:"num1"`
	Num2      float64 `json:"num2"`
}

// CalculateResponse is the response payload for the calculate service.
type CalculateResponse struct {
	CalculationID string    `json:"calculation_id"`
	Operation     string    `json:"operation"`
	Num1          float64   `json:"num1"`
	Num2          float64   `json:"num2"`
	Result        float64   `json:"result"`
	ComputedAt    time.Time `json:"computed_at"`
}

// ListOperationsRequest is the (empty) request payload for the
// list-operations service.
type ListOperationsRequest struct{}

// ListOperationsResponse is the response payload for the list-operations service.
type ListOperationsResponse struct {
	SupportedOperations []calculation.OperationInfo `json:"supported_operations"`
	TotalCount          int                         `json:"total_count"`
}
