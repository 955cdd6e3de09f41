package api

import (
	"github.com/example/calculator-service/domain/calculation"
)

// CalculateRequest represents an incoming calculation request.
// Operands are pointers so that missing fields can be rejected
// instead of silently defaulting to zero.
type CalculateRequest struct {
	Operation string   `json:"operation"`
	Num1      *float64 `json:"num1"`
	Num2      *float64 `json:"num2"`
}

// CalculationResponse represents a successful calculation response.
type CalculationResponse struct {
	Operation string  `json:"operation"`
	Num1      float64 `json:"num1"`
	Num2      float64 `json:"num2"`
	Result    float64 `json:"result"`
}

// OperationsResponse represents the supported operations listing.
type OperationsResponse struct {
	SupportedOperations []calculation.OperationInfo `json:"supported_operations"`
	TotalCount          int                         `json:"total_count"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status          string `json:"status"`
	CalculatorReady bool   `json:"calculator_ready"`
	Version         string `json:"version"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
