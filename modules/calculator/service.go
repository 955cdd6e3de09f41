package calculator

import (
	"context"
	"time"

	"github.com/example/calculator-service/domain/calculation"
	"github.com/google/uuid"
)

// Service provides calculation operations. It is stateless: every call is an
// independent pure function of its inputs.
type Service struct{}

// NewService creates a new calculator service.
func NewService() *Service {
	return &Service{}
}

// Calculate performs the requested operation and returns the calculation record.
// The operation name is matched case-insensitively and echoed canonicalized.
func (s *Service) Calculate(_ context.Context, operation string, num1, num2 float64) (*calculation.Calculation, error) {
	kind, err := ParseOperationKind(operation)
	if err != nil {
		return nil, err
	}

	result, err := kind.Apply(num1, num2)
	if err != nil {
		return nil, err
	}

	return &calculation.Calculation{
		ID:         uuid.New().String(),
		Operation:  string(kind),
		Num1:       num1,
		Num2:       num2,
		Result:     result,
		ComputedAt: time.Now(),
	}, nil
}

// SupportedOperations returns the canonical operation names in fixed order.
func (s *Service) SupportedOperations() []string {
	return SupportedOperations()
}

// OperationCatalog returns the annotated operation listing.
func (s *Service) OperationCatalog() []calculation.OperationInfo {
	return OperationCatalog()
}
