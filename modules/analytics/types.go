package analytics

import (
	"sync"
	"time"
)

// CalculationLog represents a single recorded calculation.
type CalculationLog struct {
	CalculationID string    `json:"calculation_id,omitempty"`
	Operation     string    `json:"operation"`
	Num1          float64   `json:"num1"`
	Num2          float64   `json:"num2"`
	Result        float64   `json:"result"`
	ComputedAt    time.Time `json:"computed_at"`
}

// OperationUsage tracks usage counters for a single operation.
type OperationUsage struct {
	Operation string    `json:"operation"`
	Completed int64     `json:"completed"`
	Failed    int64     `json:"failed"`
	LastUsed  time.Time `json:"last_used,omitempty"`
}

// DefaultMaxRecentLogs is the default maximum number of calculation logs to retain.
const DefaultMaxRecentLogs = 1000

// UsageStore provides thread-safe storage for calculator usage data.
type UsageStore struct {
	mu            sync.RWMutex
	recentLogs    []CalculationLog
	usage         map[string]*OperationUsage
	completed     int64
	failed        int64
	maxRecentLogs int
}

// NewUsageStore creates a new usage store with default limits.
func NewUsageStore() *UsageStore {
	return NewUsageStoreWithLimit(DefaultMaxRecentLogs)
}

// NewUsageStoreWithLimit creates a new usage store with a custom limit.
func NewUsageStoreWithLimit(maxLogs int) *UsageStore {
	if maxLogs <= 0 {
		maxLogs = DefaultMaxRecentLogs
	}
	return &UsageStore{
		recentLogs:    make([]CalculationLog, 0),
		usage:         make(map[string]*OperationUsage),
		maxRecentLogs: maxLogs,
	}
}

// RecordCompleted records a successful calculation.
func (s *UsageStore) RecordCompleted(log CalculationLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.completed++

	// Append to recent logs with size limit (circular buffer behavior)
	s.recentLogs = append(s.recentLogs, log)
	if len(s.recentLogs) > s.maxRecentLogs {
		excess := len(s.recentLogs) - s.maxRecentLogs
		s.recentLogs = s.recentLogs[excess:]
	}

	usage := s.usageFor(log.Operation)
	usage.Completed++
	usage.LastUsed = log.ComputedAt
}

// RecordFailed records a rejected calculation (unsupported operation or
// division by zero).
func (s *UsageStore) RecordFailed(operation string, failedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failed++

	usage := s.usageFor(operation)
	usage.Failed++
	usage.LastUsed = failedAt
}

// usageFor returns the usage entry for an operation, creating it if needed.
// Caller must hold the write lock.
func (s *UsageStore) usageFor(operation string) *OperationUsage {
	usage, exists := s.usage[operation]
	if !exists {
		usage = &OperationUsage{Operation: operation}
		s.usage[operation] = usage
	}
	return usage
}

// GetUsage returns usage counters for a specific operation.
func (s *UsageStore) GetUsage(operation string) (*OperationUsage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	usage, exists := s.usage[operation]
	if !exists {
		return nil, false
	}

	// Return a copy to avoid race conditions
	copy := *usage
	return &copy, true
}

// GetAllUsage returns usage counters for all operations seen so far.
func (s *UsageStore) GetAllUsage() []OperationUsage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]OperationUsage, 0, len(s.usage))
	for _, usage := range s.usage {
		result = append(result, *usage)
	}
	return result
}

// GetRecentLogs returns the most recent calculation logs.
func (s *UsageStore) GetRecentLogs(limit int) []CalculationLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.recentLogs) == 0 {
		return nil
	}

	start := 0
	if len(s.recentLogs) > limit {
		start = len(s.recentLogs) - limit
	}

	result := make([]CalculationLog, len(s.recentLogs)-start)
	copy(result, s.recentLogs[start:])
	return result
}

// GetSummary returns an overall usage summary.
func (s *UsageStore) GetSummary() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byOperation := make(map[string]int64, len(s.usage))
	for name, usage := range s.usage {
		byOperation[name] = usage.Completed
	}

	return map[string]any{
		"calculations_completed": s.completed,
		"calculations_failed":    s.failed,
		"by_operation":           byOperation,
		"recent_logs":            len(s.recentLogs),
	}
}
