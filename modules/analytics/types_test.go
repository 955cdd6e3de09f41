package analytics

import (
	"testing"
	"time"
)

func TestUsageStore_RecordCompleted(t *testing.T) {
	store := NewUsageStore()

	store.RecordCompleted(CalculationLog{
		Operation:  "add",
		Num1:       10,
		Num2:       5,
		Result:     15,
		ComputedAt: time.Now(),
	})

	usage, exists := store.GetUsage("add")
	if !exists {
		t.Fatal("Expected usage to exist after recording calculation")
	}

	if usage.Completed != 1 {
		t.Errorf("Expected Completed = 1, got %d", usage.Completed)
	}

	if usage.Operation != "add" {
		t.Errorf("Expected Operation = 'add', got %q", usage.Operation)
	}
}

func TestUsageStore_RecordMultipleCompleted(t *testing.T) {
	store := NewUsageStore()

	for i := 0; i < 5; i++ {
		store.RecordCompleted(CalculationLog{
			Operation:  "multiply",
			ComputedAt: time.Now(),
		})
	}

	usage, exists := store.GetUsage("multiply")
	if !exists {
		t.Fatal("Expected usage to exist")
	}

	if usage.Completed != 5 {
		t.Errorf("Expected Completed = 5, got %d", usage.Completed)
	}
}

func TestUsageStore_RecordFailed(t *testing.T) {
	store := NewUsageStore()

	store.RecordFailed("power", time.Now())
	store.RecordFailed("power", time.Now())
	store.RecordFailed("divide", time.Now())

	usage, exists := store.GetUsage("power")
	if !exists {
		t.Fatal("Expected usage to exist after recording failure")
	}
	if usage.Failed != 2 {
		t.Errorf("Expected Failed = 2, got %d", usage.Failed)
	}
	if usage.Completed != 0 {
		t.Errorf("Expected Completed = 0, got %d", usage.Completed)
	}
}

func TestUsageStore_GetSummary(t *testing.T) {
	store := NewUsageStore()

	store.RecordCompleted(CalculationLog{Operation: "add", ComputedAt: time.Now()})
	store.RecordCompleted(CalculationLog{Operation: "add", ComputedAt: time.Now()})
	store.RecordCompleted(CalculationLog{Operation: "divide", ComputedAt: time.Now()})
	store.RecordFailed("divide", time.Now())

	summary := store.GetSummary()

	if summary["calculations_completed"].(int64) != 3 {
		t.Errorf("Expected calculations_completed = 3, got %v", summary["calculations_completed"])
	}

	if summary["calculations_failed"].(int64) != 1 {
		t.Errorf("Expected calculations_failed = 1, got %v", summary["calculations_failed"])
	}

	byOperation := summary["by_operation"].(map[string]int64)
	if byOperation["add"] != 2 {
		t.Errorf("Expected by_operation[add] = 2, got %v", byOperation["add"])
	}
}

func TestUsageStore_GetRecentLogs(t *testing.T) {
	store := NewUsageStore()

	// Record 10 calculations
	for i := 0; i < 10; i++ {
		store.RecordCompleted(CalculationLog{
			Operation:  "add",
			ComputedAt: time.Now(),
		})
	}

	// Get only last 5
	logs := store.GetRecentLogs(5)
	if len(logs) != 5 {
		t.Errorf("Expected 5 logs, got %d", len(logs))
	}

	// Get all when limit exceeds count
	logs = store.GetRecentLogs(100)
	if len(logs) != 10 {
		t.Errorf("Expected 10 logs, got %d", len(logs))
	}
}

func TestUsageStore_RecentLogsBounded(t *testing.T) {
	store := NewUsageStoreWithLimit(3)

	for i := 0; i < 10; i++ {
		store.RecordCompleted(CalculationLog{
			Operation:  "add",
			Num1:       float64(i),
			ComputedAt: time.Now(),
		})
	}

	logs := store.GetRecentLogs(100)
	if len(logs) != 3 {
		t.Fatalf("Expected 3 retained logs, got %d", len(logs))
	}

	// Oldest entries are dropped first
	if logs[0].Num1 != 7 {
		t.Errorf("Expected oldest retained Num1 = 7, got %v", logs[0].Num1)
	}
}

func TestUsageStore_GetAllUsage(t *testing.T) {
	store := NewUsageStore()

	store.RecordCompleted(CalculationLog{Operation: "add", ComputedAt: time.Now()})
	store.RecordCompleted(CalculationLog{Operation: "subtract", ComputedAt: time.Now()})
	store.RecordFailed("power", time.Now())

	allUsage := store.GetAllUsage()
	if len(allUsage) != 3 {
		t.Errorf("Expected 3 usage entries, got %d", len(allUsage))
	}
}

func TestUsageStore_NonExistentUsage(t *testing.T) {
	store := NewUsageStore()

	usage, exists := store.GetUsage("nonexistent")
	if exists {
		t.Error("Expected exists = false for unseen operation")
	}
	if usage != nil {
		t.Error("Expected usage = nil for unseen operation")
	}
}
