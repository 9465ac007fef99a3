package domain

import "strconv"

// TestItem is a single schedulable test with its averaged historical cost.
type TestItem struct {
	Name    string  // unit-test identifier, or "type n" for regress items
	Cost    float64 // averaged historical cost; 1 when no history exists
	Special bool    // restricted to slots whose OS may run special tests
}

// Slot is one worker placement target with an OS label and the tests
// assigned to it.
type Slot struct {
	Index     int
	OS        string
	UnitTests []TestItem
	Regress   []TestItem
	Total     float64
}

// Plan is the final per-slot assignment for one scheduling run.
type Plan struct {
	Slots []Slot
}

// TotalCost sums the costs of items.
func TotalCost(items []TestItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Cost
	}
	return total
}

// Names returns the item identifiers in order.
func Names(items []TestItem) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}

// FormatCost renders a cost without trailing zeros (1 -> "1", 2.5 -> "2.5").
func FormatCost(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
