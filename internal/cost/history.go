package cost

import (
	"encoding/json"
	"os"
)

// LoadTable reads a unit-test cost history file. A missing or unreadable
// file yields an empty table, so every lookup falls back to DefaultCost;
// scheduling must not fail just because no history has been collected yet.
func LoadTable(path string) *Table {
	t := &Table{samples: map[string][]float64{}}
	data, err := os.ReadFile(path)
	if err != nil {
		return t
	}
	var samples map[string][]float64
	if err := json.Unmarshal(data, &samples); err != nil {
		return t
	}
	t.samples = samples
	return t
}

// LoadRegressTable reads an integration-test cost history file keyed by
// regress type and name. Missing or unreadable files yield an empty table.
func LoadRegressTable(path string) *RegressTable {
	t := &RegressTable{samples: map[string]map[string][]float64{}}
	data, err := os.ReadFile(path)
	if err != nil {
		return t
	}
	var samples map[string]map[string][]float64
	if err := json.Unmarshal(data, &samples); err != nil {
		return t
	}
	t.samples = samples
	return t
}
