// Package partition balances weighted test items across a fixed number of
// slots so that the most loaded slot finishes as early as possible.
package partition

import (
	"fmt"
	"strings"

	"costsplit/internal/domain"
)

// Algorithm selects the partitioning strategy.
type Algorithm int

const (
	// FFD is first-fit-decreasing: fast and usually close to balanced.
	FFD Algorithm = iota + 1
	// Nearest fills each slot with the subset closest to its even share of
	// the remaining cost. Exponential worst case; small pools only.
	Nearest
	// BruteForce explores every assignment with branch-and-bound pruning
	// and returns a makespan-optimal split. Exponential worst case; small
	// pools or offline verification of the heuristics only.
	BruteForce
)

func (a Algorithm) String() string {
	switch a {
	case FFD:
		return "ffd"
	case Nearest:
		return "nearest"
	case BruteForce:
		return "bruteforce"
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// ParseAlgorithm maps a flag value to an Algorithm. Numeric values match
// the legacy pipeline parameter (1=ffd, 2=nearest, 3=bruteforce).
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ffd", "1":
		return FFD, nil
	case "nearest", "2":
		return Nearest, nil
	case "bruteforce", "brute", "3":
		return BruteForce, nil
	}
	return 0, fmt.Errorf("unknown partition algorithm %q", s)
}

// Split partitions items across len(bias) slots. bias carries capacity a
// slot already consumed in a previous pass; the returned totals include it.
// The result is deterministic for a fixed algorithm and input order, with
// ties broken toward the lowest slot index / first subset found.
func Split(items []domain.TestItem, bias []float64, algo Algorithm) ([][]domain.TestItem, []float64) {
	if len(bias) == 0 {
		return nil, nil
	}
	switch algo {
	case Nearest:
		return nearestPartition(items, bias)
	case BruteForce:
		return bruteForcePartition(items, bias)
	default:
		return ffdPartition(items, bias)
	}
}
