package partition

import (
	"sort"

	"costsplit/internal/domain"
)

// ffdPartition sorts items by cost descending and greedily drops each one
// into the slot with the smallest running total, lowest index first.
func ffdPartition(items []domain.TestItem, bias []float64) ([][]domain.TestItem, []float64) {
	sorted := make([]domain.TestItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cost > sorted[j].Cost
	})

	groups := make([][]domain.TestItem, len(bias))
	totals := make([]float64, len(bias))
	copy(totals, bias)
	for _, item := range sorted {
		min := 0
		for i := 1; i < len(totals); i++ {
			if totals[i] < totals[min] {
				min = i
			}
		}
		groups[min] = append(groups[min], item)
		totals[min] += item.Cost
	}
	return groups, totals
}
