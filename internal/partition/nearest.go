package partition

import (
	"math"
	"sort"

	"costsplit/internal/domain"
)

// nearestSearch holds the subset-search state. The pool is never mutated:
// membership is tracked through index bitsets, so backtracking is a single
// flip and the best subset is a copy of the bitset, not of the items.
type nearestSearch struct {
	pool   []domain.TestItem
	target float64

	chosen []bool
	sum    float64

	best    []bool
	bestSum float64
}

// walk explores skip/take branches from index i and records every complete
// subset at the leaf. The take branch is pruned once the partial sum has
// reached the target: adding anything more only moves the sum away from it.
func (s *nearestSearch) walk(i int) {
	if i == len(s.pool) {
		if math.Abs(s.sum-s.target) < math.Abs(s.bestSum-s.target) {
			s.bestSum = s.sum
			copy(s.best, s.chosen)
		}
		return
	}
	s.walk(i + 1)
	if s.sum >= s.target {
		return
	}
	s.chosen[i] = true
	s.sum += s.pool[i].Cost
	s.walk(i + 1)
	s.sum -= s.pool[i].Cost
	s.chosen[i] = false
}

// findNearest returns the membership bitset of the pool subset whose total
// is closest to target, and that total. The empty subset is the starting
// candidate; on ties the first subset found wins.
func findNearest(pool []domain.TestItem, target float64) ([]bool, float64) {
	s := &nearestSearch{
		pool:   pool,
		target: target,
		chosen: make([]bool, len(pool)),
		best:   make([]bool, len(pool)),
	}
	s.walk(0)
	return s.best, s.bestSum
}

// nearestPartition fills slots 0..k-2 with the subset nearest to an even
// share of the remaining cost; the last slot takes whatever is left. A slot
// whose bias already exceeds its share receives nothing.
func nearestPartition(items []domain.TestItem, bias []float64) ([][]domain.TestItem, []float64) {
	k := len(bias)
	groups := make([][]domain.TestItem, k)
	totals := make([]float64, k)
	copy(totals, bias)

	pool := make([]domain.TestItem, len(items))
	copy(pool, items)
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Cost < pool[j].Cost
	})

	remaining := domain.TotalCost(pool)
	for _, b := range bias {
		remaining += b
	}
	for i := 0; i < k-1; i++ {
		target := remaining/float64(k-i) - bias[i]
		if target > 0 {
			chosen, sum := findNearest(pool, target)
			var rest []domain.TestItem
			for j, item := range pool {
				if chosen[j] {
					groups[i] = append(groups[i], item)
				} else {
					rest = append(rest, item)
				}
			}
			pool = rest
			totals[i] += sum
			remaining -= sum
		}
		remaining -= bias[i]
	}
	groups[k-1] = pool
	totals[k-1] = bias[k-1] + domain.TotalCost(pool)
	return groups, totals
}
