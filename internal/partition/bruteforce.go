package partition

import (
	"math"
	"sort"

	"costsplit/internal/domain"
)

// bbSearch is the branch-and-bound state. groups hold indexes into items;
// groups, totals and order are kept sorted by total ascending so the
// cheapest slot is tried first and the prune hits early. order[pos] is the
// caller's slot index of position pos, so the winning assignment can be
// mapped back after the search.
type bbSearch struct {
	items  []domain.TestItem
	groups [][]int
	totals []float64
	order  []int

	bestMax    float64
	bestGroups [][]int
	bestTotals []float64
	bestOrder  []int
}

// walk assigns items[i:] to slots depth first. runningMax is the largest
// slot total committed so far; a branch is cut as soon as a tentative total
// would meet or exceed the best maximum already found, which also keeps the
// first optimal assignment found (ties never replace it).
func (s *bbSearch) walk(i int, runningMax float64) {
	if i == len(s.items) {
		if runningMax < s.bestMax {
			s.bestMax = runningMax
			s.bestGroups = copyGroups(s.groups)
			s.bestTotals = append([]float64(nil), s.totals...)
			s.bestOrder = append([]int(nil), s.order...)
		}
		return
	}
	cost := s.items[i].Cost
	for g := 0; g < len(s.groups); g++ {
		if s.totals[g]+cost >= s.bestMax {
			// totals are sorted ascending, every later slot fails too
			break
		}
		s.groups[g] = append(s.groups[g], i)
		s.totals[g] += cost
		newTotal := s.totals[g]

		// bubble the grown slot right to restore the sort order
		j := g
		for j+1 < len(s.totals) && s.totals[j+1] < s.totals[j] {
			s.swap(j, j+1)
			j++
		}
		s.walk(i+1, math.Max(runningMax, newTotal))
		for j > g {
			s.swap(j, j-1)
			j--
		}

		s.totals[g] -= cost
		s.groups[g] = s.groups[g][:len(s.groups[g])-1]
	}
}

func (s *bbSearch) swap(a, b int) {
	s.groups[a], s.groups[b] = s.groups[b], s.groups[a]
	s.totals[a], s.totals[b] = s.totals[b], s.totals[a]
	s.order[a], s.order[b] = s.order[b], s.order[a]
}

func copyGroups(groups [][]int) [][]int {
	out := make([][]int, len(groups))
	for i, g := range groups {
		out[i] = append([]int(nil), g...)
	}
	return out
}

// bruteForcePartition finds the assignment minimizing the maximum slot
// total. Items are tried cheapest first; slots start at their bias.
func bruteForcePartition(items []domain.TestItem, bias []float64) ([][]domain.TestItem, []float64) {
	k := len(bias)
	groups := make([][]domain.TestItem, k)
	totals := make([]float64, k)
	copy(totals, bias)
	if len(items) == 0 {
		return groups, totals
	}

	sorted := make([]domain.TestItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cost < sorted[j].Cost
	})

	order := make([]int, k)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return bias[order[i]] < bias[order[j]]
	})
	startTotals := make([]float64, k)
	startMax := 0.0
	for pos, slot := range order {
		startTotals[pos] = bias[slot]
		startMax = math.Max(startMax, bias[slot])
	}

	s := &bbSearch{
		items:   sorted,
		groups:  make([][]int, k),
		totals:  startTotals,
		order:   order,
		bestMax: math.Inf(1),
	}
	s.walk(0, startMax)

	for pos, slot := range s.bestOrder {
		for _, idx := range s.bestGroups[pos] {
			groups[slot] = append(groups[slot], sorted[idx])
		}
		totals[slot] = s.bestTotals[pos]
	}
	return groups, totals
}
