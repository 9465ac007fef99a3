package schedule

import (
	"strings"

	"costsplit/internal/domain"
	"costsplit/internal/partition"
)

// maxReshuffles caps the randomized repair attempts so enforcement always
// terminates, whatever shape the input has.
const maxReshuffles = 3

// eligibleOS reports whether the OS may run special unit tests.
func eligibleOS(label string) bool {
	return label != "centos6" && !strings.HasPrefix(label, "k8s")
}

// splitUnitTests performs the two partition passes and repairs any slot
// that ended up holding special tests on an OS that cannot run them.
func (s *Scheduler) splitUnitTests(special, normal []domain.TestItem, osLabels []string) []domain.Slot {
	groups, totals := s.partitionPass(special, normal, osLabels)
	s.sink.Appendf("ut groups: %v", groupNames(groups))
	s.sink.Appendf("ut totals: %v", formatCosts(totals))

	s.sink.Append("start to handle special unit tests")
	invalid := s.enforce(groups, osLabels)
	s.sink.Appendf("invalid indexes: %v", invalid)

	for try := 0; len(invalid) > 0 && try < maxReshuffles; try++ {
		s.sink.Append("special cases are not satisfied, so split ut groups again")
		special = s.shuffled(special)
		normal = s.shuffled(normal)
		groups, totals = s.partitionPass(special, normal, osLabels)
		s.sink.Appendf("ut groups: %v", groupNames(groups))
		s.sink.Appendf("ut totals: %v", formatCosts(totals))
		invalid = s.enforce(groups, osLabels)
		s.sink.Appendf("invalid indexes: %v", invalid)
	}

	if len(invalid) > 0 {
		s.sink.Appendf("warning: special constraint still violated after %d retries, moving special tests", maxReshuffles)
		s.moveSpecials(groups, totals, osLabels, invalid)
	}

	slots := make([]domain.Slot, len(osLabels))
	for i := range slots {
		slots[i] = domain.Slot{
			Index:     i,
			OS:        osLabels[i],
			UnitTests: groups[i],
			Total:     totals[i],
		}
	}
	s.sink.Flush()
	return slots
}

// partitionPass splits the special tests across the eligible slots only,
// then the normal remainder across all slots seeded with the special
// totals, and merges the special groups back into their slots. With no
// eligible slot at all, the special tests join the normal pool so nothing
// is lost; validation will flag the violation.
func (s *Scheduler) partitionPass(special, normal []domain.TestItem, osLabels []string) ([][]domain.TestItem, []float64) {
	k := len(osLabels)
	var eligible []int
	for i, label := range osLabels {
		if eligibleOS(label) {
			eligible = append(eligible, i)
		}
	}

	bias := make([]float64, k)
	if len(eligible) == 0 {
		pool := append(append([]domain.TestItem(nil), special...), normal...)
		return partition.Split(pool, bias, s.algo)
	}

	specialGroups, specialTotals := partition.Split(special, make([]float64, len(eligible)), s.algo)
	for j, slot := range eligible {
		bias[slot] = specialTotals[j]
	}

	groups, totals := partition.Split(normal, bias, s.algo)
	for j, slot := range eligible {
		groups[slot] = append(groups[slot], specialGroups[j]...)
	}
	return groups, totals
}

// classify returns the usable and invalid slot indexes: usable slots hold
// no special test and run an eligible OS, invalid slots hold at least one
// special test on an ineligible OS.
func classify(groups [][]domain.TestItem, osLabels []string) (usable, invalid []int) {
	for i, group := range groups {
		specials := 0
		for _, item := range group {
			if item.Special {
				specials++
			}
		}
		if specials == 0 && eligibleOS(osLabels[i]) {
			usable = append(usable, i)
		}
		if specials != 0 && !eligibleOS(osLabels[i]) {
			invalid = append(invalid, i)
		}
	}
	return usable, invalid
}

// enforce validates the groups and repairs what it can by swapping the OS
// labels of invalid/usable pairs; slot contents stay put. It returns the
// slot indexes still violating the constraint.
func (s *Scheduler) enforce(groups [][]domain.TestItem, osLabels []string) []int {
	usable, invalid := classify(groups, osLabels)
	n := len(invalid)
	if len(usable) < n {
		n = len(usable)
	}
	for i := 0; i < n; i++ {
		osLabels[invalid[i]], osLabels[usable[i]] = osLabels[usable[i]], osLabels[invalid[i]]
	}
	return invalid[n:]
}

// moveSpecials empties each still-invalid slot of its special tests,
// pushing them to the next eligible slot round robin. Balance is
// sacrificed here: the placement constraint wins over the makespan.
func (s *Scheduler) moveSpecials(groups [][]domain.TestItem, totals []float64, osLabels []string, invalid []int) {
	k := len(osLabels)
	for _, src := range invalid {
		dst := -1
		for step := 1; step < k; step++ {
			cand := (src + step) % k
			if eligibleOS(osLabels[cand]) {
				dst = cand
				break
			}
		}
		if dst < 0 {
			s.sink.Appendf("warning: no eligible slot for special tests of slot %d, leaving them in place", src)
			continue
		}
		kept := groups[src][:0]
		for _, item := range groups[src] {
			if item.Special {
				groups[dst] = append(groups[dst], item)
				totals[dst] += item.Cost
				totals[src] -= item.Cost
			} else {
				kept = append(kept, item)
			}
		}
		groups[src] = kept
	}
}

// shuffled returns a reshuffled copy so retry passes see a new item order
// without disturbing the caller's slices.
func (s *Scheduler) shuffled(items []domain.TestItem) []domain.TestItem {
	out := append([]domain.TestItem(nil), items...)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
