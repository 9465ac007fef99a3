// Package schedule turns raw test descriptors into a balanced per-slot
// plan, keeping special tests off the platforms that cannot run them.
package schedule

import (
	"fmt"
	"math/rand"

	"costsplit/internal/cost"
	"costsplit/internal/domain"
	"costsplit/internal/parser"
	"costsplit/internal/partition"
	"costsplit/internal/trace"
)

// Scheduler partitions unit and integration tests across worker slots.
type Scheduler struct {
	unitCosts    *cost.Table
	regressCosts *cost.RegressTable
	algo         partition.Algorithm
	rng          *rand.Rand
	sink         trace.Sink
}

// NewScheduler creates a Scheduler. The random source drives the repair
// reshuffles and must be seeded by the caller for reproducible runs.
func NewScheduler(unitCosts *cost.Table, regressCosts *cost.RegressTable, algo partition.Algorithm, rng *rand.Rand, sink trace.Sink) *Scheduler {
	return &Scheduler{
		unitCosts:    unitCosts,
		regressCosts: regressCosts,
		algo:         algo,
		rng:          rng,
		sink:         sink,
	}
}

// Request carries the inputs of one scheduling invocation.
type Request struct {
	UnitTests    string // space-separated identifiers, or "none"
	Integrations string // "type: n1 n2; ..." clauses, or "none"
	Groups       int
	OSLabels     []string // cycled across slots when shorter than Groups
	Special      parser.SpecialSet
}

// Schedule runs the full pipeline: parse and price the descriptors, split
// the unit tests under the special-OS constraint, layer the integration
// tests on top of the unit-test totals, and return the plan.
func (s *Scheduler) Schedule(req Request) (*domain.Plan, error) {
	if req.Groups <= 0 {
		return nil, fmt.Errorf("group count must be positive, got %d", req.Groups)
	}
	if len(req.OSLabels) == 0 {
		return nil, fmt.Errorf("no OS labels configured")
	}
	s.sink.Appendf("using %s algorithm", s.algo)
	s.sink.Append("start to parse tests from parameters")

	osLabels := cycleOS(req.OSLabels, req.Groups)

	specialItems, normalItems := parser.UnitTests(req.UnitTests, s.unitCosts, req.Special)
	s.sink.Appendf("special ut array: %v", domain.Names(specialItems))
	s.sink.Appendf("special unit tests total is %s", domain.FormatCost(domain.TotalCost(specialItems)))
	s.sink.Appendf("other ut array: %v", domain.Names(normalItems))
	s.sink.Appendf("all unit tests total is %s",
		domain.FormatCost(domain.TotalCost(specialItems)+domain.TotalCost(normalItems)))

	regressItems, err := parser.Integrations(req.Integrations, s.regressCosts)
	if err != nil {
		return nil, err
	}
	s.sink.Appendf("it array: %v", domain.Names(regressItems))
	s.sink.Appendf("all integration tests total is %s", domain.FormatCost(domain.TotalCost(regressItems)))
	s.sink.Flush()

	s.sink.Append("start to split unittest costs")
	slots := s.splitUnitTests(specialItems, normalItems, osLabels)

	s.sink.Append("start to split integration tests costs")
	bias := make([]float64, len(slots))
	for i, slot := range slots {
		bias[i] = slot.Total
	}
	regressGroups, totals := partition.Split(regressItems, bias, s.algo)
	for i := range slots {
		slots[i].Regress = regressGroups[i]
		slots[i].Total = totals[i]
	}
	s.sink.Appendf("it groups: %v", groupNames(regressGroups))
	s.sink.Appendf("totals: %v", formatCosts(totals))
	s.sink.Flush()

	return &domain.Plan{Slots: slots}, nil
}

// cycleOS assigns OS labels to slot indexes, repeating the configured list
// when it is shorter than the group count.
func cycleOS(labels []string, groups int) []string {
	out := make([]string, groups)
	for i := range out {
		out[i] = labels[i%len(labels)]
	}
	return out
}

func groupNames(groups [][]domain.TestItem) [][]string {
	names := make([][]string, len(groups))
	for i, g := range groups {
		names[i] = domain.Names(g)
	}
	return names
}

func formatCosts(totals []float64) []string {
	out := make([]string, len(totals))
	for i, v := range totals {
		out[i] = domain.FormatCost(v)
	}
	return out
}
