package schedule

import (
	"math"
	"testing"

	"costsplit/internal/domain"
	"costsplit/internal/parser"
	"costsplit/internal/trace"
)

func TestScheduleConservation(t *testing.T) {
	sink := &trace.Buffer{}
	s := newTestScheduler(t, sink)

	plan, err := s.Schedule(Request{
		UnitTests:    "gsql_a gsql_b other_a other_b other_c",
		Integrations: "gap: 1 2; case: 3 4",
		Groups:       4,
		OSLabels:     []string{"centos7", "ubuntu18", "centos6", "k8s-1"},
		Special:      parser.NewSpecialSet([]string{"gsql"}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(plan.Slots))
	}

	want := map[string]bool{
		"gsql_a": true, "gsql_b": true,
		"other_a": true, "other_b": true, "other_c": true,
		"gap 1": true, "gap 2": true, "case 3": true, "case 4": true,
	}
	seen := map[string]int{}
	grandTotal := 0.0
	for _, slot := range plan.Slots {
		slotTotal := 0.0
		for _, it := range append(slot.UnitTests, slot.Regress...) {
			seen[it.Name]++
			slotTotal += it.Cost
		}
		if math.Abs(slotTotal-slot.Total) > 1e-9 {
			t.Errorf("slot %d total %v does not match its items (%v)", slot.Index, slot.Total, slotTotal)
		}
		grandTotal += slot.Total
	}
	for name := range want {
		if seen[name] != 1 {
			t.Errorf("item %s assigned %d times", name, seen[name])
		}
	}
	if len(seen) != len(want) {
		t.Errorf("expected %d distinct items, got %d", len(want), len(seen))
	}
	// every test has no history, so every cost is 1
	if math.Abs(grandTotal-float64(len(want))) > 1e-9 {
		t.Errorf("expected grand total %d, got %v", len(want), grandTotal)
	}
}

func TestScheduleKeepsSpecialsOffRestrictedOS(t *testing.T) {
	sink := &trace.Buffer{}
	s := newTestScheduler(t, sink)

	plan, err := s.Schedule(Request{
		UnitTests:    "gsql_a gsql_b gsql_c other_a",
		Integrations: "none",
		Groups:       4,
		OSLabels:     []string{"centos6", "k8s-1", "centos7", "ubuntu18"},
		Special:      parser.NewSpecialSet([]string{"gsql"}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, slot := range plan.Slots {
		if eligibleOS(slot.OS) {
			continue
		}
		for _, it := range slot.UnitTests {
			if it.Special {
				t.Errorf("special test %s landed on restricted OS %s", it.Name, slot.OS)
			}
		}
	}
}

func TestScheduleNoEligibleOS(t *testing.T) {
	sink := &trace.Buffer{}
	s := newTestScheduler(t, sink)

	plan, err := s.Schedule(Request{
		UnitTests:    "gsql_a other_a",
		Integrations: "none",
		Groups:       2,
		OSLabels:     []string{"centos6", "k8s-1"},
		Special:      parser.NewSpecialSet([]string{"gsql"}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the constraint cannot be satisfied; the run must still conserve every
	// item and leave a warning in the trace
	seen := 0
	for _, slot := range plan.Slots {
		seen += len(slot.UnitTests)
	}
	if seen != 2 {
		t.Errorf("expected 2 unit tests across slots, got %d", seen)
	}
	if !sink.Contains("warning") {
		t.Errorf("expected a warning in the trace, got %v", sink.Lines)
	}
}

func TestScheduleOSLabelsCycle(t *testing.T) {
	s := newTestScheduler(t, &trace.Buffer{})

	plan, err := s.Schedule(Request{
		UnitTests:    "none",
		Integrations: "none",
		Groups:       5,
		OSLabels:     []string{"centos7", "ubuntu18"},
		Special:      parser.SpecialSet{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"centos7", "ubuntu18", "centos7", "ubuntu18", "centos7"}
	for i, slot := range plan.Slots {
		if slot.OS != want[i] {
			t.Errorf("slot %d: expected OS %s, got %s", i, want[i], slot.OS)
		}
	}
}

func TestScheduleErrors(t *testing.T) {
	s := newTestScheduler(t, &trace.Buffer{})

	tests := []struct {
		name string
		req  Request
	}{
		{
			name: "zero groups",
			req: Request{
				UnitTests: "none", Integrations: "none",
				Groups: 0, OSLabels: []string{"centos7"},
			},
		},
		{
			name: "no OS labels",
			req: Request{
				UnitTests: "none", Integrations: "none",
				Groups: 2, OSLabels: nil,
			},
		},
		{
			name: "malformed integration clause",
			req: Request{
				UnitTests: "none", Integrations: "gap 1 2",
				Groups: 2, OSLabels: []string{"centos7"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Schedule(tt.req); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestScheduleSeedsIntegrationBias(t *testing.T) {
	s := newTestScheduler(t, &trace.Buffer{})

	// the integration pass starts from the unit-test totals, so the final
	// totals balance across both categories
	plan, err := s.Schedule(Request{
		UnitTests:    "other_a other_b other_c other_d",
		Integrations: "gap: 1 2 3 4",
		Groups:       2,
		OSLabels:     []string{"centos7", "ubuntu18"},
		Special:      parser.SpecialSet{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var totals []float64
	for _, slot := range plan.Slots {
		totals = append(totals, slot.Total)
	}
	// 8 items of cost 1 across 2 slots balance to 4 and 4
	for i, total := range totals {
		if math.Abs(total-4) > 1e-9 {
			t.Errorf("slot %d: expected total 4, got %v", i, total)
		}
	}

	var domainTotal float64
	for _, slot := range plan.Slots {
		domainTotal += domain.TotalCost(slot.UnitTests) + domain.TotalCost(slot.Regress)
	}
	if math.Abs(domainTotal-8) > 1e-9 {
		t.Errorf("expected 8 cost units assigned, got %v", domainTotal)
	}
}
