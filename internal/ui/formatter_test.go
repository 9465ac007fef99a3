package ui

import (
	"math/rand"
	"strings"
	"testing"

	"costsplit/internal/domain"
	"costsplit/internal/trace"
)

func newTestFormatter(sink trace.Sink) *Formatter {
	return NewFormatter(rand.New(rand.NewSource(7)), sink)
}

func TestAssemble(t *testing.T) {
	sink := &trace.Buffer{}
	f := newTestFormatter(sink)

	plan := &domain.Plan{Slots: []domain.Slot{
		{
			Index: 0,
			OS:    "centos7",
			UnitTests: []domain.TestItem{
				{Name: "ut_a", Cost: 2},
				{Name: "ut_b", Cost: 1},
			},
			Regress: []domain.TestItem{
				{Name: "gap 1", Cost: 1},
				{Name: "case 3", Cost: 2},
			},
			Total: 6,
		},
		{Index: 1, OS: "ubuntu18"},
	}}

	line := f.Assemble(plan)

	records := strings.Split(line, " # ")
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d: %q", len(records), line)
	}
	for _, record := range records {
		if strings.Count(record, " $$$ ") != 2 {
			t.Errorf("record %q does not have two field separators", record)
		}
	}

	var full, empty string
	for _, record := range records {
		if strings.HasPrefix(record, "centos7") {
			full = record
		} else {
			empty = record
		}
	}
	if empty != "ubuntu18 $$$ none $$$ none" {
		t.Errorf("unexpected empty-slot record %q", empty)
	}
	for _, part := range []string{"ut_a", "ut_b", "gap: 1 ;", "case: 3 ;"} {
		if !strings.Contains(full, part) {
			t.Errorf("record %q is missing %q", full, part)
		}
	}

	if !sink.Contains("max total time: 6") {
		t.Errorf("expected the overall maximum in the trace, got %v", sink.Lines)
	}
	if !sink.Contains("max ut time: 3") {
		t.Errorf("expected the unit-test maximum in the trace, got %v", sink.Lines)
	}
	if !sink.Contains("max it time: 3") {
		t.Errorf("expected the integration maximum in the trace, got %v", sink.Lines)
	}
}

func TestAssembleShufflingKeepsTotals(t *testing.T) {
	sink := &trace.Buffer{}
	f := newTestFormatter(sink)

	slots := []domain.Slot{
		{Index: 0, OS: "centos7", UnitTests: []domain.TestItem{{Name: "a", Cost: 1}, {Name: "b", Cost: 2}}, Total: 3},
		{Index: 1, OS: "ubuntu18", UnitTests: []domain.TestItem{{Name: "c", Cost: 4}}, Total: 4},
	}
	plan := &domain.Plan{Slots: slots}
	f.Assemble(plan)

	total := 0.0
	for _, slot := range plan.Slots {
		total += slot.Total
		if got := domain.TotalCost(slot.UnitTests); got != slot.Total {
			t.Errorf("slot %d items sum to %v, total says %v", slot.Index, got, slot.Total)
		}
	}
	if total != 7 {
		t.Errorf("expected grand total 7, got %v", total)
	}
}

func TestRegressClauses(t *testing.T) {
	f := newTestFormatter(&trace.Buffer{})

	items := []domain.TestItem{
		{Name: "gap 1", Cost: 1},
		{Name: "case 3", Cost: 2.5},
		{Name: "gap 2", Cost: 1},
	}
	var total float64
	got := f.regressClauses(items, &total)

	// types group in first-appearance order
	if got != "gap: 1 2 ; case: 3 ;" {
		t.Errorf("unexpected clause string %q", got)
	}
	if total != 4.5 {
		t.Errorf("expected total 4.5, got %v", total)
	}
}
