package ui

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/fatih/color"

	"costsplit/internal/domain"
	"costsplit/internal/trace"
)

// Formatter turns a finished plan into the wire line consumed by the
// downstream pipeline and writes the per-slot breakdown to the trace.
type Formatter struct {
	rng  *rand.Rand
	sink trace.Sink
}

// NewFormatter creates a Formatter. The random source drives the
// presentation shuffles only; totals are not affected.
func NewFormatter(rng *rand.Rand, sink trace.Sink) *Formatter {
	return &Formatter{rng: rng, sink: sink}
}

// Assemble shuffles the plan for presentation and renders the wire line:
// per-slot records joined by " # ", each record
// "<os> $$$ <unit tests or none> $$$ <type>: <n...> ; ..." (or "none").
func (f *Formatter) Assemble(plan *domain.Plan) string {
	for i := range plan.Slots {
		f.shuffleItems(plan.Slots[i].UnitTests)
		f.shuffleItems(plan.Slots[i].Regress)
	}
	f.rng.Shuffle(len(plan.Slots), func(i, j int) {
		plan.Slots[i], plan.Slots[j] = plan.Slots[j], plan.Slots[i]
	})

	f.sink.Append("start to generate result string")
	records := make([]string, 0, len(plan.Slots))
	var maxUnit, maxRegress, maxTotal float64
	for _, slot := range plan.Slots {
		f.sink.Appendf("group %d, os %s:", slot.Index, slot.OS)

		f.sink.Append("unit test:")
		unitPart := "none"
		unitTotal := 0.0
		if len(slot.UnitTests) == 0 {
			f.sink.Append("none")
		} else {
			for _, item := range slot.UnitTests {
				unitTotal += item.Cost
				f.sink.Appendf("%s : %s", item.Name, domain.FormatCost(item.Cost))
			}
			unitPart = strings.Join(domain.Names(slot.UnitTests), " ")
		}
		f.sink.Appendf("unit test total is %s", domain.FormatCost(unitTotal))

		f.sink.Append("integration test:")
		regressPart := "none"
		regressTotal := 0.0
		if len(slot.Regress) == 0 {
			f.sink.Append("none")
		} else {
			regressPart = f.regressClauses(slot.Regress, &regressTotal)
		}
		f.sink.Appendf("integration test total is %s", domain.FormatCost(regressTotal))
		f.sink.Appendf("total is %s", domain.FormatCost(slot.Total))

		records = append(records, slot.OS+" $$$ "+unitPart+" $$$ "+regressPart)
		maxUnit = maxFloat(maxUnit, unitTotal)
		maxRegress = maxFloat(maxRegress, regressTotal)
		maxTotal = maxFloat(maxTotal, slot.Total)
	}

	line := strings.Join(records, " # ")
	f.sink.Appendf("max ut time: %s", domain.FormatCost(maxUnit))
	f.sink.Appendf("max it time: %s", domain.FormatCost(maxRegress))
	f.sink.Appendf("max total time: %s", domain.FormatCost(maxTotal))
	f.sink.Append(line)
	f.sink.Flush()
	return line
}

// regressClauses groups regress items by type in first-appearance order
// and renders "type: n1 n2 ;" clauses, logging every item cost.
func (f *Formatter) regressClauses(items []domain.TestItem, total *float64) string {
	byType := map[string][]domain.TestItem{}
	var order []string
	for _, item := range items {
		regressType, _, _ := strings.Cut(item.Name, " ")
		if _, seen := byType[regressType]; !seen {
			order = append(order, regressType)
		}
		byType[regressType] = append(byType[regressType], item)
	}

	clauses := make([]string, 0, len(order))
	for _, regressType := range order {
		nums := make([]string, 0, len(byType[regressType]))
		for _, item := range byType[regressType] {
			_, num, _ := strings.Cut(item.Name, " ")
			nums = append(nums, num)
			*total += item.Cost
			f.sink.Appendf("%s : %s", item.Name, domain.FormatCost(item.Cost))
		}
		clauses = append(clauses, regressType+": "+strings.Join(nums, " ")+" ;")
	}
	return strings.Join(clauses, " ")
}

// PrintSummary prints the balance summary for humans on stderr; stdout is
// reserved for the wire line.
func (f *Formatter) PrintSummary(plan *domain.Plan) {
	fmt.Fprintln(os.Stderr, color.CyanString("Split %d slot(s):", len(plan.Slots)))
	var worst float64
	for _, slot := range plan.Slots {
		fmt.Fprintf(os.Stderr, "  %-12s ut=%-3d it=%-3d total=%s\n",
			slot.OS, len(slot.UnitTests), len(slot.Regress), domain.FormatCost(slot.Total))
		worst = maxFloat(worst, slot.Total)
	}
	fmt.Fprintln(os.Stderr, color.GreenString("✓ expected makespan %s", domain.FormatCost(worst)))
}

func (f *Formatter) shuffleItems(items []domain.TestItem) {
	f.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
