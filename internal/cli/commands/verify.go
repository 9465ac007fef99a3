package commands

import (
	"fmt"
	"math"
	"math/rand"

	"costsplit/internal/config"
	"costsplit/internal/domain"
	"costsplit/internal/partition"
	"costsplit/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// maxTrialItems caps the pool size: the brute-force reference is
// exponential, and callers of verify own no deadline to hide behind.
const maxTrialItems = 14

// VerifyCommand handles the verify command
type VerifyCommand struct {
	config *config.Config
}

// NewVerifyCommand creates a new VerifyCommand
func NewVerifyCommand(cfg *config.Config) *VerifyCommand {
	return &VerifyCommand{config: cfg}
}

// Execute runs random trials and reports how often ffd and nearest reach
// the brute-force optimum and how far off they land at worst.
func (vc *VerifyCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := vc.config

	trials := cfg.Flags.Trials
	if trials <= 0 {
		trials = config.DefaultTrials
	}
	items := cfg.Flags.TrialItems
	if items <= 0 {
		items = config.DefaultTrialItems
	}
	if items > maxTrialItems {
		return fmt.Errorf("pool size %d exceeds the brute-force budget of %d items", items, maxTrialItems)
	}
	groups := cfg.Groups
	rng := newRand(cfg.Seed)

	bar := ui.NewTrialProgress(trials)
	ffdOptimal, nearestOptimal := 0, 0
	var ffdWorstGap, nearestWorstGap float64
	for t := 0; t < trials; t++ {
		pool := randomPool(rng, items)
		bias := make([]float64, groups)

		_, ffdTotals := partition.Split(pool, bias, partition.FFD)
		_, nearestTotals := partition.Split(pool, bias, partition.Nearest)
		_, bestTotals := partition.Split(pool, bias, partition.BruteForce)

		best := maxTotal(bestTotals)
		ffd := maxTotal(ffdTotals)
		nearest := maxTotal(nearestTotals)
		if ffd < best-1e-9 || nearest < best-1e-9 {
			bar.Finish()
			return fmt.Errorf("trial %d: heuristic beat the brute-force optimum (ffd=%g nearest=%g best=%g)", t, ffd, nearest, best)
		}

		if ffd <= best+1e-9 {
			ffdOptimal++
		} else {
			ffdWorstGap = math.Max(ffdWorstGap, ffd/best-1)
		}
		if nearest <= best+1e-9 {
			nearestOptimal++
		} else {
			nearestWorstGap = math.Max(nearestWorstGap, nearest/best-1)
		}
		bar.Update(ffdOptimal, t+1-ffdOptimal)
	}
	bar.Finish()

	color.Cyan("%d trials, %d items across %d slots:", trials, items, groups)
	fmt.Printf("  ffd      optimal %d/%d, worst gap %.1f%%\n", ffdOptimal, trials, ffdWorstGap*100)
	fmt.Printf("  nearest  optimal %d/%d, worst gap %.1f%%\n", nearestOptimal, trials, nearestWorstGap*100)
	if ffdOptimal == trials {
		color.Green("✓ ffd matched the optimum on every trial")
	}
	return nil
}

// randomPool fabricates a pool with costs in the shape of real history
// data: one decimal place, up to half a minute per test.
func randomPool(rng *rand.Rand, n int) []domain.TestItem {
	items := make([]domain.TestItem, n)
	for i := range items {
		items[i] = domain.TestItem{
			Name: fmt.Sprintf("t%d", i),
			Cost: math.Round(rng.Float64()*300+1) / 10,
		}
	}
	return items
}

func maxTotal(totals []float64) float64 {
	max := 0.0
	for _, v := range totals {
		if v > max {
			max = v
		}
	}
	return max
}
