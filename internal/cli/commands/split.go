package commands

import (
	"fmt"
	"math/rand"
	"time"

	"costsplit/internal/config"
	"costsplit/internal/cost"
	"costsplit/internal/parser"
	"costsplit/internal/partition"
	"costsplit/internal/schedule"
	"costsplit/internal/trace"
	"costsplit/internal/ui"

	"github.com/spf13/cobra"
)

// SplitCommand handles the split command
type SplitCommand struct {
	config *config.Config
}

// NewSplitCommand creates a new SplitCommand
func NewSplitCommand(cfg *config.Config) *SplitCommand {
	return &SplitCommand{config: cfg}
}

// Execute runs the command: it builds the scheduler from the configured
// inputs, produces the plan and prints the wire line on stdout.
func (sc *SplitCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := sc.config

	algo, err := partition.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}
	sink, err := trace.NewFileSink(cfg.LogFile)
	if err != nil {
		return err
	}
	defer sink.Flush()

	rng := newRand(cfg.Seed)
	unitCosts := cost.LoadTable(cfg.UnitCostFile)
	regressCosts := cost.LoadRegressTable(cfg.RegressCostFile)

	scheduler := schedule.NewScheduler(unitCosts, regressCosts, algo, rng, sink)
	plan, err := scheduler.Schedule(schedule.Request{
		UnitTests:    cfg.Flags.UnitTests,
		Integrations: cfg.Flags.Integrations,
		Groups:       cfg.Groups,
		OSLabels:     cfg.OSList,
		Special:      parser.NewSpecialSet(cfg.SpecialPrefixes),
	})
	if err != nil {
		return err
	}

	formatter := ui.NewFormatter(rng, sink)
	fmt.Fprintln(cmd.OutOrStdout(), formatter.Assemble(plan))
	formatter.PrintSummary(plan)
	return nil
}

// newRand returns a seeded source; seed 0 falls back to the clock.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
