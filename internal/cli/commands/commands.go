package commands

import (
	"costsplit/internal/cli"
	"costsplit/internal/config"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Split  *SplitCommand
	List   *ListCommand
	Verify *VerifyCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	return &Commands{
		Split:  NewSplitCommand(cfg),
		List:   NewListCommand(cfg),
		Verify: NewVerifyCommand(cfg),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Split command
	splitCmd := &cobra.Command{
		Use:   "split",
		Short: "Partition tests across worker slots",
		Long:  "Balance unit and integration tests across worker slots by historical cost and print the per-slot assignment line",
		RunE:  c.Split.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Apply(flags.ToConfigFlags())
			return nil
		},
	}
	addInputFlags(splitCmd, flags)
	splitCmd.Flags().IntVarP(&flags.Groups, "groups", "g", 0, "Number of worker slots to fill")
	splitCmd.Flags().StringVar(&flags.OSList, "os-list", "", "Comma-separated OS labels, cycled across slots")
	splitCmd.Flags().StringVar(&flags.LogFile, "log-file", "", "Path of the scheduling trace log")
	splitCmd.Flags().StringVarP(&flags.Algorithm, "algorithm", "a", "", "Partition algorithm: ffd, nearest or bruteforce")
	splitCmd.Flags().Int64Var(&flags.Seed, "seed", 0, "Random seed for shuffles and repair retries (0 uses the clock)")
	rootCmd.AddCommand(splitCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List parsed tests with their averaged costs",
		Long:  "Parse the test descriptors and print every item with its averaged historical cost, without partitioning anything",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Apply(flags.ToConfigFlags())
			return nil
		},
	}
	addInputFlags(listCmd, flags)
	rootCmd.AddCommand(listCmd)

	// Verify command
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare the heuristics against the optimal split",
		Long:  "Run random trials and measure how far the ffd and nearest heuristics land from the brute-force optimum",
		RunE:  c.Verify.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Apply(flags.ToConfigFlags())
			return nil
		},
	}
	verifyCmd.Flags().IntVarP(&flags.Trials, "trials", "n", 0, "Number of random trials to run")
	verifyCmd.Flags().IntVar(&flags.TrialItems, "items", 0, "Pool size per trial (brute force is exponential, keep it small)")
	verifyCmd.Flags().IntVarP(&flags.Groups, "groups", "g", 0, "Number of worker slots to fill")
	verifyCmd.Flags().Int64Var(&flags.Seed, "seed", 0, "Random seed for the trial pools (0 uses the clock)")
	rootCmd.AddCommand(verifyCmd)
}

// addInputFlags binds the flags shared by split and list
func addInputFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVar(&flags.UnitCostFile, "ut-costs", "", "Unit-test cost history JSON file")
	cmd.Flags().StringVar(&flags.RegressCostFile, "it-costs", "", "Integration-test cost history JSON file")
	cmd.Flags().StringVarP(&flags.UnitTests, "unittests", "u", "none", "Space-separated unit-test identifiers, or \"none\"")
	cmd.Flags().StringVarP(&flags.Integrations, "integrations", "i", "none", "Semicolon-separated \"type: n1 n2\" clauses, or \"none\"")
	cmd.Flags().StringVar(&flags.Special, "special", "", "Comma-separated special unit-test prefixes")
}
