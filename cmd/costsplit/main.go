package main

import (
	"fmt"
	"os"

	"costsplit/internal/cli"
	"costsplit/internal/cli/commands"
	"costsplit/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "costsplit",
		Short:   "Cost-aware test partitioner for CI worker slots",
		Long:    `Partitions unit and integration tests across CI worker slots by historical execution cost, balancing the slowest slot while keeping restricted tests off platforms that cannot run them.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
