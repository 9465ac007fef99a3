package commands

import (
	"fmt"

	"costsplit/internal/config"
	"costsplit/internal/cost"
	"costsplit/internal/domain"
	"costsplit/internal/parser"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config) *ListCommand {
	return &ListCommand{config: cfg}
}

// Execute parses the descriptors and prints every item with its averaged
// cost; special tests are marked with a star.
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := lc.config

	unitCosts := cost.LoadTable(cfg.UnitCostFile)
	regressCosts := cost.LoadRegressTable(cfg.RegressCostFile)
	special := parser.NewSpecialSet(cfg.SpecialPrefixes)

	specialItems, normal := parser.UnitTests(cfg.Flags.UnitTests, unitCosts, special)
	regress, err := parser.Integrations(cfg.Flags.Integrations, regressCosts)
	if err != nil {
		return err
	}

	units := append(specialItems, normal...)
	color.Cyan("Unit tests (%d):", len(units))
	for _, item := range units {
		marker := " "
		if item.Special {
			marker = "*"
		}
		fmt.Printf("  %s %-40s %s\n", marker, item.Name, domain.FormatCost(item.Cost))
	}

	color.Cyan("Integration tests (%d):", len(regress))
	for _, item := range regress {
		fmt.Printf("    %-40s %s\n", item.Name, domain.FormatCost(item.Cost))
	}

	total := domain.TotalCost(units) + domain.TotalCost(regress)
	color.Green("✓ %d test(s), total cost %s", len(units)+len(regress), domain.FormatCost(total))
	return nil
}
