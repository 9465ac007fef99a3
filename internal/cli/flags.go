package cli

import "costsplit/internal/config"

// Flags holds command-line flags
type Flags struct {
	UnitCostFile    string
	RegressCostFile string
	UnitTests       string
	Integrations    string
	Groups          int
	OSList          string
	Special         string
	LogFile         string
	Algorithm       string
	Seed            int64
	Trials          int
	TrialItems      int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		UnitCostFile:    f.UnitCostFile,
		RegressCostFile: f.RegressCostFile,
		UnitTests:       f.UnitTests,
		Integrations:    f.Integrations,
		Groups:          f.Groups,
		OSList:          f.OSList,
		Special:         f.Special,
		LogFile:         f.LogFile,
		Algorithm:       f.Algorithm,
		Seed:            f.Seed,
		Trials:          f.Trials,
		TrialItems:      f.TrialItems,
	}
}
