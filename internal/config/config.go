package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the scheduler CLI
type Config struct {
	// Cost history inputs (read-only, owned by the pipeline)
	UnitCostFile    string
	RegressCostFile string

	// Slot layout
	Groups          int
	OSList          []string
	SpecialPrefixes []string

	// Execution settings
	Algorithm string
	Seed      int64
	LogFile   string

	// Command flags
	Flags Flags
}

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

// New creates a Config with defaults. A local .env may override them, the
// same way the CI jobs inject their per-pipeline settings.
func New() *Config {
	_ = godotenv.Load()
	return &Config{
		UnitCostFile:    envOr("COSTSPLIT_UT_COSTS", DefaultUnitCostFile),
		RegressCostFile: envOr("COSTSPLIT_IT_COSTS", DefaultRegressCostFile),
		LogFile:         envOr("COSTSPLIT_LOG_FILE", DefaultLogFile),
		Algorithm:       envOr("COSTSPLIT_ALGORITHM", DefaultAlgorithm),
		Groups:          DefaultGroups,
		OSList:          SplitList(envOr("COSTSPLIT_OS_LIST", DefaultOSList)),
		SpecialPrefixes: SplitList(os.Getenv("COSTSPLIT_SPECIAL")),
	}
}

// Load creates a config and applies flag overrides
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Apply(flags)
	return cfg
}

// Apply overrides the config with any flag that was set
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.UnitCostFile != "" {
		c.UnitCostFile = flags.UnitCostFile
	}
	if flags.RegressCostFile != "" {
		c.RegressCostFile = flags.RegressCostFile
	}
	if flags.Groups > 0 {
		c.Groups = flags.Groups
	}
	if flags.OSList != "" {
		c.OSList = SplitList(flags.OSList)
	}
	if flags.Special != "" {
		c.SpecialPrefixes = SplitList(flags.Special)
	}
	if flags.LogFile != "" {
		c.LogFile = flags.LogFile
	}
	if flags.Algorithm != "" {
		c.Algorithm = flags.Algorithm
	}
	c.Seed = flags.Seed
}

// SplitList splits a comma-separated flag value, dropping blanks
func SplitList(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
