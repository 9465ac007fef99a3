package config

import (
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Groups != DefaultGroups {
		t.Errorf("expected Groups %d, got %d", DefaultGroups, cfg.Groups)
	}
	if cfg.Algorithm != DefaultAlgorithm {
		t.Errorf("expected Algorithm %s, got %s", DefaultAlgorithm, cfg.Algorithm)
	}
	if cfg.UnitCostFile != DefaultUnitCostFile {
		t.Errorf("expected UnitCostFile %s, got %s", DefaultUnitCostFile, cfg.UnitCostFile)
	}
	if len(cfg.OSList) != 4 {
		t.Errorf("expected 4 default OS labels, got %v", cfg.OSList)
	}
}

func TestApply(t *testing.T) {
	cfg := New()
	cfg.Apply(Flags{
		Groups:    6,
		OSList:    "centos7, k8s-a",
		Special:   "gsql,gle",
		Algorithm: "nearest",
		LogFile:   "trace.log",
		Seed:      9,
	})

	if cfg.Groups != 6 {
		t.Errorf("expected Groups 6, got %d", cfg.Groups)
	}
	if len(cfg.OSList) != 2 || cfg.OSList[0] != "centos7" || cfg.OSList[1] != "k8s-a" {
		t.Errorf("expected trimmed OS list, got %v", cfg.OSList)
	}
	if len(cfg.SpecialPrefixes) != 2 {
		t.Errorf("expected 2 special prefixes, got %v", cfg.SpecialPrefixes)
	}
	if cfg.Algorithm != "nearest" {
		t.Errorf("expected algorithm nearest, got %s", cfg.Algorithm)
	}
	if cfg.LogFile != "trace.log" {
		t.Errorf("expected log file trace.log, got %s", cfg.LogFile)
	}
	if cfg.Seed != 9 {
		t.Errorf("expected seed 9, got %d", cfg.Seed)
	}
}

func TestApplyKeepsDefaults(t *testing.T) {
	cfg := New()
	cfg.Apply(Flags{})

	if cfg.Groups != DefaultGroups {
		t.Errorf("unset flag overrode Groups: %d", cfg.Groups)
	}
	if cfg.Algorithm != DefaultAlgorithm {
		t.Errorf("unset flag overrode Algorithm: %s", cfg.Algorithm)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"plain", "a,b", []string{"a", "b"}},
		{"trims spaces", " a , b ", []string{"a", "b"}},
		{"drops blanks", "a,,b,", []string{"a", "b"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("expected %v, got %v", tt.expected, got)
				}
			}
		})
	}
}
