package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	dodge, err := load("dodge", "", defaultDodgeYAML, func() DodgeConfig { return DodgeConfig{} })
	if err != nil {
		t.Fatalf("load dodge: %v", err)
	}
	if dodge != DefaultDodgeConfig() {
		t.Errorf("embedded dodge.yaml drifted from DefaultDodgeConfig:\n%+v\n%+v", dodge, DefaultDodgeConfig())
	}

	sushi, err := load("sushineko", "", defaultSushiYAML, func() SushiConfig { return SushiConfig{} })
	if err != nil {
		t.Fatalf("load sushineko: %v", err)
	}
	if sushi != DefaultSushiConfig() {
		t.Errorf("embedded sushineko.yaml drifted from DefaultSushiConfig:\n%+v\n%+v", sushi, DefaultSushiConfig())
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sushi.yaml")
	if err := os.WriteFile(path, []byte("rule: chopstick\nhealth:\n  drain: 0.02\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSushi(path)
	if err != nil {
		t.Fatalf("LoadSushi() failed: %v", err)
	}
	if cfg.Rule != RuleChopstick {
		t.Errorf("Rule = %q, expected %q", cfg.Rule, RuleChopstick)
	}
	if cfg.Health.Drain != 0.02 {
		t.Errorf("Drain = %v, expected 0.02", cfg.Health.Drain)
	}
	// Keys absent from the file keep their defaults
	if cfg.Health.Reward != 0.1 || cfg.Tower.PieceSpacing != 55 {
		t.Errorf("defaults lost: reward=%v spacing=%v", cfg.Health.Reward, cfg.Tower.PieceSpacing)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadDodge(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDodge(path); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  lanes: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDodge(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSushiValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SushiConfig)
		ok     bool
	}{
		{"defaults", func(*SushiConfig) {}, true},
		{"chopstick rule", func(c *SushiConfig) { c.Rule = RuleChopstick }, true},
		{"unknown rule", func(c *SushiConfig) { c.Rule = "random" }, false},
		{"weights not 100", func(c *SushiConfig) { c.Tower.Weights.None = 20 }, false},
		{"only none", func(c *SushiConfig) { c.Tower.Weights = SideWeights{None: 100} }, false},
		{"split at edge", func(c *SushiConfig) { c.Input.TouchSplit = 1 }, false},
		{"settle zero", func(c *SushiConfig) { c.Tower.SettleRate = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSushiConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultDodgeConfig().Difficulty

	ApplyPreset(&cfg, "")
	if cfg != DefaultDodgeConfig().Difficulty {
		t.Error("empty preset should not change the config")
	}

	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Enabled || cfg.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%v", cfg.Enabled, cfg.InitialLevel)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Enabled {
		t.Error("fixed preset should disable progression")
	}

	if ParsePreset("normal") != DifficultyNormal || ParsePreset("insane") != "" {
		t.Error("ParsePreset mismatch")
	}
}

func TestDifficultyManager(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 0.5},
	})

	if got := dm.Level(5, 0); got != 0.5 {
		t.Errorf("Level(5) = %v, expected 0.5", got)
	}
	if got := dm.Level(100, 0); got != 1.0 {
		t.Errorf("Level should clamp at 1, got %v", got)
	}
	if got := dm.Speed(2.0, 10, 0); got != 4.0 {
		t.Errorf("Speed at max = %v, expected 4", got)
	}
	if got := dm.Interval(1.0, 10, 0); got != 0.5 {
		t.Errorf("Interval at max = %v, expected 0.5", got)
	}

	greedy := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 1},
		Scaling:     ScalingConfig{IntervalReduction: 5},
	})
	if got := greedy.Interval(1.0, 0, 10); got < minIntervalFraction-1e-9 {
		t.Errorf("Interval should keep a floor, got %v", got)
	}

	disabled := NewDifficultyManager(DifficultyConfig{InitialLevel: 0.3})
	if disabled.IsEnabled() || disabled.Level(1000, 1000) != 0.3 {
		t.Error("disabled manager should stay at the initial level")
	}
}

func TestDefaultSushiRuleIsMatch(t *testing.T) {
	cfg, err := LoadSushi("")
	if err != nil {
		t.Fatalf("LoadSushi() failed: %v", err)
	}
	if cfg.Rule != RuleMatch {
		t.Errorf("default Rule = %q, expected %q", cfg.Rule, RuleMatch)
	}
	if DefaultSushiConfig().Rule != RuleMatch {
		t.Errorf("hard-coded Rule = %q, expected %q", DefaultSushiConfig().Rule, RuleMatch)
	}
}
