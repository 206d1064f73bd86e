package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("config: invalid")

// LoadDodge loads Grid Dodge configuration.
// Search order: customPath -> ~/.arcade/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default
func LoadDodge(customPath string) (DodgeConfig, error) {
	cfg, err := load("dodge", customPath, defaultDodgeYAML, DefaultDodgeConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadSushi loads Sushi Neko configuration.
// Search order: customPath -> ~/.arcade/configs/sushineko.yaml -> ./configs/sushineko.yaml -> embedded default
func LoadSushi(customPath string) (SushiConfig, error) {
	cfg, err := load("sushineko", customPath, defaultSushiYAML, DefaultSushiConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// load resolves a game config. Files are decoded on top of the hard-coded
// defaults, so a file only needs the keys it overrides.
func load[T any](gameID, customPath string, embedded []byte, defaults func() T) (T, error) {
	decode := func(data []byte) (T, error) {
		cfg := defaults()
		err := yaml.Unmarshal(data, &cfg)
		return cfg, err
	}

	// A custom path is explicit, so failures are reported
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return defaults(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := decode(embedded)
	if err != nil {
		return defaults(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks the Grid Dodge config for values the game cannot run with.
func (c DodgeConfig) Validate() error {
	switch {
	case c.Board.Lanes < 1 || c.Board.Lanes%2 == 0:
		return fmt.Errorf("%w: dodge board.lanes must be odd and positive, got %d", ErrInvalidConfig, c.Board.Lanes)
	case c.Player.Size <= 0 || c.Enemies.Size <= 0:
		return fmt.Errorf("%w: dodge sizes must be positive", ErrInvalidConfig)
	case c.Enemies.SpawnInterval <= 0 || c.Enemies.TravelTime <= 0:
		return fmt.Errorf("%w: dodge spawn_interval and travel_time must be positive", ErrInvalidConfig)
	}
	return nil
}

// Validate checks the Sushi Neko config for values the game cannot run with.
func (c SushiConfig) Validate() error {
	switch {
	case c.Rule != RuleMatch && c.Rule != RuleChopstick:
		return fmt.Errorf("%w: sushineko rule must be %q (default) or %q, got %q", ErrInvalidConfig, RuleMatch, RuleChopstick, c.Rule)
	case c.Tower.Weights.Total() != 100:
		return fmt.Errorf("%w: sushineko tower weights must sum to 100, got %d", ErrInvalidConfig, c.Tower.Weights.Total())
	case c.Tower.Weights.Right < 0 || c.Tower.Weights.Left < 0 || c.Tower.Weights.None < 0:
		return fmt.Errorf("%w: sushineko tower weights must not be negative", ErrInvalidConfig)
	case c.Tower.Weights.Right+c.Tower.Weights.Left == 0:
		return fmt.Errorf("%w: sushineko tower needs left or right pieces", ErrInvalidConfig)
	case c.Tower.SettleRate <= 0 || c.Tower.SettleRate > 1:
		return fmt.Errorf("%w: sushineko settle_rate must be in (0, 1]", ErrInvalidConfig)
	case c.Input.TouchSplit <= 0 || c.Input.TouchSplit >= 1:
		return fmt.Errorf("%w: sushineko touch_split must be in (0, 1)", ErrInvalidConfig)
	}
	return nil
}
