package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

//go:embed defaults/sushineko.yaml
var defaultSushiYAML []byte

// DefaultDodgeConfig returns the default Grid Dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Board: DodgeBoard{
			Lanes:           3,
			StripeThickness: 60,
			StripeSpacing:   65,
		},
		Player: DodgePlayer{
			Size: 40,
			Step: 60,
		},
		Enemies: DodgeEnemies{
			Size:          40,
			SpawnInterval: 1.0,
			TravelTime:    1.0,
			SpawnOffset:   60,
			ExitMargin:    30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 0.5,
			},
		},
	}
}

// DefaultSushiConfig returns the default Sushi Neko configuration.
func DefaultSushiConfig() SushiConfig {
	return SushiConfig{
		Rule: RuleMatch,
		Tower: SushiTower{
			PieceSpacing:  55,
			FirstSlotY:    115,
			SettleRate:    0.5,
			InitialPieces: 10,
			Weights:       SideWeights{Right: 45, Left: 45, None: 10},
		},
		Character: SushiCharacter{Offset: 89},
		Health: SushiHealth{
			Drain:  0.01,
			Reward: 0.1,
		},
		Input: SushiInput{TouchSplit: 0.5},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "dodge":
		return defaultDodgeYAML
	case "sushineko":
		return defaultSushiYAML
	default:
		return nil
	}
}
