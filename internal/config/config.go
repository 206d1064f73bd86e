// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// DodgeConfig contains all configuration for the Grid Dodge game.
type DodgeConfig struct {
	Board      DodgeBoard       `yaml:"board"`
	Player     DodgePlayer      `yaml:"player"`
	Enemies    DodgeEnemies     `yaml:"enemies"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DodgeBoard defines the lane stripes drawn behind the player.
type DodgeBoard struct {
	Lanes           int     `yaml:"lanes"`            // Stripes per axis (odd, centered)
	StripeThickness float64 `yaml:"stripe_thickness"` // Scene units
	StripeSpacing   float64 `yaml:"stripe_spacing"`   // Distance between stripe centers
}

// DodgePlayer defines the player square.
type DodgePlayer struct {
	Size float64 `yaml:"size"`
	Step float64 `yaml:"step"` // Distance moved per swipe
}

// DodgeEnemies defines the spawner.
type DodgeEnemies struct {
	Size          float64 `yaml:"size"`
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
	TravelTime    float64 `yaml:"travel_time"`    // Seconds to cross the frame
	SpawnOffset   float64 `yaml:"spawn_offset"`   // Offset of side spawn points from the edge midpoint
	ExitMargin    float64 `yaml:"exit_margin"`    // How far beyond the frame an enemy travels
}

// Collision rules for Sushi Neko.
const (
	RuleMatch     = "match"     // Same side as the piece wins (default)
	RuleChopstick = "chopstick" // Same side as the piece's chopsticks loses
)

// SushiConfig contains all configuration for the Sushi Neko game.
type SushiConfig struct {
	Rule       string           `yaml:"rule"`
	Tower      SushiTower       `yaml:"tower"`
	Character  SushiCharacter   `yaml:"character"`
	Health     SushiHealth      `yaml:"health"`
	Input      SushiInput       `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SushiTower defines tower geometry and generation.
type SushiTower struct {
	PieceSpacing  float64     `yaml:"piece_spacing"`
	FirstSlotY    float64     `yaml:"first_slot_y"`
	SettleRate    float64     `yaml:"settle_rate"` // Fraction of the gap closed per tick
	InitialPieces int         `yaml:"initial_pieces"`
	Weights       SideWeights `yaml:"weights"`
}

// SideWeights are percentages for a random piece after a non-empty piece.
type SideWeights struct {
	Right int `yaml:"right"`
	Left  int `yaml:"left"`
	None  int `yaml:"none"`
}

// Total returns the weight sum.
func (w SideWeights) Total() int {
	return w.Right + w.Left + w.None
}

// SushiCharacter defines the cat.
type SushiCharacter struct {
	Offset float64 `yaml:"offset"` // Horizontal distance from the tower axis
}

// SushiHealth defines the health meter.
type SushiHealth struct {
	Drain  float64 `yaml:"drain"`  // Lost per tick while playing
	Reward float64 `yaml:"reward"` // Gained per successful punch
}

// SushiInput defines touch handling.
type SushiInput struct {
	TouchSplit float64 `yaml:"touch_split"` // Fraction of the width; touches right of it punch right
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to speed (or drain) at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of the spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values map to "",
// meaning the config file decides.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies a difficulty config based on a preset. An empty preset
// leaves the config untouched.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Enabled = false
	default:
		cfg.Enabled = true
		cfg.InitialLevel = InitialLevelForPreset(preset)
	}
}
