package core

import "fmt"

// EffectKind identifies a presentation effect.
type EffectKind int

const (
	EffectFlip     EffectKind = iota // Horizontal scale sign changed
	EffectClip                       // Play a named, pre-authored clip
	EffectColorize                   // Tint the target
	EffectMoveBy                     // Animate the target by an offset
	EffectRemove                     // Target left the scene
	EffectScale                      // Resize along x (health bar)
	EffectText                       // Label text changed
)

// String returns the effect kind name.
func (k EffectKind) String() string {
	switch k {
	case EffectFlip:
		return "flip"
	case EffectClip:
		return "clip"
	case EffectColorize:
		return "colorize"
	case EffectMoveBy:
		return "moveBy"
	case EffectRemove:
		return "remove"
	case EffectScale:
		return "scale"
	case EffectText:
		return "text"
	default:
		return "unknown"
	}
}

// Effect is a presentation change produced by a state mutation. Effects never
// feed back into game logic; front ends may animate them or ignore them.
type Effect struct {
	Kind   EffectKind
	Target string  // Node or actor name
	Clip   string  // Clip name for EffectClip, text for EffectText
	Color  Color   // Tint for EffectColorize
	Offset Vec2    // Offset for EffectMoveBy
	Value  float64 // Scale for EffectFlip/EffectScale
	Ticks  int     // Duration in ticks (0 = instant)
}

// String returns a compact description for logs.
func (e Effect) String() string {
	switch e.Kind {
	case EffectClip:
		return fmt.Sprintf("%s(%s:%s)", e.Kind, e.Target, e.Clip)
	case EffectText:
		return fmt.Sprintf("%s(%s=%q)", e.Kind, e.Target, e.Clip)
	case EffectMoveBy:
		return fmt.Sprintf("%s(%s,%.0f,%.0f)", e.Kind, e.Target, e.Offset.X, e.Offset.Y)
	case EffectFlip, EffectScale:
		return fmt.Sprintf("%s(%s,%.2f)", e.Kind, e.Target, e.Value)
	default:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Target)
	}
}
