package sushineko

import (
	"github.com/tapcade/arcade/internal/core"
	"github.com/tapcade/arcade/internal/scene"
)

const (
	characterNode = "character"
	punchClip     = "punch"
)

// Character is the cat standing beside the tower.
type Character struct {
	Side   scene.Side
	X      float64 // Offset from the tower axis
	Y      float64
	XScale float64 // 1 faces right, -1 faces left
	Tint   core.Color
	offset float64
}

// NewCharacter creates a character on the left of the tower.
func NewCharacter(offset, y float64, tint core.Color) *Character {
	return &Character{
		Side:   scene.SideLeft,
		X:      -offset,
		Y:      y,
		XScale: 1,
		Tint:   tint,
		offset: offset,
	}
}

// SetSide moves the character to side and punches. Left stands at -offset
// facing right, right stands at +offset mirrored. SideNone is ignored.
func (c *Character) SetSide(side scene.Side) []core.Effect {
	switch side {
	case scene.SideLeft:
		c.X, c.XScale = -c.offset, 1
	case scene.SideRight:
		c.X, c.XScale = c.offset, -1
	default:
		return nil
	}
	c.Side = side

	return []core.Effect{
		{Kind: core.EffectFlip, Target: characterNode, Value: c.XScale},
		{Kind: core.EffectClip, Target: characterNode, Clip: punchClip},
	}
}
