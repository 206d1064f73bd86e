// Package scene holds the small building blocks shared by the tap games:
// session phases, orientation enums, validated scene layouts, a tick-based
// delayed-action scheduler and constant-velocity movers.
package scene

import "github.com/tapcade/arcade/internal/core"

// Phase is the lifecycle of one play session.
type Phase int

const (
	PhaseTitle Phase = iota
	PhaseReady
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Side is the horizontal side an actor occupies.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opposite returns the other side. None stays none.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// Direction is a swipe or motion axis.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Vector returns the unit offset of the direction in y-up scene space.
func (d Direction) Vector() core.Vec2 {
	switch d {
	case DirUp:
		return core.Vec2{Y: 1}
	case DirDown:
		return core.Vec2{Y: -1}
	case DirLeft:
		return core.Vec2{X: -1}
	case DirRight:
		return core.Vec2{X: 1}
	default:
		return core.Vec2{}
	}
}

// DirectionFromAction maps a swipe action to a direction.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// Edge is a side of the scene frame.
type Edge int

const (
	EdgeRight Edge = iota
	EdgeTop
	EdgeLeft
	EdgeBottom
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeLeft:
		return "left"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Inward returns the direction pointing from the edge across the frame.
func (e Edge) Inward() Direction {
	switch e {
	case EdgeRight:
		return DirLeft
	case EdgeTop:
		return DirDown
	case EdgeLeft:
		return DirRight
	default:
		return DirUp
	}
}
