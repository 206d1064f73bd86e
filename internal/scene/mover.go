package scene

import "github.com/tapcade/arcade/internal/core"

// Mover drives a point toward a target at constant velocity over a fixed
// number of ticks.
type Mover struct {
	From, To core.Vec2
	Total    int
	Elapsed  int
}

// NewMover creates a mover covering from->to in ticks ticks.
func NewMover(from, to core.Vec2, ticks int) Mover {
	if ticks < 1 {
		ticks = 1
	}
	return Mover{From: from, To: to, Total: ticks}
}

// Velocity returns the per-tick displacement.
func (m Mover) Velocity() core.Vec2 {
	return m.To.Sub(m.From).Scale(1 / float64(m.Total))
}

// Step advances one tick and returns the new position.
func (m *Mover) Step() core.Vec2 {
	if m.Elapsed < m.Total {
		m.Elapsed++
	}
	return m.Pos()
}

// Pos returns the current position.
func (m Mover) Pos() core.Vec2 {
	if m.Elapsed >= m.Total {
		return m.To
	}
	return m.From.Add(m.Velocity().Scale(float64(m.Elapsed)))
}

// Done reports whether the target has been reached.
func (m Mover) Done() bool {
	return m.Elapsed >= m.Total
}
