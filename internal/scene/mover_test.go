package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapcade/arcade/internal/core"
)

func TestMoverConstantVelocity(t *testing.T) {
	m := NewMover(core.Vec2{X: 400, Y: 200}, core.Vec2{X: -30, Y: 200}, 43)
	v := m.Velocity()
	assert.InDelta(t, -10, v.X, 1e-9)
	assert.Zero(t, v.Y)

	prev := m.Pos()
	for i := 0; i < 42; i++ {
		p := m.Step()
		assert.InDelta(t, -10, p.X-prev.X, 1e-9, "step %d", i)
		prev = p
		require.False(t, m.Done(), "done too early at step %d", i)
	}

	p := m.Step()
	assert.True(t, m.Done())
	assert.Equal(t, core.Vec2{X: -30, Y: 200}, p)

	// Stepping past the end stays at the target.
	assert.Equal(t, core.Vec2{X: -30, Y: 200}, m.Step())
}

func TestMoverZeroTicks(t *testing.T) {
	m := NewMover(core.Vec2{}, core.Vec2{X: 10}, 0)
	assert.Equal(t, 1, m.Total)
	m.Step()
	assert.True(t, m.Done())
}
