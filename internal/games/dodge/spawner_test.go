package dodge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapcade/arcade/internal/core"
	"github.com/tapcade/arcade/internal/scene"
)

func TestSpawnPoints(t *testing.T) {
	points := SpawnPoints(480, 480, 60)
	require.Len(t, points, 12)

	perEdge := map[scene.Edge]int{}
	for _, p := range points {
		perEdge[p.Edge]++
	}
	for _, e := range []scene.Edge{scene.EdgeRight, scene.EdgeTop, scene.EdgeLeft, scene.EdgeBottom} {
		assert.Equal(t, 3, perEdge[e], "edge %s", e)
	}

	// Order is right, top, left, bottom at midpoint offsets -60, 0, +60
	want := []SpawnPoint{
		{core.Vec2{X: 480, Y: 180}, scene.EdgeRight},
		{core.Vec2{X: 480, Y: 240}, scene.EdgeRight},
		{core.Vec2{X: 480, Y: 300}, scene.EdgeRight},
		{core.Vec2{X: 180, Y: 480}, scene.EdgeTop},
		{core.Vec2{X: 240, Y: 480}, scene.EdgeTop},
		{core.Vec2{X: 300, Y: 480}, scene.EdgeTop},
		{core.Vec2{X: 0, Y: 180}, scene.EdgeLeft},
		{core.Vec2{X: 0, Y: 240}, scene.EdgeLeft},
		{core.Vec2{X: 0, Y: 300}, scene.EdgeLeft},
		{core.Vec2{X: 180, Y: 0}, scene.EdgeBottom},
		{core.Vec2{X: 240, Y: 0}, scene.EdgeBottom},
		{core.Vec2{X: 300, Y: 0}, scene.EdgeBottom},
	}
	assert.Equal(t, want, points)
}

func TestSpawnPointsNonSquareFrame(t *testing.T) {
	for _, p := range SpawnPoints(320, 568, 60) {
		switch p.Edge {
		case scene.EdgeRight:
			assert.Equal(t, 320.0, p.Pos.X)
		case scene.EdgeTop:
			assert.Equal(t, 568.0, p.Pos.Y)
		case scene.EdgeLeft:
			assert.Equal(t, 0.0, p.Pos.X)
		case scene.EdgeBottom:
			assert.Equal(t, 0.0, p.Pos.Y)
		}
	}
}

func TestEnemyCrossesToOppositeEdge(t *testing.T) {
	tests := []struct {
		point int
		exit  core.Vec2
		dir   scene.Direction
	}{
		{0, core.Vec2{X: -30, Y: 180}, scene.DirLeft},
		{4, core.Vec2{X: 240, Y: -30}, scene.DirDown},
		{8, core.Vec2{X: 510, Y: 300}, scene.DirRight},
		{10, core.Vec2{X: 240, Y: 510}, scene.DirUp},
	}

	for _, tt := range tests {
		s := NewSpawner(1, 480, 480, 60, 40, 30)
		p := s.Points()[tt.point]
		e := s.SpawnAt(p, 60)

		assert.Equal(t, tt.dir, e.Dir, "spawned on %s", p.Edge)
		assert.Equal(t, p.Pos, e.Box.Center)

		var exited []*Enemy
		for i := 0; i < 60; i++ {
			exited = s.Step()
			if i < 59 {
				require.Empty(t, exited, "enemy from %s left early at tick %d", p.Edge, i+1)
			}
		}
		require.Len(t, exited, 1)
		assert.InDelta(t, tt.exit.X, exited[0].Box.Center.X, 1e-9)
		assert.InDelta(t, tt.exit.Y, exited[0].Box.Center.Y, 1e-9)
		assert.Zero(t, s.Len(), "finished enemy should be removed")
	}
}

func TestSpawnerRegistry(t *testing.T) {
	s := NewSpawner(7, 480, 480, 60, 40, 30)
	a := s.Spawn(60)
	b := s.Spawn(90)

	assert.Equal(t, 2, s.Len())
	assert.NotEqual(t, a.ID, b.ID)

	got, ok := liveEnemy(s, b.ID)
	require.True(t, ok)
	assert.Same(t, b, got)

	enemies := s.Enemies()
	require.Len(t, enemies, 2)
	assert.Less(t, enemies[0].ID, enemies[1].ID)

	s.Reset(7)
	assert.Zero(t, s.Len())
	_, ok = liveEnemy(s, a.ID)
	assert.False(t, ok)
}

func TestSpawnUsesEveryPoint(t *testing.T) {
	s := NewSpawner(42, 480, 480, 60, 40, 30)
	seen := map[core.Vec2]bool{}
	for i := 0; i < 500; i++ {
		seen[s.Spawn(1).Box.Center] = true
		s.Step()
	}
	assert.Len(t, seen, 12)
}

func TestEnemyName(t *testing.T) {
	assert.Equal(t, "enemy-0", (&Enemy{}).Name())
	assert.Equal(t, "enemy-1024", (&Enemy{ID: 1024}).Name())
}

func liveEnemy(s *Spawner, id ActorID) (*Enemy, bool) {
	for _, e := range s.Enemies() {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}
