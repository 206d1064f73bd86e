package dodge

import (
	"math/rand"
	"sort"
	"strconv"

	"github.com/kamstrup/intmap"

	"github.com/tapcade/arcade/internal/core"
	"github.com/tapcade/arcade/internal/scene"
)

// ActorID identifies a spawned enemy.
type ActorID uint32

// SpawnPoint is a candidate spawn location together with the frame edge it
// sits on. The edge is stored, never re-derived from the coordinates.
type SpawnPoint struct {
	Pos  core.Vec2
	Edge scene.Edge
}

// SpawnPoints returns the 12 spawn candidates of a w x h frame: three per
// edge, at -offset, 0 and +offset around each edge midpoint. Order is right,
// top, left, bottom.
func SpawnPoints(w, h, offset float64) []SpawnPoint {
	points := make([]SpawnPoint, 0, 12)
	for _, edge := range []scene.Edge{scene.EdgeRight, scene.EdgeTop, scene.EdgeLeft, scene.EdgeBottom} {
		for i := -1; i <= 1; i++ {
			d := float64(i) * offset
			var p core.Vec2
			switch edge {
			case scene.EdgeRight:
				p = core.Vec2{X: w, Y: h/2 + d}
			case scene.EdgeTop:
				p = core.Vec2{X: w/2 + d, Y: h}
			case scene.EdgeLeft:
				p = core.Vec2{X: 0, Y: h/2 + d}
			case scene.EdgeBottom:
				p = core.Vec2{X: w/2 + d, Y: 0}
			}
			points = append(points, SpawnPoint{Pos: p, Edge: edge})
		}
	}
	return points
}

// Enemy is a square crossing the board along one lane.
type Enemy struct {
	ID    ActorID
	Box   core.Box
	Edge  scene.Edge
	Dir   scene.Direction
	Tint  core.Color
	mover scene.Mover
}

// Name returns the effect target name of the enemy.
func (e *Enemy) Name() string {
	return "enemy-" + strconv.Itoa(int(e.ID))
}

// Spawner creates enemies on the spawn ring and moves them across the frame.
type Spawner struct {
	points  []SpawnPoint
	rng     *rand.Rand
	enemies *intmap.Map[ActorID, *Enemy]
	nextID  ActorID
	w, h    float64
	size    float64
	margin  float64
}

// NewSpawner creates a spawner for a w x h frame.
func NewSpawner(seed int64, w, h, offset, size, margin float64) *Spawner {
	s := &Spawner{
		points: SpawnPoints(w, h, offset),
		w:      w,
		h:      h,
		size:   size,
		margin: margin,
	}
	s.Reset(seed)
	return s
}

// Reset removes every enemy and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.enemies = intmap.New[ActorID, *Enemy](16)
	s.nextID = 0
}

// Points returns the spawn ring.
func (s *Spawner) Points() []SpawnPoint {
	return s.points
}

// Spawn creates an enemy at a uniformly random spawn point that crosses the
// frame in travelTicks ticks.
func (s *Spawner) Spawn(travelTicks int) *Enemy {
	return s.SpawnAt(s.points[s.rng.Intn(len(s.points))], travelTicks)
}

// SpawnAt creates an enemy at p heading for the opposite edge.
func (s *Spawner) SpawnAt(p SpawnPoint, travelTicks int) *Enemy {
	s.nextID++
	dir := p.Edge.Inward()
	e := &Enemy{
		ID:    s.nextID,
		Box:   core.Box{Center: p.Pos, W: s.size, H: s.size},
		Edge:  p.Edge,
		Dir:   dir,
		Tint:  core.ColorBrightWhite,
		mover: scene.NewMover(p.Pos, s.exitPoint(p), travelTicks),
	}
	s.enemies.Put(e.ID, e)
	return e
}

// exitPoint returns where an enemy spawned at p leaves the scene: the
// opposite edge, margin units beyond the frame.
func (s *Spawner) exitPoint(p SpawnPoint) core.Vec2 {
	switch p.Edge {
	case scene.EdgeRight:
		return core.Vec2{X: -s.margin, Y: p.Pos.Y}
	case scene.EdgeLeft:
		return core.Vec2{X: s.w + s.margin, Y: p.Pos.Y}
	case scene.EdgeTop:
		return core.Vec2{X: p.Pos.X, Y: -s.margin}
	default:
		return core.Vec2{X: p.Pos.X, Y: s.h + s.margin}
	}
}

// Step moves every enemy one tick and removes those that finished their
// crossing. The removed enemies are returned in ID order.
func (s *Spawner) Step() []*Enemy {
	var done []*Enemy
	for _, e := range s.Enemies() {
		e.Box.Center = e.mover.Step()
		if e.mover.Done() {
			done = append(done, e)
		}
	}
	for _, e := range done {
		s.enemies.Del(e.ID)
	}
	return done
}

// Enemies returns live enemies in ID order.
func (s *Spawner) Enemies() []*Enemy {
	out := make([]*Enemy, 0, s.enemies.Len())
	s.enemies.ForEach(func(_ ActorID, e *Enemy) bool {
		out = append(out, e)
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of live enemies.
func (s *Spawner) Len() int {
	return s.enemies.Len()
}
