package sushineko

import (
	"math/rand"
	"strconv"

	"github.com/tapcade/arcade/internal/config"
	"github.com/tapcade/arcade/internal/core"
	"github.com/tapcade/arcade/internal/scene"
)

// Piece is one sushi roll of the tower. Side is where its chopsticks stick
// out, if anywhere.
type Piece struct {
	ID   int
	Side scene.Side
	Pos  core.Vec2
	Z    int
	Tint core.Color
}

// Name returns the effect target name of the piece.
func (p *Piece) Name() string {
	return "piece-" + strconv.Itoa(p.ID)
}

// Tower is the stack of pieces above the base. Pieces[0] sits right above
// the base and is the one the character punches.
type Tower struct {
	Pieces []*Piece
	base   Piece
	cfg    config.SushiTower
	rng    *rand.Rand
	nextID int
}

// NewTower creates an empty tower on top of base.
func NewTower(base core.Vec2, baseZ int, cfg config.SushiTower, seed int64) *Tower {
	return &Tower{
		base: Piece{Pos: base, Z: baseZ},
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Len returns the number of pieces.
func (t *Tower) Len() int {
	return len(t.Pieces)
}

// Sides returns piece sides bottom to top.
func (t *Tower) Sides() []scene.Side {
	sides := make([]scene.Side, len(t.Pieces))
	for i, p := range t.Pieces {
		sides[i] = p.Side
	}
	return sides
}

// First returns the piece right above the base.
func (t *Tower) First() (*Piece, bool) {
	if len(t.Pieces) == 0 {
		return nil, false
	}
	return t.Pieces[0], true
}

func (t *Tower) last() *Piece {
	if len(t.Pieces) == 0 {
		return &t.base
	}
	return t.Pieces[len(t.Pieces)-1]
}

// AddPiece stacks a piece one spacing above the current top.
func (t *Tower) AddPiece(side scene.Side) *Piece {
	last := t.last()
	t.nextID++
	p := &Piece{
		ID:   t.nextID,
		Side: side,
		Pos:  core.Vec2{X: last.Pos.X, Y: last.Pos.Y + t.cfg.PieceSpacing},
		Z:    last.Z + 1,
		Tint: core.ColorWhite,
	}
	t.Pieces = append(t.Pieces, p)
	return p
}

// AddRandomPieces stacks n random pieces. A piece after an empty one always
// has chopsticks, so two empty pieces never touch.
func (t *Tower) AddRandomPieces(n int) {
	for i := 0; i < n; i++ {
		t.AddPiece(t.nextSide())
	}
}

func (t *Tower) nextSide() scene.Side {
	if t.last().Side == scene.SideNone {
		if t.rng.Intn(2) == 0 {
			return scene.SideRight
		}
		return scene.SideLeft
	}

	w := t.cfg.Weights
	total := w.Total()
	if total <= 0 {
		return scene.SideNone
	}
	switch r := t.rng.Intn(total); {
	case r < w.Right:
		return scene.SideRight
	case r < w.Right+w.Left:
		return scene.SideLeft
	default:
		return scene.SideNone
	}
}

// RemoveFirst pops the piece above the base.
func (t *Tower) RemoveFirst() (*Piece, bool) {
	p, ok := t.First()
	if !ok {
		return nil, false
	}
	t.Pieces[0] = nil
	t.Pieces = t.Pieces[1:]
	return p, true
}

// SlotY returns the resting height of the n-th piece.
func (t *Tower) SlotY(n int) float64 {
	return t.cfg.FirstSlotY + float64(n)*t.cfg.PieceSpacing
}

// MoveDown eases every piece toward its slot by the settle rate.
func (t *Tower) MoveDown() {
	for i, p := range t.Pieces {
		target := t.SlotY(i)
		p.Pos.Y -= (p.Pos.Y - target) * t.cfg.SettleRate
	}
}

// Drop shifts the whole tower down by dy.
func (t *Tower) Drop(dy float64) {
	for _, p := range t.Pieces {
		p.Pos.Y -= dy
	}
}
