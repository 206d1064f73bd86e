// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea or ebiten) to
// keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Vec2 is a point or offset in scene units. Scenes use a y-up coordinate
// system; conversion to screen rows happens at render time.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Box is a center-anchored axis-aligned box in scene units.
type Box struct {
	Center Vec2
	W, H   float64
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	dx := b.Center.X - o.Center.X
	dy := b.Center.Y - o.Center.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx < (b.W+o.W)/2 && dy < (b.H+o.H)/2
}

// Viewport maps a y-up scene of SceneW x SceneH units onto a screen area of
// W x H cells whose top-left corner is (X, Y).
type Viewport struct {
	X, Y           int
	W, H           int
	SceneW, SceneH float64
	OriginX        float64 // Scene x shown at the left edge
	OriginY        float64 // Scene y shown at the bottom edge
}

// ToCell converts a scene point to a screen cell.
func (v Viewport) ToCell(p Vec2) (int, int) {
	if v.SceneW <= 0 || v.SceneH <= 0 {
		return v.X, v.Y
	}
	cx := v.X + int((p.X-v.OriginX)/v.SceneW*float64(v.W))
	cy := v.Y + v.H - 1 - int((p.Y-v.OriginY)/v.SceneH*float64(v.H))
	return cx, cy
}

// ToRect converts a scene box to a screen rectangle at least one cell large.
func (v Viewport) ToRect(b Box) Rect {
	left := Vec2{X: b.Center.X - b.W/2, Y: b.Center.Y + b.H/2}
	x, y := v.ToCell(left)
	w := Max(1, int(b.W/v.SceneW*float64(v.W)+0.5))
	h := Max(1, int(b.H/v.SceneH*float64(v.H)+0.5))
	return NewRect(x, y, w, h)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
