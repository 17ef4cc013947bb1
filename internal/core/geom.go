// Package core provides fundamental types and utilities for the simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// physics and game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector with component-wise arithmetic.
// Used for velocities and planar sizes.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the Euclidean length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector pointing in the same direction.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Vec3 is a 3D vector. Positions and sizes are carried as Vec3 so entity
// transforms stay compatible with a 3D presentation layer; the simulation
// itself only ever reads X and Y.
type Vec3 struct {
	X, Y, Z float64
}

// XY returns the planar part of the vector.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// Side identifies which side of a box was struck during an AABB collision.
// The variant set is closed: resolvers switch over it exhaustively.
type Side int

const (
	SideLeft   Side = iota // struck the box's left face
	SideRight              // struck the box's right face
	SideTop                // struck the box's top face
	SideBottom             // struck the box's bottom face
	SideInside             // fully embedded, no dominant axis
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideInside:
		return "inside"
	default:
		return "unknown"
	}
}

// Collide performs an axis-aligned bounding-box overlap test between box A
// and box B, each given by center position and full size. It reports whether
// the boxes intersect and, if so, which side of B was struck by A.
//
// The side is classified by the axis of minimum penetration depth: the axis
// on which the boxes overlap least is the dominant collision axis, and the
// sign of the center-to-center delta on that axis picks left/right or
// top/bottom. SideInside is returned when A sits entirely within B's extents
// on both axes, where no side is meaningful.
//
// This is a penetration test, not a swept check: a box moving fast enough to
// jump over another in one step is not detected. Y grows upward.
func Collide(aPos, aSize, bPos, bSize Vec2) (Side, bool) {
	aMin := aPos.Sub(aSize.Scale(0.5))
	aMax := aPos.Add(aSize.Scale(0.5))
	bMin := bPos.Sub(bSize.Scale(0.5))
	bMax := bPos.Add(bSize.Scale(0.5))

	if aMin.X >= bMax.X || aMax.X <= bMin.X || aMin.Y >= bMax.Y || aMax.Y <= bMin.Y {
		return SideInside, false
	}

	// Penetration depth per axis. Embedded axes get infinite depth so the
	// other axis always wins the tie-break.
	xSide, xDepth := SideInside, math.Inf(1)
	switch {
	case aMin.X < bMin.X && aMax.X < bMax.X:
		xSide, xDepth = SideLeft, aMax.X-bMin.X
	case aMin.X > bMin.X && aMax.X > bMax.X:
		xSide, xDepth = SideRight, bMax.X-aMin.X
	}

	ySide, yDepth := SideInside, math.Inf(1)
	switch {
	case aMin.Y > bMin.Y && aMax.Y > bMax.Y:
		ySide, yDepth = SideTop, bMax.Y-aMin.Y
	case aMin.Y < bMin.Y && aMax.Y < bMax.Y:
		ySide, yDepth = SideBottom, aMax.Y-bMin.Y
	}

	if yDepth < xDepth {
		return ySide, true
	}
	return xSide, true
}

// Rect represents an axis-aligned cell rectangle used by the screen buffer.
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
