// Package core provides fundamental types and utilities for the simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
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

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Box is an axis-aligned bounding box in world units.
// Collision detection between entities is done on boxes.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// BoxAt returns a box of the given size centered on c.
func BoxAt(c Vec, w, h float64) Box {
	return Box{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() Vec {
	return Vec{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Translate returns the box moved by d.
func (b Box) Translate(d Vec) Box {
	b.X += d.X
	b.Y += d.Y
	return b
}

// Intersects returns true if this box overlaps with another.
// Touching edges do not count as an overlap.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Bounds is the rectangular play area, anchored at the origin.
type Bounds struct {
	W, H float64
}

// Check reports per axis whether the box lies within the play area.
// Being exactly on an edge counts as inside.
func (a Bounds) Check(b Box) (horizontal, vertical bool) {
	horizontal = b.X >= 0 && b.Right() <= a.W
	vertical = b.Y >= 0 && b.Bottom() <= a.H
	return horizontal, vertical
}

// Contains returns true if the whole box is within the play area.
func (a Bounds) Contains(b Box) bool {
	h, v := a.Check(b)
	return h && v
}

// Overlaps returns true if any part of the box is within the play area.
// A box for which Overlaps is false is fully outside.
func (a Bounds) Overlaps(b Box) bool {
	return b.Intersects(Box{W: a.W, H: a.H})
}

// Orientation returns the unit vector pointing from org to dst.
// ok is false when both points coincide; the returned vector is then zero
// and callers must pick their own fallback.
func Orientation(org, dst Vec) (dir Vec, ok bool) {
	d := dst.Sub(org)
	norm := d.Len()
	if norm == 0 {
		return Vec{}, false
	}
	return d.Scale(1 / norm), true
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
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
