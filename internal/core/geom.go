// Package core provides fundamental types and utilities for the Neon Pulse platform.
// It contains no terminal or window dependencies to keep game logic pure and testable.
package core

import (
	"cmp"
	"math"
)

// Vec2 is a 2D vector in world units (pixels).
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns the vector multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Edges that exactly touch do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.Right() <= other.X || other.Right() <= r.X {
		return false
	}
	if r.Bottom() <= other.Y || other.Bottom() <= r.Y {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Cells converts the rectangle to integer cell bounds (x, y, w, h) after
// dividing by the given cell size. Partially covered cells are included.
func (r Rect) Cells(cellW, cellH float64) (x, y, w, h int) {
	x0 := int(math.Floor(r.X / cellW))
	y0 := int(math.Floor(r.Y / cellH))
	x1 := int(math.Ceil(r.Right() / cellW))
	y1 := int(math.Ceil(r.Bottom() / cellH))
	return x0, y0, max(x1-x0, 1), max(y1-y0, 1)
}

// Clamp restricts a value to be within [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
