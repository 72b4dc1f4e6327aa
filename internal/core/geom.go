// Package core provides fundamental types and utilities for the snake platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is an integer cell coordinate on a grid.
type Point struct {
	X, Y int
}

// Add returns the point translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a fixed-size toroidal coordinate space.
// Every position produced by Wrap satisfies 0 <= X < W and 0 <= Y < H.
type Grid struct {
	W, H int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(w, h int) Grid {
	return Grid{W: w, H: h}
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.W * g.H
}

// Contains reports whether p lies inside the grid bounds.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// Wrap moves p by (dx, dy), wrapping around the grid edges.
func (g Grid) Wrap(p Point, dx, dy int) Point {
	return Point{X: mod(p.X+dx, g.W), Y: mod(p.Y+dy, g.H)}
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Point {
	return Point{X: g.W / 2, Y: g.H / 2}
}

// mod is the mathematical modulo: the result always has the sign of m.
func mod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// Rect represents an axis-aligned box on the screen.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

