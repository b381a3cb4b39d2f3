package types

import "fmt"

// Point is a top-left pixel position on the board, always aligned to the cell size
type Point struct {
	X, Y int
}

// Add moves the point one cell in direction d
func (p Point) Add(d Direction, cell int) Point {
	return Point{X: p.X + d.X*cell, Y: p.Y + d.Y*cell}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a unit vector on the grid. The zero value means "no direction".
type Direction struct {
	X, Y int
}

var (
	NoDirection = Direction{}
	Up          = Direction{X: 0, Y: -1}
	Down        = Direction{X: 0, Y: 1}
	Left        = Direction{X: -1, Y: 0}
	Right       = Direction{X: 1, Y: 0}
)

func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

func (d Direction) IsZero() bool {
	return d == NoDirection
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case NoDirection:
		return "none"
	}
	return fmt.Sprintf("dir(%d,%d)", d.X, d.Y)
}

// Board describes the playfield in pixels and the size of one grid cell
type Board struct {
	Width    int
	Height   int
	CellSize int
}

// Cols returns the number of cells across
func (b Board) Cols() int {
	return b.Width / b.CellSize
}

// Rows returns the number of cells down
func (b Board) Rows() int {
	return b.Height / b.CellSize
}

// Center is where a snake spawns after a reset, snapped down to the grid
func (b Board) Center() Point {
	return b.CellAt(b.Cols()/2, b.Rows()/2)
}

func (b Board) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// CellAt converts grid indices into a pixel position
func (b Board) CellAt(col, row int) Point {
	return Point{X: col * b.CellSize, Y: row * b.CellSize}
}

type Color struct {
	R, G, B uint8
}

// Cell is one filled square handed to the renderer
type Cell struct {
	Pos  Point
	Fill Color
}

// Drawable is anything that can describe itself as a list of cells
type Drawable interface {
	Cells() []Cell
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	}
	return fmt.Sprintf("collision(%d)", int(c))
}
