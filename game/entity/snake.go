package entity

import (
	"gridsnake/game/types"

	"golang.org/x/exp/slices"
)

const InitialLength = 1

type Snake struct {
	Positions []types.Point // head first
	Length    int
	Direction types.Direction
	Pending   types.Direction
	Color     types.Color
	board     types.Board
}

func NewSnake(board types.Board, color types.Color) *Snake {
	s := &Snake{
		Color: color,
		board: board,
	}
	s.Reset()
	return s
}

// Reset puts the snake back to a single cell in the middle of the board, moving right
func (s *Snake) Reset() {
	s.Length = InitialLength
	s.Positions = []types.Point{s.board.Center()}
	s.Direction = types.Right
	s.Pending = types.NoDirection
}

func (s *Snake) GetHead() types.Point {
	return s.Positions[0]
}

// SetPendingDirection buffers dir for the next tick. A 180° turn against
// the current direction is dropped.
func (s *Snake) SetPendingDirection(dir types.Direction) {
	if dir.IsZero() || dir == s.Direction.Opposite() {
		return
	}
	s.Pending = dir
}

func (s *Snake) ApplyPendingDirection() {
	if s.Pending.IsZero() {
		return
	}
	s.Direction = s.Pending
	s.Pending = types.NoDirection
}

// Advance moves the head one cell forward. Leaving the board resets the
// snake and reports a WallCollision; the returned point is then the
// respawn position.
func (s *Snake) Advance() (types.Point, types.CollisionType) {
	newHead := s.GetHead().Add(s.Direction, s.board.CellSize)
	if !s.board.Contains(newHead) {
		s.Reset()
		return s.GetHead(), types.WallCollision
	}

	s.Move(newHead)
	if len(s.Positions) > s.Length {
		s.RemoveTail()
	}
	return newHead, types.NoCollision
}

func (s *Snake) Move(newHead types.Point) {
	s.Positions = slices.Insert(s.Positions, 0, newHead)
}

func (s *Snake) RemoveTail() {
	if len(s.Positions) > 0 {
		s.Positions = s.Positions[:len(s.Positions)-1]
	}
}

// CheckSelfCollision reports whether the head overlaps any other segment
func (s *Snake) CheckSelfCollision() bool {
	if len(s.Positions) < 2 {
		return false
	}
	return slices.Contains(s.Positions[1:], s.GetHead())
}

// Grow raises the target length; the body catches up over the next moves
func (s *Snake) Grow() {
	s.Length++
}

// Cells lists the body from the neck to the tail, then the head, so the
// head is drawn last.
func (s *Snake) Cells() []types.Cell {
	cells := make([]types.Cell, 0, len(s.Positions))
	for _, p := range s.Positions[1:] {
		cells = append(cells, types.Cell{Pos: p, Fill: s.Color})
	}
	return append(cells, types.Cell{Pos: s.GetHead(), Fill: s.Color})
}
