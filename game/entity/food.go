package entity

import (
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// Food is the single apple on the board. It may land on the snake; nothing
// checks for that.
type Food struct {
	Color    types.Color
	position types.Point
	board    types.Board
	rng      *rand.Rand
}

func NewFood(board types.Board, color types.Color, rng *rand.Rand) *Food {
	f := &Food{
		Color: color,
		board: board,
		rng:   rng,
	}
	f.RandomizePosition()
	return f
}

// RandomizePosition picks a uniformly random cell on the board
func (f *Food) RandomizePosition() {
	f.position = f.board.CellAt(
		f.rng.Intn(f.board.Cols()),
		f.rng.Intn(f.board.Rows()),
	)
}

func (f *Food) Position() types.Point {
	return f.position
}

func (f *Food) Cells() []types.Cell {
	return []types.Cell{{Pos: f.position, Fill: f.Color}}
}
