package game

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/slices"
)

type EventKind int

const (
	KeyPressed EventKind = iota
	QuitRequested
)

type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

type Event struct {
	Kind EventKind
	Key  Key
}

// EventSource hands out whatever input arrived since the last call. It must
// not block.
type EventSource interface {
	Poll() []Event
}

var keyDirections = map[Key]types.Direction{
	KeyUp:    types.Up,
	KeyDown:  types.Down,
	KeyLeft:  types.Left,
	KeyRight: types.Right,
}

// HandleEvents applies one tick worth of input to the snake and reports
// whether the player asked to quit. A quit anywhere in the batch wins and
// leaves the snake untouched.
func HandleEvents(events []Event, snake *entity.Snake) bool {
	if slices.IndexFunc(events, func(e Event) bool { return e.Kind == QuitRequested }) >= 0 {
		return true
	}

	for _, e := range events {
		if e.Kind != KeyPressed {
			continue
		}
		dir, ok := keyDirections[e.Key]
		if !ok {
			continue
		}
		// Compare against the current direction, not the buffered one, so
		// two quick turns can't add up to a reversal.
		if dir == snake.Direction.Opposite() {
			continue
		}
		snake.SetPendingDirection(dir)
	}
	return false
}
