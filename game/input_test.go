package game

import (
	"testing"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

var testBoard = types.Board{Width: 640, Height: 480, CellSize: 20}

func press(k Key) Event {
	return Event{Kind: KeyPressed, Key: k}
}

func TestHandleEvents(t *testing.T) {
	tests := []struct {
		name        string
		current     types.Direction
		events      []Event
		wantQuit    bool
		wantPending types.Direction
	}{
		{"No events", types.Right, nil, false, types.NoDirection},
		{"Turn up", types.Right, []Event{press(KeyUp)}, false, types.Up},
		{"Reverse dropped", types.Right, []Event{press(KeyLeft)}, false, types.NoDirection},
		{"Unknown key ignored", types.Right, []Event{press(KeyOther)}, false, types.NoDirection},
		{"Last valid key wins", types.Right, []Event{press(KeyUp), press(KeyDown)}, false, types.Down},
		{"Double turn cannot reverse", types.Right, []Event{press(KeyUp), press(KeyLeft)}, false, types.Up},
		{"Quit", types.Right, []Event{{Kind: QuitRequested}}, true, types.NoDirection},
		{"Quit after key", types.Up, []Event{press(KeyLeft), {Kind: QuitRequested}}, true, types.NoDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := entity.NewSnake(testBoard, types.Color{})
			s.Direction = tt.current

			quit := HandleEvents(tt.events, s)

			if quit != tt.wantQuit {
				t.Errorf("Expected quit %v, got %v", tt.wantQuit, quit)
			}
			if s.Pending != tt.wantPending {
				t.Errorf("Expected pending %v, got %v", tt.wantPending, s.Pending)
			}
			if s.Direction != tt.current {
				t.Errorf("Expected direction to stay %v, got %v", tt.current, s.Direction)
			}
		})
	}
}
