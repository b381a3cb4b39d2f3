package ui

import (
	"gridsnake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input drains raylib's key queue once per tick. raylib refreshes that
// queue inside EndDrawing, so a frame must be presented between polls.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Poll() []game.Event {
	if rl.WindowShouldClose() {
		return []game.Event{{Kind: game.QuitRequested}}
	}

	var events []game.Event
	for code := rl.GetKeyPressed(); code != 0; code = rl.GetKeyPressed() {
		events = append(events, game.Event{Kind: game.KeyPressed, Key: mapKey(code)})
	}
	return events
}

func mapKey(code int32) game.Key {
	switch code {
	case rl.KeyUp:
		return game.KeyUp
	case rl.KeyDown:
		return game.KeyDown
	case rl.KeyLeft:
		return game.KeyLeft
	case rl.KeyRight:
		return game.KeyRight
	}
	return game.KeyOther
}
