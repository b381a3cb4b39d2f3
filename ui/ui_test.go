package ui

import (
	"testing"

	"gridsnake/game"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		code int32
		want game.Key
	}{
		{"Up arrow", rl.KeyUp, game.KeyUp},
		{"Down arrow", rl.KeyDown, game.KeyDown},
		{"Left arrow", rl.KeyLeft, game.KeyLeft},
		{"Right arrow", rl.KeyRight, game.KeyRight},
		{"Letter", rl.KeyW, game.KeyOther},
		{"Space", rl.KeySpace, game.KeyOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapKey(tt.code); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestToColorIsOpaque(t *testing.T) {
	got := toColor(types.Color{R: 93, G: 216, B: 228})
	want := rl.Color{R: 93, G: 216, B: 228, A: 255}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
