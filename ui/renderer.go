package ui

import (
	"gridsnake/config"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OpenWindow creates the fixed-size game window. Callers must pair it with CloseWindow.
func OpenWindow(cfg config.Config) {
	rl.InitWindow(int32(cfg.Board.Width), int32(cfg.Board.Height), cfg.Title)
}

func CloseWindow() {
	rl.CloseWindow()
}

// Renderer draws frames into the raylib window
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Clear(bg types.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(bg))
}

// DrawCell fills one cell and outlines it with a 1px border
func (r *Renderer) DrawCell(pos types.Point, size int, fill, border types.Color) {
	x, y, s := int32(pos.X), int32(pos.Y), int32(size)
	rl.DrawRectangle(x, y, s, s, toColor(fill))
	rl.DrawRectangleLines(x, y, s, s, toColor(border))
}

func (r *Renderer) Present() {
	rl.EndDrawing()
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
