// Package config holds the fixed settings of the game. Nothing here is read
// from flags or files; the values are chosen at build time.
package config

import (
	"errors"
	"fmt"
	"time"

	"gridsnake/game/types"
)

const (
	ScreenWidth    = 640
	ScreenHeight   = 480
	CellSize       = 20
	TicksPerSecond = 10
	WindowTitle    = "Snake"
)

var (
	BackgroundColor = types.Color{R: 0, G: 0, B: 0}
	BorderColor     = types.Color{R: 93, G: 216, B: 228}
	FoodColor       = types.Color{R: 255, G: 0, B: 0}
	SnakeColor      = types.Color{R: 0, G: 255, B: 0}
)

var ErrInvalidConfig = errors.New("invalid config")

// Palette groups the four colors used when drawing a frame
type Palette struct {
	Background types.Color
	Border     types.Color
	Food       types.Color
	Snake      types.Color
}

type Config struct {
	Board    types.Board
	TickRate int
	Palette  Palette
	Title    string
}

// Default returns the stock 640x480 board with 20px cells at 10 ticks per second
func Default() Config {
	return Config{
		Board: types.Board{
			Width:    ScreenWidth,
			Height:   ScreenHeight,
			CellSize: CellSize,
		},
		TickRate: TicksPerSecond,
		Palette: Palette{
			Background: BackgroundColor,
			Border:     BorderColor,
			Food:       FoodColor,
			Snake:      SnakeColor,
		},
		Title: WindowTitle,
	}
}

// TickInterval is the minimum time between two ticks
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TickRate)
}

func (c Config) Validate() error {
	b := c.Board
	if b.CellSize <= 0 {
		return fmt.Errorf("cell size %d: %w", b.CellSize, ErrInvalidConfig)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("board %dx%d: %w", b.Width, b.Height, ErrInvalidConfig)
	}
	if b.Width%b.CellSize != 0 || b.Height%b.CellSize != 0 {
		return fmt.Errorf("board %dx%d is not a multiple of cell size %d: %w",
			b.Width, b.Height, b.CellSize, ErrInvalidConfig)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate %d: %w", c.TickRate, ErrInvalidConfig)
	}
	return nil
}
