package main

import (
	"log"
	"time"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/ui"
)

func main() {
	log.SetPrefix("snake: ")

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ui.OpenWindow(cfg)
	defer ui.CloseWindow()

	g := game.New(cfg, uint64(time.Now().UnixNano()))
	log.Printf("session %s: %dx%d cells of %dpx, %d ticks/s",
		g.SessionID(), cfg.Board.Cols(), cfg.Board.Rows(), cfg.Board.CellSize, cfg.TickRate)

	stats := g.Run(ui.NewInput(), ui.NewRenderer(), game.NewFixedClock(cfg.TickInterval()))

	log.Printf("session %s ended after %v: %d ticks, %d eaten, best length %d, %d wall / %d self resets",
		stats.SessionID, time.Since(stats.StartTime).Round(time.Second),
		stats.Ticks, stats.FoodEaten, stats.BestLength, stats.WallResets, stats.SelfResets)
}
