package config

import (
	"errors"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}
	if cols, rows := cfg.Board.Cols(), cfg.Board.Rows(); cols != 32 || rows != 24 {
		t.Errorf("Expected 32x24 grid, got %dx%d", cols, rows)
	}
	if got := cfg.TickInterval(); got != 100*time.Millisecond {
		t.Errorf("Expected 100ms tick, got %v", got)
	}
	if c := cfg.Board.Center(); c.X != 320 || c.Y != 240 {
		t.Errorf("Expected center (320,240), got %v", c)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"Zero cell", func(c *Config) { c.Board.CellSize = 0 }},
		{"Negative width", func(c *Config) { c.Board.Width = -640 }},
		{"Misaligned height", func(c *Config) { c.Board.Height = 470 }},
		{"Zero tick rate", func(c *Config) { c.TickRate = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
