package game

import (
	"log"
	"time"

	"gridsnake/config"
	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// Surface is the drawing target for one frame
type Surface interface {
	Clear(bg types.Color)
	DrawCell(pos types.Point, size int, fill, border types.Color)
	Present()
}

type TickResult int

const (
	TickMoved TickResult = iota
	TickAte
	TickReset
	TickQuit
)

func (r TickResult) String() string {
	switch r {
	case TickMoved:
		return "moved"
	case TickAte:
		return "ate"
	case TickReset:
		return "reset"
	case TickQuit:
		return "quit"
	}
	return "unknown"
}

// Game owns everything that changes during play. The loop is the only
// caller, so nothing here is locked.
type Game struct {
	Config       config.Config
	Snake        *entity.Snake
	Food         *entity.Food
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

func New(cfg config.Config, seed uint64) *Game {
	return NewWithRand(cfg, rand.New(rand.NewSource(seed)))
}

func NewWithRand(cfg config.Config, rng *rand.Rand) *Game {
	board := cfg.Board
	collisionMgr := manager.NewCollisionManager(board)
	food := entity.NewFood(board, cfg.Palette.Food, rng)

	return &Game{
		Config:       cfg,
		Snake:        entity.NewSnake(board, cfg.Palette.Snake),
		Food:         food,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(food, collisionMgr),
		stateMgr:     manager.NewStateManager(time.Now()),
	}
}

// Tick runs one step of the game with the input gathered since the last one
func (g *Game) Tick(events []Event) TickResult {
	if HandleEvents(events, g.Snake) {
		return TickQuit
	}
	g.stateMgr.RecordTick()

	g.Snake.ApplyPendingDirection()

	length := g.Snake.Length
	if _, collision := g.Snake.Advance(); collision != types.NoCollision {
		g.recordReset(collision, length)
		return TickReset
	}

	if collision := g.collisionMgr.CheckSnake(g.Snake); collision != types.NoCollision {
		g.Snake.Reset()
		g.recordReset(collision, length)
		return TickReset
	}

	if g.foodMgr.Update(g.Snake) {
		g.stateMgr.RecordFood(g.Snake.Length)
		return TickAte
	}
	return TickMoved
}

func (g *Game) recordReset(cause types.CollisionType, length int) {
	g.stateMgr.RecordReset(cause)
	log.Printf("snake reset: %s collision at length %d", cause, length)
}

// Render draws the snake and then the food, so the food stays visible
// when both share a cell.
func (g *Game) Render(surface Surface) {
	palette := g.Config.Palette
	size := g.Config.Board.CellSize

	surface.Clear(palette.Background)
	for _, d := range []types.Drawable{g.Snake, g.Food} {
		for _, c := range d.Cells() {
			surface.DrawCell(c.Pos, size, c.Fill, palette.Border)
		}
	}
	surface.Present()
}

// Run drives the game until the event source reports a quit
func (g *Game) Run(src EventSource, surface Surface, clock Clock) manager.SessionStats {
	for {
		clock.Tick()
		if g.Tick(src.Poll()) == TickQuit {
			return g.Stats()
		}
		g.Render(surface)
	}
}

func (g *Game) Stats() manager.SessionStats {
	return g.stateMgr.GetStats()
}

func (g *Game) SessionID() string {
	return g.stateMgr.GetSessionID()
}
