package manager

import (
	"time"

	"gridsnake/game/types"

	"github.com/google/uuid"
)

// SessionStats is a snapshot of one run of the program. It lives in memory
// only and is gone when the window closes.
type SessionStats struct {
	SessionID   string
	StartTime   time.Time
	Ticks       int
	FoodEaten   int
	WallResets  int
	SelfResets  int
	Length      int
	BestLength  int
	LastCollide types.CollisionType
}

type StateManager struct {
	stats SessionStats
}

func NewStateManager(startTime time.Time) *StateManager {
	return &StateManager{
		stats: SessionStats{
			SessionID:  uuid.New().String(),
			StartTime:  startTime,
			Length:     1,
			BestLength: 1,
		},
	}
}

func (sm *StateManager) RecordTick() {
	sm.stats.Ticks++
}

func (sm *StateManager) RecordFood(length int) {
	sm.stats.FoodEaten++
	sm.UpdateLength(length)
}

func (sm *StateManager) RecordReset(cause types.CollisionType) {
	switch cause {
	case types.WallCollision:
		sm.stats.WallResets++
	case types.SelfCollision:
		sm.stats.SelfResets++
	default:
		return
	}
	sm.stats.LastCollide = cause
	sm.stats.Length = 1
}

func (sm *StateManager) UpdateLength(length int) {
	sm.stats.Length = length
	if length > sm.stats.BestLength {
		sm.stats.BestLength = length
	}
}

func (sm *StateManager) GetSessionID() string {
	return sm.stats.SessionID
}

func (sm *StateManager) GetStats() SessionStats {
	return sm.stats
}

// Resets is the total number of respawns regardless of cause
func (s SessionStats) Resets() int {
	return s.WallResets + s.SelfResets
}
