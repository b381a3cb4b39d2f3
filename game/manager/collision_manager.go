package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type CollisionManager struct {
	board types.Board
}

func NewCollisionManager(board types.Board) *CollisionManager {
	return &CollisionManager{
		board: board,
	}
}

// IsWallCollision checks if a position lies outside the board
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.board.Contains(pos)
}

// CheckSnake reports a self collision after the snake has moved.
// Wall hits never get here because Advance already reset the snake.
func (cm *CollisionManager) CheckSnake(snake *entity.Snake) types.CollisionType {
	if cm.IsWallCollision(snake.GetHead()) {
		return types.WallCollision
	}
	if snake.CheckSelfCollision() {
		return types.SelfCollision
	}
	return types.NoCollision
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return pos == food.Position()
}
