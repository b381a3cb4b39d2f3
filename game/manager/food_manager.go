package manager

import (
	"gridsnake/game/entity"
)

type FoodManager struct {
	food         *entity.Food
	collisionMgr *CollisionManager
}

func NewFoodManager(food *entity.Food, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		food:         food,
		collisionMgr: collisionMgr,
	}
}

// Update feeds the snake when its head sits on the food, then moves the
// food somewhere else. The new spot is not checked against the body.
func (fm *FoodManager) Update(snake *entity.Snake) bool {
	if !fm.collisionMgr.IsFoodCollision(snake.GetHead(), fm.food) {
		return false
	}
	snake.Grow()
	fm.food.RandomizePosition()
	return true
}

func (fm *FoodManager) GetFood() *entity.Food {
	return fm.food
}
