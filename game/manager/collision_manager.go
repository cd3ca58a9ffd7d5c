package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Occupies reports whether any segment of snake sits on pos.
// A nil or empty snake occupies nothing.
func (cm *CollisionManager) Occupies(pos types.Cell, snake *entity.Snake) bool {
	found := false
	snake.Each(func(c types.Cell) bool {
		found = c == pos
		return !found
	})
	return found
}

// CheckCollision classifies the snake's head after a step.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	head := snake.Head()
	if !cm.grid.Contains(head) {
		return WallCollision
	}

	// Skip the head itself, then look for it in the rest of the body
	first := true
	hit := false
	snake.Each(func(c types.Cell) bool {
		if first {
			first = false
			return true
		}
		hit = c == head
		return !hit
	})
	if hit {
		return SelfCollision
	}
	return NoCollision
}

// FreeCells counts grid cells not covered by the snake. Segments stacked
// on the same cell after a Grow count once.
func (cm *CollisionManager) FreeCells(snake *entity.Snake) int {
	taken := make([]bool, cm.grid.Cells())
	free := len(taken)
	snake.Each(func(c types.Cell) bool {
		if !cm.grid.Contains(c) {
			return true
		}
		idx := cm.grid.Index(c)
		if !taken[idx] {
			taken[idx] = true
			free--
		}
		return true
	})
	return free
}
