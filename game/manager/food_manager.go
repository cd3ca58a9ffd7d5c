package manager

import (
	"errors"

	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// ErrGridFull is returned when the snake covers every cell and no apple
// can be placed.
var ErrGridFull = errors.New("no free cell left for an apple")

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// PlaceApple draws uniform random cells until one is off the snake.
// It fails fast with ErrGridFull rather than sampling forever.
func (fm *FoodManager) PlaceApple(snake *entity.Snake) (types.Cell, error) {
	if fm.collisionMgr.FreeCells(snake) == 0 {
		return types.Cell{}, ErrGridFull
	}

	for {
		apple := types.Cell{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if !fm.collisionMgr.Occupies(apple, snake) {
			return apple, nil
		}
	}
}
