package game

import (
	"errors"
	"fmt"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
)

// Config holds the board size, starting length and the apple RNG seed.
type Config struct {
	GridSize   int
	InitLength int
	Seed       uint64
}

// DefaultConfig returns the standard 25x25 board with a 4-segment snake.
func DefaultConfig() Config {
	return Config{
		GridSize:   types.GridSize,
		InitLength: types.InitLength,
		Seed:       uint64(time.Now().UnixNano()),
	}
}

func (c Config) validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("grid size must be positive, got %d", c.GridSize)
	}
	if c.InitLength <= 0 {
		return fmt.Errorf("initial length must be positive, got %d", c.InitLength)
	}
	// The row starts at the centre and extends left to x = 0 at most.
	if c.InitLength > c.GridSize/2+1 {
		return fmt.Errorf("initial length %d does not fit a %dx%d grid", c.InitLength, c.GridSize, c.GridSize)
	}
	return nil
}

// StepResult tells the caller what a single step changed.
type StepResult struct {
	Moved      bool
	AteApple   bool
	PhaseEnded bool
}

type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time

	snake        *entity.Snake
	apple        types.Cell
	inputMgr     *manager.InputManager
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

func NewGame(cfg Config) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	grid := types.NewSquareGrid(cfg.GridSize)
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		UUID:         uuid.New().String(),
		Grid:         grid,
		StartTime:    time.Now(),
		snake:        entity.NewSnake(grid, cfg.InitLength),
		inputMgr:     manager.NewInputManager(),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, cfg.Seed),
		stateMgr:     manager.NewStateManager(cfg.InitLength),
	}

	apple, err := g.foodMgr.PlaceApple(g.snake)
	if err != nil {
		return nil, fmt.Errorf("placing first apple: %w", err)
	}
	g.apple = apple

	return g, nil
}

// Step runs one movement tick: consume input, move, then resolve
// collisions and apples. It does nothing once the game has ended.
func (g *Game) Step() StepResult {
	var res StepResult
	if g.stateMgr.Phase() != manager.Playing {
		return res
	}

	g.inputMgr.Arbitrate(g.snake)
	g.snake.Advance(g.snake.Direction)
	g.snake.PrevDirection = g.snake.Direction
	g.stateMgr.RecordStep()
	res.Moved = true

	if collision := g.collisionMgr.CheckCollision(g.snake); collision != manager.NoCollision {
		g.stateMgr.Lose(collision)
		res.PhaseEnded = true
		return res
	}

	if g.snake.Head() != g.apple {
		return res
	}

	g.snake.Grow()
	g.stateMgr.RecordApple(g.snake.Len())
	res.AteApple = true

	apple, err := g.foodMgr.PlaceApple(g.snake)
	if errors.Is(err, manager.ErrGridFull) {
		g.stateMgr.Win()
		res.PhaseEnded = true
		return res
	}
	g.apple = apple
	return res
}

// Press queues a direction for the next step.
func (g *Game) Press(dir types.Direction) {
	g.inputMgr.Press(dir)
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetApple() types.Cell {
	return g.apple
}

// HasApple reports whether an apple is on the board. A won game has none.
func (g *Game) HasApple() bool {
	return g.stateMgr.Phase() != manager.Won
}

func (g *Game) GetState() *manager.StateManager {
	return g.stateMgr
}

func (g *Game) Phase() manager.Phase {
	return g.stateMgr.Phase()
}

// ElapsedTime returns how long the game has been running.
func (g *Game) ElapsedTime() time.Duration {
	return time.Since(g.StartTime)
}
