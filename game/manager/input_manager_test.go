package manager

import (
	"testing"

	"gridsnake/game/entity"
	"gridsnake/game/types"

	"github.com/stretchr/testify/assert"
)

func newTestSnake(prev types.Direction) *entity.Snake {
	s := entity.NewSnake(types.NewSquareGrid(25), 4)
	s.Direction = prev
	s.PrevDirection = prev
	return s
}

func TestArbitrateNeverReverses(t *testing.T) {
	for _, prev := range types.Directions {
		for mask := 0; mask < 1<<len(types.Directions); mask++ {
			im := NewInputManager()
			for _, d := range types.Directions {
				if mask&(1<<d) != 0 {
					im.Press(d)
				}
			}
			s := newTestSnake(prev)

			im.Arbitrate(s)

			assert.NotEqual(t, prev.Opposite(), s.Direction, "prev=%v mask=%04b", prev, mask)
		}
	}
}

func TestArbitratePriority(t *testing.T) {
	tests := []struct {
		name    string
		prev    types.Direction
		pressed []types.Direction
		want    types.Direction
	}{
		{"up beats everything", types.Right, []types.Direction{types.Left, types.Right, types.Down, types.Up}, types.Up},
		{"down beats right and left", types.Left, []types.Direction{types.Left, types.Right, types.Down}, types.Down},
		{"right before left", types.Up, []types.Direction{types.Left, types.Right}, types.Right},
		{"reverse skipped for next candidate", types.Down, []types.Direction{types.Up, types.Right}, types.Right},
		{"only reverse pending", types.Right, []types.Direction{types.Left}, types.Right},
		{"nothing pending", types.Up, nil, types.Up},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im := NewInputManager()
			for _, d := range tt.pressed {
				im.Press(d)
			}
			s := newTestSnake(tt.prev)

			im.Arbitrate(s)

			assert.Equal(t, tt.want, s.Direction)
		})
	}
}

func TestArbitrateConsumesOnlyWinner(t *testing.T) {
	im := NewInputManager()
	im.Press(types.Up)
	im.Press(types.Left)
	s := newTestSnake(types.Right)

	assert.True(t, im.Arbitrate(s))
	assert.Equal(t, types.Up, s.Direction)
	assert.False(t, im.Pending(types.Up))
	assert.True(t, im.Pending(types.Left), "losing key stays queued")
}

func TestArbitrateKeepsRejectedReverse(t *testing.T) {
	im := NewInputManager()
	im.Press(types.Left)
	s := newTestSnake(types.Right)

	assert.False(t, im.Arbitrate(s))
	assert.True(t, im.Pending(types.Left))

	// Once the snake has turned up, left is no longer a reversal.
	s.PrevDirection = types.Up
	assert.True(t, im.Arbitrate(s))
	assert.Equal(t, types.Left, s.Direction)
}

func TestArbitrateChecksCommittedDirection(t *testing.T) {
	im := NewInputManager()
	s := newTestSnake(types.Right)

	// Up was chosen but no step has applied it yet, so left still
	// reverses the committed right.
	im.Press(types.Up)
	im.Arbitrate(s)
	im.Press(types.Left)
	im.Arbitrate(s)
	assert.Equal(t, types.Up, s.Direction)
}
