package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// arbitrationOrder decides which key wins when several are pending.
var arbitrationOrder = [...]types.Direction{types.Up, types.Down, types.Right, types.Left}

// InputManager holds one "pressed since last consumed" flag per direction.
// Releasing a key does not clear its flag; only Arbitrate does.
type InputManager struct {
	pending [len(types.Directions)]bool
}

func NewInputManager() *InputManager {
	return &InputManager{}
}

// Press marks dir as pending.
func (im *InputManager) Press(dir types.Direction) {
	if dir < 0 || int(dir) >= len(im.pending) {
		return
	}
	im.pending[dir] = true
}

// Pending reports whether dir is waiting to be consumed.
func (im *InputManager) Pending(dir types.Direction) bool {
	if dir < 0 || int(dir) >= len(im.pending) {
		return false
	}
	return im.pending[dir]
}

// Arbitrate turns at most one pending flag into snake.Direction. A
// request for the reverse of the last applied direction is skipped and
// stays pending. Returns false when nothing was consumed.
func (im *InputManager) Arbitrate(snake *entity.Snake) bool {
	reverse := snake.PrevDirection.Opposite()
	for _, dir := range arbitrationOrder {
		if im.pending[dir] && dir != reverse {
			snake.Direction = dir
			im.pending[dir] = false
			return true
		}
	}
	return false
}
