package ui

import (
	"gridsnake/game"
	"gridsnake/game/types"
)

type Renderer struct {
	geometry Geometry
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// UpdateDimensions recomputes the cell size and offsets from the surface.
func (r *Renderer) UpdateDimensions(s Surface, gridSize int) {
	w, h := s.Size()
	r.geometry = NewGeometry(w, h, gridSize)
}

// Geometry returns the layout used by the last Draw.
func (r *Renderer) Geometry() Geometry {
	return r.geometry
}

// Draw clears the frame and fills the snake head to tail, then the apple.
// Presenting is left to the caller.
func (r *Renderer) Draw(s Surface, g *game.Game) {
	r.UpdateDimensions(s, g.Grid.Width)
	s.Clear(Background)

	g.GetSnake().Each(func(c types.Cell) bool {
		s.FillRect(r.geometry.Rect(c), SnakeColor)
		return true
	})

	if g.HasApple() {
		s.FillRect(r.geometry.Rect(g.GetApple()), AppleColor)
	}
}
