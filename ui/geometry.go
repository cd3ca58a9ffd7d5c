package ui

import "gridsnake/game/types"

// Geometry maps grid cells to pixels for one frame.
type Geometry struct {
	CellSize int
	OffsetX  int
	OffsetY  int
}

// NewGeometry fits a gridSize x gridSize board into a width x height
// viewport. Recompute it every frame; the viewport may be resized.
func NewGeometry(width, height, gridSize int) Geometry {
	offsetX, offsetY := ComputeOffset(width, height)
	return Geometry{
		CellSize: CellSize(width, height, gridSize),
		OffsetX:  offsetX,
		OffsetY:  offsetY,
	}
}

// CellSize is the side of one cell in pixels.
func CellSize(width, height, gridSize int) int {
	if gridSize <= 0 {
		return 0
	}
	return min(width, height) / gridSize
}

// ComputeOffset pads the longer axis by half the difference between the
// viewport sides so the square board sits in the middle.
func ComputeOffset(width, height int) (x, y int) {
	if height > width {
		return 0, (height - width) / 2
	}
	return (width - height) / 2, 0
}

// CellToRect returns the pixel rectangle covering cell.
func CellToRect(cell types.Cell, cellSize, offsetX, offsetY int) Rect {
	return Rect{
		X: offsetX + cell.X*cellSize,
		Y: offsetY + cell.Y*cellSize,
		W: cellSize,
		H: cellSize,
	}
}

func (g Geometry) Rect(cell types.Cell) Rect {
	return CellToRect(cell, g.CellSize, g.OffsetX, g.OffsetY)
}
