package ui

import "gridsnake/game/types"

type Color struct {
	R, G, B uint8
}

var (
	Background = Color{R: 0x18, G: 0x18, B: 0x18}
	SnakeColor = Color{R: 0x00, G: 0xFF, B: 0x00}
	AppleColor = Color{R: 0xFF, G: 0x00, B: 0x00}
)

// Rect is a pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Events is everything the input side delivered since the last Poll.
type Events struct {
	Pressed []types.Direction // Key-down order
	Quit    bool
}

// Surface is the window, renderer and event pump the game draws through.
// Calls happen on a single goroutine, once per frame, in the order
// Size, Clear, FillRect..., Poll, Present.
type Surface interface {
	// Size returns the current drawable size in pixels.
	Size() (width, height int)
	Clear(c Color)
	FillRect(r Rect, c Color)
	Present()
	// Poll drains pending input without blocking.
	Poll() Events
	// Close releases the window. No other method is called afterwards.
	Close() error
}
