package ui

import (
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-errors/errors"
)

// raylibKeys maps arrow keys and WASD to directions.
var raylibKeys = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyW, types.Up},
	{rl.KeyS, types.Down},
	{rl.KeyA, types.Left},
	{rl.KeyD, types.Right},
}

const targetFPS = 60

// RaylibSurface draws into a resizable raylib window.
type RaylibSurface struct {
	drawing bool
}

// NewRaylibSurface opens the window. raylib has to stay on the goroutine
// that called this.
func NewRaylibSurface(width, height int, title string) (*RaylibSurface, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return nil, errors.New("couldn't create the window")
	}
	rl.SetTargetFPS(targetFPS)
	// Quit comes from WindowShouldClose and the Escape check in Poll.
	rl.SetExitKey(rl.KeyNull)
	return &RaylibSurface{}, nil
}

func (s *RaylibSurface) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (s *RaylibSurface) begin() {
	if !s.drawing {
		rl.BeginDrawing()
		s.drawing = true
	}
}

func (s *RaylibSurface) Clear(c Color) {
	s.begin()
	rl.ClearBackground(toRaylib(c))
}

func (s *RaylibSurface) FillRect(r Rect, c Color) {
	s.begin()
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), toRaylib(c))
}

// Present ends the frame. raylib swaps buffers and polls OS events here.
func (s *RaylibSurface) Present() {
	s.begin()
	rl.EndDrawing()
	s.drawing = false
}

func (s *RaylibSurface) Poll() Events {
	var ev Events
	for _, k := range raylibKeys {
		if rl.IsKeyPressed(k.key) {
			ev.Pressed = append(ev.Pressed, k.dir)
		}
	}
	ev.Quit = rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyEscape)
	return ev
}

func (s *RaylibSurface) Close() error {
	rl.CloseWindow()
	return nil
}

func toRaylib(c Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
