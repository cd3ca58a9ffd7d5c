package ui

import (
	"time"

	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/go-errors/errors"
)

// upperHalf paints the top pixel of a cell in the foreground colour and the
// bottom pixel in the background colour.
const upperHalf = '▀'

// terminalFrame caps the terminal loop at about 60 frames per second.
const terminalFrame = time.Second / 60

// TerminalSurface draws into a tcell screen. Each terminal cell holds two
// stacked pixels, one column wide and half a row tall, so an 80x24
// terminal is an 80x48 pixel surface.
type TerminalSurface struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	width, height int
	pixels        []Color

	frame       time.Duration
	lastPresent time.Time
}

func NewTerminalSurface() (*TerminalSurface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.WrapPrefix(err, "couldn't create the terminal screen", 0)
	}
	if err := screen.Init(); err != nil {
		return nil, errors.WrapPrefix(err, "couldn't initialize the terminal", 0)
	}
	screen.HideCursor()
	return newTerminalSurface(screen), nil
}

func newTerminalSurface(screen tcell.Screen) *TerminalSurface {
	s := &TerminalSurface{
		screen: screen,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
		frame:  terminalFrame,
	}
	go s.pump()
	return s
}

// pump forwards events from the blocking PollEvent so Poll never waits.
func (s *TerminalSurface) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

func (s *TerminalSurface) Size() (int, int) {
	w, h := s.screen.Size()
	return w, h * 2
}

// Clear resizes the pixel buffer to the screen and fills it with c.
func (s *TerminalSurface) Clear(c Color) {
	s.width, s.height = s.Size()
	if n := s.width * s.height; cap(s.pixels) >= n {
		s.pixels = s.pixels[:n]
	} else {
		s.pixels = make([]Color, n)
	}
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

func (s *TerminalSurface) FillRect(r Rect, c Color) {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.W, s.width), min(r.Y+r.H, s.height)
	for y := y0; y < y1; y++ {
		row := s.pixels[y*s.width : (y+1)*s.width]
		for x := x0; x < x1; x++ {
			row[x] = c
		}
	}
}

// Present folds pixel pairs into half-block cells, shows the screen and
// sleeps off whatever is left of the frame.
func (s *TerminalSurface) Present() {
	for y := 0; y+1 < s.height; y += 2 {
		top := s.pixels[y*s.width : (y+1)*s.width]
		bottom := s.pixels[(y+1)*s.width : (y+2)*s.width]
		for x := 0; x < s.width; x++ {
			style := tcell.StyleDefault.Foreground(toTcell(top[x])).Background(toTcell(bottom[x]))
			s.screen.SetContent(x, y/2, upperHalf, nil, style)
		}
	}
	s.screen.Show()

	if !s.lastPresent.IsZero() {
		if wait := s.frame - time.Since(s.lastPresent); wait > 0 {
			time.Sleep(wait)
		}
	}
	s.lastPresent = time.Now()
}

func (s *TerminalSurface) Poll() Events {
	var out Events
	for {
		select {
		case ev := <-s.events:
			s.handle(ev, &out)
		default:
			return out
		}
	}
}

func (s *TerminalSurface) handle(ev tcell.Event, out *Events) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			out.Quit = true
		case tcell.KeyUp:
			out.Pressed = append(out.Pressed, types.Up)
		case tcell.KeyDown:
			out.Pressed = append(out.Pressed, types.Down)
		case tcell.KeyLeft:
			out.Pressed = append(out.Pressed, types.Left)
		case tcell.KeyRight:
			out.Pressed = append(out.Pressed, types.Right)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				out.Quit = true
			case 'w':
				out.Pressed = append(out.Pressed, types.Up)
			case 's':
				out.Pressed = append(out.Pressed, types.Down)
			case 'a':
				out.Pressed = append(out.Pressed, types.Left)
			case 'd':
				out.Pressed = append(out.Pressed, types.Right)
			}
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

func (s *TerminalSurface) Close() error {
	close(s.done)
	s.screen.Fini()
	return nil
}

func toTcell(c Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
