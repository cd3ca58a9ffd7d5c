// Package surfacetest provides a recording ui.Surface for tests.
package surfacetest

import (
	"fmt"

	"gridsnake/game/types"
	"gridsnake/ui"
)

// Call is one recorded surface method invocation.
type Call struct {
	Method string
	Rect   ui.Rect
	Color  ui.Color
}

func (c Call) String() string {
	if c.Method == "FillRect" {
		return fmt.Sprintf("FillRect(%+v, %+v)", c.Rect, c.Color)
	}
	return c.Method
}

// Recorder records every call and replays scripted input, one Events
// value per Poll.
type Recorder struct {
	Width, Height int
	Calls         []Call
	Script        []ui.Events
	Closed        bool
	CloseErr      error
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Queue appends one frame worth of input.
func (r *Recorder) Queue(ev ui.Events) {
	r.Script = append(r.Script, ev)
}

// QueueKeys is shorthand for a frame with only key presses.
func (r *Recorder) QueueKeys(dirs ...types.Direction) {
	r.Queue(ui.Events{Pressed: dirs})
}

func (r *Recorder) record(c Call) {
	if r.Closed {
		panic(fmt.Sprintf("surfacetest: %s after Close", c))
	}
	r.Calls = append(r.Calls, c)
}

func (r *Recorder) Size() (int, int) {
	r.record(Call{Method: "Size"})
	return r.Width, r.Height
}

func (r *Recorder) Clear(c ui.Color) {
	r.record(Call{Method: "Clear", Color: c})
}

func (r *Recorder) FillRect(rect ui.Rect, c ui.Color) {
	r.record(Call{Method: "FillRect", Rect: rect, Color: c})
}

func (r *Recorder) Present() {
	r.record(Call{Method: "Present"})
}

func (r *Recorder) Poll() ui.Events {
	r.record(Call{Method: "Poll"})
	if len(r.Script) == 0 {
		return ui.Events{}
	}
	ev := r.Script[0]
	r.Script = r.Script[1:]
	return ev
}

func (r *Recorder) Close() error {
	r.record(Call{Method: "Close"})
	r.Closed = true
	return r.CloseErr
}

// Methods returns the recorded method names in order.
func (r *Recorder) Methods() []string {
	names := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		names[i] = c.Method
	}
	return names
}

// Count returns how many times method was called.
func (r *Recorder) Count(method string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() {
	r.Calls = nil
}
