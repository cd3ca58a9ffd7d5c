package driver

import (
	"context"
	"io"
	"log"
	"time"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/ui"
)

type Options struct {
	Interval time.Duration // Time between movement steps
	Clock    Clock
	Logger   *log.Logger
}

// Driver runs the frame loop: render as fast as the surface allows and
// step the game once whenever the interval has passed.
type Driver struct {
	game     *game.Game
	surface  ui.Surface
	renderer *ui.Renderer
	clock    Clock
	logger   *log.Logger
	interval time.Duration
	lastTick time.Time
	closed   bool
}

func New(g *game.Game, surface ui.Surface, opts Options) *Driver {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.Interval <= 0 {
		opts.Interval = types.TickInterval
	}
	return &Driver{
		game:     g,
		surface:  surface,
		renderer: ui.NewRenderer(),
		clock:    opts.Clock,
		logger:   opts.Logger,
		interval: opts.Interval,
		lastTick: opts.Clock.Now(),
	}
}

// Frame runs one iteration and reports whether the loop should continue.
// The frame shows the state from before this frame's step.
func (d *Driver) Frame() bool {
	if d.closed {
		return false
	}

	d.renderer.Draw(d.surface, d.game)

	ev := d.surface.Poll()
	for _, dir := range ev.Pressed {
		d.game.Press(dir)
	}
	if ev.Quit {
		d.logger.Printf("session %s: quit requested", d.game.UUID)
		d.close()
		return false
	}

	d.surface.Present()

	now := d.clock.Now()
	if now.Sub(d.lastTick) > d.interval {
		d.step()
		d.lastTick = now
	}
	return true
}

func (d *Driver) step() {
	res := d.game.Step()
	state := d.game.GetState()
	if res.AteApple {
		d.logger.Printf("session %s: apple eaten, length %d", d.game.UUID, d.game.GetSnake().Len())
	}
	if res.PhaseEnded {
		switch d.game.Phase() {
		case manager.Lost:
			d.logger.Printf("session %s: game over (%s collision) after %d steps, length %d",
				d.game.UUID, state.Collision(), state.Steps(), d.game.GetSnake().Len())
		case manager.Won:
			d.logger.Printf("session %s: board filled after %d steps", d.game.UUID, state.Steps())
		}
	}
}

// Run loops frames until quit or until ctx is done, then tears the
// surface down.
func (d *Driver) Run(ctx context.Context) error {
	d.logger.Printf("session %s: started, %dx%d grid, step every %s",
		d.game.UUID, d.game.Grid.Width, d.game.Grid.Height, d.interval)

	for {
		select {
		case <-ctx.Done():
			d.close()
			return ctx.Err()
		default:
		}
		if !d.Frame() {
			return nil
		}
	}
}

func (d *Driver) close() {
	if d.closed {
		return
	}
	d.closed = true
	state := d.game.GetState()
	d.logger.Printf("session %s: ended %s, %d apples, %d steps in %s",
		d.game.UUID, state.Phase(), state.ApplesEaten(), state.Steps(), d.game.ElapsedTime().Round(time.Millisecond))
	if err := d.surface.Close(); err != nil {
		d.logger.Printf("closing surface: %v", err)
	}
}
