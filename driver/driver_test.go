package driver_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"gridsnake/driver"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/ui"
	"gridsnake/ui/surfacetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time {
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type fixture struct {
	game  *game.Game
	rec   *surfacetest.Recorder
	clock *manualClock
	logs  *bytes.Buffer
	drv   *driver.Driver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	g, err := game.NewGame(game.Config{GridSize: 25, InitLength: 4, Seed: 11})
	require.NoError(t, err)

	f := &fixture{
		game:  g,
		rec:   surfacetest.NewRecorder(800, 600),
		clock: &manualClock{now: time.Unix(1000, 0)},
		logs:  &bytes.Buffer{},
	}
	f.drv = driver.New(g, f.rec, driver.Options{
		Interval: 100 * time.Millisecond,
		Clock:    f.clock,
		Logger:   log.New(f.logs, "", 0),
	})
	return f
}

func TestNoStepUntilIntervalExceeded(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.drv.Frame())
	assert.Equal(t, 0, f.game.GetState().Steps())

	f.clock.Advance(100 * time.Millisecond)
	require.True(t, f.drv.Frame())
	assert.Equal(t, 0, f.game.GetState().Steps(), "exactly one interval is not enough")

	f.clock.Advance(time.Millisecond)
	require.True(t, f.drv.Frame())
	assert.Equal(t, 1, f.game.GetState().Steps())
	assert.Equal(t, types.Cell{X: 13, Y: 12}, f.game.GetSnake().Head())
}

func TestStallsCoalesceIntoOneStep(t *testing.T) {
	f := newFixture(t)

	f.clock.Advance(350 * time.Millisecond)
	require.True(t, f.drv.Frame())
	assert.Equal(t, 1, f.game.GetState().Steps())

	require.True(t, f.drv.Frame())
	assert.Equal(t, 1, f.game.GetState().Steps(), "no catch-up step on the next frame")
}

func TestFrameRendersBeforeStepping(t *testing.T) {
	f := newFixture(t)
	head := f.game.GetSnake().Head()

	f.clock.Advance(101 * time.Millisecond)
	require.True(t, f.drv.Frame())

	assert.Equal(t, "Size", f.rec.Calls[0].Method)
	assert.Equal(t, "Clear", f.rec.Calls[1].Method)
	geo := ui.NewGeometry(800, 600, 25)
	assert.Equal(t, geo.Rect(head), f.rec.Calls[2].Rect, "frame shows the pre-step head")
	assert.Equal(t, []string{"Poll", "Present"}, f.rec.Methods()[len(f.rec.Calls)-2:])
	assert.NotEqual(t, head, f.game.GetSnake().Head())
}

func TestKeyPressUsedOnNextStep(t *testing.T) {
	f := newFixture(t)

	f.rec.QueueKeys(types.Up)
	require.True(t, f.drv.Frame())
	assert.Equal(t, types.Cell{X: 12, Y: 12}, f.game.GetSnake().Head())

	f.clock.Advance(101 * time.Millisecond)
	require.True(t, f.drv.Frame())
	assert.Equal(t, types.Cell{X: 12, Y: 11}, f.game.GetSnake().Head())
}

func TestQuitClosesWithinFrame(t *testing.T) {
	f := newFixture(t)

	f.rec.Queue(ui.Events{Quit: true})
	f.clock.Advance(time.Second)
	assert.False(t, f.drv.Frame())

	assert.True(t, f.rec.Closed)
	methods := f.rec.Methods()
	assert.Equal(t, []string{"Poll", "Close"}, methods[len(methods)-2:])
	assert.Zero(t, f.rec.Count("Present"))
	assert.Equal(t, 0, f.game.GetState().Steps(), "no step once quit is seen")

	calls := len(f.rec.Calls)
	assert.False(t, f.drv.Frame())
	assert.Len(t, f.rec.Calls, calls)
}

func TestRunUntilQuit(t *testing.T) {
	f := newFixture(t)
	f.rec.QueueKeys()
	f.rec.QueueKeys(types.Down)
	f.rec.Queue(ui.Events{Quit: true})

	err := f.drv.Run(context.Background())

	require.NoError(t, err)
	assert.True(t, f.rec.Closed)
	assert.Equal(t, 3, f.rec.Count("Poll"))
	assert.Equal(t, 2, f.rec.Count("Present"))
	assert.Contains(t, f.logs.String(), "quit requested")
	assert.Contains(t, f.logs.String(), f.game.UUID)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.drv.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, f.rec.Closed)
	assert.Equal(t, []string{"Close"}, f.rec.Methods())
}

func TestCloseErrorIsLogged(t *testing.T) {
	f := newFixture(t)
	f.rec.CloseErr = errors.New("device lost")
	f.rec.Queue(ui.Events{Quit: true})

	require.NoError(t, f.drv.Run(context.Background()))
	assert.Contains(t, f.logs.String(), "device lost")
}

func TestGameOverKeepsRendering(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 13; i++ {
		f.clock.Advance(101 * time.Millisecond)
		require.True(t, f.drv.Frame())
	}
	require.NotEqual(t, "playing", f.game.Phase().String())
	assert.Contains(t, f.logs.String(), "game over")

	f.rec.Reset()
	f.clock.Advance(101 * time.Millisecond)
	require.True(t, f.drv.Frame())
	assert.Equal(t, 1, f.rec.Count("Present"))
	assert.Equal(t, 13, f.game.GetState().Steps())
}

func TestDefaultIntervalIsTickInterval(t *testing.T) {
	g, err := game.NewGame(game.Config{GridSize: 25, InitLength: 4, Seed: 11})
	require.NoError(t, err)
	clock := &manualClock{now: time.Unix(1000, 0)}
	drv := driver.New(g, surfacetest.NewRecorder(800, 600), driver.Options{Clock: clock})

	clock.Advance(types.TickInterval)
	require.True(t, drv.Frame())
	assert.Equal(t, 0, g.GetState().Steps())

	clock.Advance(time.Millisecond)
	require.True(t, drv.Frame())
	assert.Equal(t, 1, g.GetState().Steps())
}
