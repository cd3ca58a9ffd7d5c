package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gridsnake/driver"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/ui"

	"github.com/go-errors/errors"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "SNAKE"
)

func main() {
	backend := flag.String("backend", "raylib", "Rendering backend: raylib or terminal")
	seed := flag.Uint64("seed", 0, "Apple placement seed (0 = time based)")
	tick := flag.Duration("tick", types.TickInterval, "Time between snake moves")
	logPath := flag.String("log", "", "Write the log to this file")
	debug := flag.Bool("debug", false, "Print stack traces for startup errors")
	flag.Parse()

	if err := run(*backend, *seed, *tick, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		var stackErr *errors.Error
		if *debug && errors.As(err, &stackErr) {
			fmt.Fprintln(os.Stderr, stackErr.ErrorStack())
		}
		os.Exit(1)
	}
}

func run(backend string, seed uint64, tick time.Duration, logPath string) error {
	logger, closeLog, err := newLogger(backend, logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := game.DefaultConfig()
	if seed != 0 {
		cfg.Seed = seed
	}
	g, err := game.NewGame(cfg)
	if err != nil {
		return errors.WrapPrefix(err, "couldn't start the game", 0)
	}

	surface, err := newSurface(backend)
	if err != nil {
		return err
	}
	logger.Printf("session %s: backend %s, seed %d", g.UUID, backend, cfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := driver.New(g, surface, driver.Options{
		Interval: tick,
		Logger:   logger,
	})
	if err := d.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newSurface(backend string) (ui.Surface, error) {
	switch backend {
	case "raylib":
		return ui.NewRaylibSurface(windowWidth, windowHeight, windowTitle)
	case "terminal":
		return ui.NewTerminalSurface()
	default:
		return nil, errors.Errorf("unknown backend %q", backend)
	}
}

// newLogger writes to logPath when given. Without one the terminal backend
// discards logs, since stderr shares the screen it draws on.
func newLogger(backend, logPath string) (*log.Logger, func(), error) {
	var out io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case logPath != "":
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, errors.WrapPrefix(err, "couldn't open the log file", 0)
		}
		out = f
		closeFn = func() { f.Close() }
	case backend == "terminal":
		out = io.Discard
	}

	return log.New(out, "snake: ", log.LstdFlags), closeFn, nil
}
