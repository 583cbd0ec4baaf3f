// Package runner drives a game without a terminal UI: one input frame per
// tick, a fixed pause between ticks, and quit or cancellation honoured only
// at the tick boundary.
package runner

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// InputSource yields the input for the next tick. ok is false when the
// source is exhausted.
type InputSource interface {
	Next() (frame core.InputFrame, ok bool)
}

// FrameSink receives a snapshot after every tick.
type FrameSink interface {
	Frame(s snake.Snapshot) error
}

// FrameSinkFunc adapts a function to FrameSink.
type FrameSinkFunc func(s snake.Snapshot) error

// Frame calls f(s).
func (f FrameSinkFunc) Frame(s snake.Snapshot) error {
	return f(s)
}

// Sleeper pauses between ticks. It returns early with ctx.Err() when the
// context is cancelled.
type Sleeper func(ctx context.Context, d time.Duration) error

// Options configures a run.
type Options struct {
	// MaxTicks stops the run after this many steps; zero means no limit.
	MaxTicks uint64
	// StopOnGameOver ends the run on the first lost or won round.
	StopOnGameOver bool
	// Sink, if set, receives every post-tick snapshot.
	Sink FrameSink
	// Sleep paces the loop; nil means RealSleep.
	Sleep Sleeper
	// Logger receives round events; nil discards them.
	Logger *log.Logger
}

// Result summarises a finished run.
type Result struct {
	Ticks  uint64
	Rounds int // rounds started, including the first
	Quit   bool
	Final  snake.Snapshot
}

// Run drives g until the source is exhausted, a quit action arrives,
// MaxTicks is reached or ctx is cancelled. The game must already be Reset.
func Run(ctx context.Context, g registry.Game, src InputSource, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = RealSleep
	}

	res := Result{Rounds: 1}
	logger.Debug("round started", "game", g.ID(), "round", res.Rounds)

	for {
		// Tick boundary: the only place quit and cancellation are seen.
		if err := ctx.Err(); err != nil {
			res.Final = g.Snapshot()
			return res, err
		}
		if opts.MaxTicks > 0 && res.Ticks >= opts.MaxTicks {
			break
		}
		in, ok := src.Next()
		if !ok {
			break
		}
		if in.Has(core.ActionQuit) {
			res.Quit = true
			break
		}

		before := g.State()
		step := g.Step(in)
		res.Ticks++
		logEvents(logger, g, before, step, &res)

		if opts.Sink != nil {
			if err := opts.Sink.Frame(g.Snapshot()); err != nil {
				res.Final = g.Snapshot()
				return res, err
			}
		}
		if opts.StopOnGameOver && step.State.GameOver {
			break
		}

		if err := sleep(ctx, g.Delay()); err != nil {
			res.Final = g.Snapshot()
			return res, err
		}
	}

	res.Final = g.Snapshot()
	logger.Info("run finished", "game", g.ID(), "ticks", res.Ticks, "score", res.Final.Score, "status", res.Final.Status)
	return res, nil
}

func logEvents(logger *log.Logger, g registry.Game, before core.GameState, step core.StepResult, res *Result) {
	switch {
	case step.Reset:
		res.Rounds++
		logger.Debug("round started", "game", g.ID(), "round", res.Rounds)
	case step.State.Score > before.Score:
		logger.Debug("apple eaten", "game", g.ID(), "score", step.State.Score)
	}
	if step.State.GameOver && !before.GameOver {
		status := "lost"
		if step.State.Won {
			status = "won"
		}
		logger.Info("round over", "game", g.ID(), "status", status, "score", step.State.Score)
	}
}

// RealSleep waits for d or until ctx is done.
func RealSleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NoSleep runs ticks back to back.
func NoSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
