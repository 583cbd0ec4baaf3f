package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/runner"
)

// simOptions are the flags of the sim command.
type simOptions struct {
	Moves      string
	Stdin      bool
	Every      uint64
	MaxTicks   uint64
	StopOnOver bool
	Realtime   bool
	Seed       int64
}

var simFlags simOptions

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Run a scripted game without a terminal UI",
	Long: `Run the game headlessly from a move script and print board snapshots.

A script lists one tick per token. Tokens are u/d/l/r (or up/down/left/right),
x to restart, q to quit and . for an idle tick. Join actions for the same
tick with '+' (the first legal change wins) and repeat a tick with '*N'.

Board legend: H head, o body, * apple, . empty.

Examples:
  snake sim --seed 1 --moves "r*5 d*3 l"
  snake sim fixed --seed 7 --moves ".*100" --every 10
  echo "d d r" | snake sim --stdin --seed 3`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimCmd,
}

func init() {
	simCmd.Flags().StringVar(&simFlags.Moves, "moves", "", "Move script")
	simCmd.Flags().BoolVar(&simFlags.Stdin, "stdin", false, "Read the move script from stdin, one line at a time")
	simCmd.Flags().Uint64Var(&simFlags.Every, "every", 1, "Print every Nth tick")
	simCmd.Flags().Uint64Var(&simFlags.MaxTicks, "max-ticks", 0, "Stop after this many ticks (0 = until the script ends)")
	simCmd.Flags().BoolVar(&simFlags.StopOnOver, "stop-on-over", false, "Stop when a round is lost or won")
	simCmd.Flags().BoolVar(&simFlags.Realtime, "realtime", false, "Wait the game delay between ticks")
}

func runSimCmd(_ *cobra.Command, args []string) {
	variant := ""
	if len(args) == 1 {
		variant = args[0]
	}

	reg, err := loadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := simFlags
	opts.Seed = flagSeed
	if err := runSim(ctx, reg, variant, opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runSim plays variant from the script in opts (or in, with Stdin set) and
// writes snapshots and a summary to out.
func runSim(ctx context.Context, reg *registry.Registry, variant string, opts simOptions, in io.Reader, out, logOut io.Writer) error {
	game, err := reg.Create(variant)
	if err != nil {
		return err
	}

	var src runner.InputSource
	var lines *runner.LineSource
	if opts.Stdin {
		lines = runner.NewLineSource(in)
		src = lines
	} else {
		script, err := runner.NewScriptSource(opts.Moves)
		if err != nil {
			return err
		}
		src = script
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.Reset(core.RuntimeConfig{Seed: seed})

	sleep := runner.NoSleep
	if opts.Realtime {
		sleep = runner.RealSleep
	}

	fmt.Fprintf(out, "variant=%s seed=%d\n", game.ID(), seed)
	fmt.Fprintln(out, game.Snapshot().String())

	res, err := runner.Run(ctx, game, src, runner.Options{
		MaxTicks:       opts.MaxTicks,
		StopOnGameOver: opts.StopOnOver,
		Sink:           runner.WriterSink{W: out, Every: opts.Every, Final: true},
		Sleep:          sleep,
		Logger:         newLogger(logOut, "snake-sim"),
	})
	if err != nil {
		return err
	}
	if lines != nil {
		if err := lines.Err(); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "ticks=%d rounds=%d score=%d length=%d status=%s\n",
		res.Ticks, res.Rounds, res.Final.Score, res.Final.Length, res.Final.Status)
	return nil
}
