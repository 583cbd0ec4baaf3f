// snake is a terminal snake game with local, SSH and headless drivers.
//
// Usage:
//
//	snake                    - Pick a variant from the menu and play
//	snake list               - List configured variants
//	snake play [variant]     - Play a variant directly
//	snake serve              - Start SSH server for remote play
//	snake sim [variant]      - Run a scripted game headlessly
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--config <path>    - Load variants from a YAML file
//	--log-file <path>  - Write logs to a file
//	--debug            - Log debug events
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal version of the classic game: steer the snake
around the board, eat apples to grow, and avoid the walls and your own tail.

Without a subcommand a menu lets you pick a variant.

Controls:
  Arrows/WASD/hjkl  - Steer
  Space/R           - Restart
  Esc/B             - Back to menu (after game over)
  Tab               - Session scores (menu)
  Q/Ctrl+C          - Quit

Examples:
  snake
  snake list
  snake play fixed
  snake serve --ssh :2222
  snake sim --seed 1 --moves "r*5 d*3"`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to variants config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	playVariant("")
}

// playVariant runs a local session. An empty variant starts in the menu.
func playVariant(variant string) {
	reg, err := loadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if variant != "" && !reg.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer closeLog()

	width, height := terminalSize()
	warnIfTooSmall(reg, variant, width, height)

	// Open the session scoreboard
	store, err := storage.OpenMemory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scoreboard: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	env := tui.Env{
		Registry: reg,
		Store:    store,
		Logger:   logger,
		Player:   os.Getenv("USER"),
	}
	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	runErr := tui.Run(env, cfg, variant)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
