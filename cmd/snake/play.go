package main

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant, or the default one.

Examples:
  snake play
  snake play fixed
  snake play classic --seed 42
  snake play --config ./my-snake.yaml --log-file snake.log --debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	variant := ""
	if len(args) == 1 {
		variant = args[0]
	}
	if variant == "" {
		reg, err := loadRegistry()
		if err == nil {
			variant = reg.Default()
		}
	}
	playVariant(variant)
}
