// Package config provides YAML-based variant configuration for the snake
// game.
package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"
)

// ErrUnknownVariant is returned when a variant id is not configured.
var ErrUnknownVariant = errors.New("config: unknown variant")

// SnakeConfig is the top-level configuration file.
type SnakeConfig struct {
	Default  string             `yaml:"default"`
	Variants map[string]Variant `yaml:"variants"`
}

// Variant is one playable ruleset.
type Variant struct {
	Title       string      `yaml:"title"`
	Board       BoardConfig `yaml:"board"`
	Speed       SpeedConfig `yaml:"speed"`
	Input       InputConfig `yaml:"input"`
	OverDelayMs int         `yaml:"over_delay_ms"` // pacing while a round is over
}

// BoardConfig describes the playfield as a pixel viewport divided into
// square cells.
type BoardConfig struct {
	ViewportWidth  int `yaml:"viewport_width"`
	ViewportHeight int `yaml:"viewport_height"`
	CellSize       int `yaml:"cell_size"`
}

// Dimensions returns the board size in cells.
func (b BoardConfig) Dimensions() (width, height int) {
	if b.CellSize <= 0 {
		return 0, 0
	}
	return b.ViewportWidth / b.CellSize, b.ViewportHeight / b.CellSize
}

// SpeedConfig defines the tick delay: base - step*score, or base when fixed.
type SpeedConfig struct {
	BaseDelayMs int  `yaml:"base_delay_ms"`
	StepMs      int  `yaml:"step_ms"`
	Fixed       bool `yaml:"fixed"`
}

// BaseDelay returns the base delay as a duration.
func (s SpeedConfig) BaseDelay() time.Duration {
	return time.Duration(s.BaseDelayMs) * time.Millisecond
}

// Step returns the per-apple speedup as a duration.
func (s SpeedConfig) Step() time.Duration {
	return time.Duration(s.StepMs) * time.Millisecond
}

// InputConfig selects the direction-change policy ("queued" or "immediate").
type InputConfig struct {
	Policy string `yaml:"policy"`
}

// OverDelay returns the pacing used while a round is over.
func (v Variant) OverDelay() time.Duration {
	return time.Duration(v.OverDelayMs) * time.Millisecond
}

// IDs returns the configured variant ids in sorted order.
func (c SnakeConfig) IDs() []string {
	return slices.Sorted(maps.Keys(c.Variants))
}

// Validate checks every variant and reports all problems at once.
func (c SnakeConfig) Validate() error {
	var errs []error
	if len(c.Variants) == 0 {
		errs = append(errs, errors.New("config: no variants defined"))
	}
	if c.Default != "" {
		if _, ok := c.Variants[c.Default]; !ok {
			errs = append(errs, fmt.Errorf("config: default: %w: %q", ErrUnknownVariant, c.Default))
		}
	}
	for _, id := range c.IDs() {
		if err := c.Variants[id].validate(); err != nil {
			errs = append(errs, fmt.Errorf("config: variant %q: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

func (v Variant) validate() error {
	var errs []error
	b := v.Board
	if b.ViewportWidth <= 0 || b.ViewportHeight <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %dx%d", b.ViewportWidth, b.ViewportHeight))
	}
	if b.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell_size must be positive, got %d", b.CellSize))
	} else if w, h := b.Dimensions(); w < 1 || h < 1 || w*h < 2 {
		errs = append(errs, fmt.Errorf("board must hold at least 2 cells, got %dx%d", w, h))
	}
	if v.Speed.BaseDelayMs < 0 || v.Speed.StepMs < 0 {
		errs = append(errs, errors.New("speed delays must not be negative"))
	}
	if v.OverDelayMs < 0 {
		errs = append(errs, errors.New("over_delay_ms must not be negative"))
	}
	switch v.Input.Policy {
	case "", "queued", "immediate":
	default:
		errs = append(errs, fmt.Errorf("unknown input policy %q", v.Input.Policy))
	}
	return errors.Join(errs...)
}
