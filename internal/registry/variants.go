package registry

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// FromConfig builds a registry with one snake factory per configured variant.
func FromConfig(cfg config.SnakeConfig) (*Registry, error) {
	r := New()
	for _, id := range cfg.IDs() {
		v := cfg.Variants[id]
		rules, err := RulesFor(v)
		if err != nil {
			return nil, fmt.Errorf("registry: variant %q: %w", id, err)
		}

		title := v.Title
		if title == "" {
			title = id
		}
		info := GameInfo{
			ID:     id,
			Title:  title,
			Width:  rules.Width,
			Height: rules.Height,
			Policy: string(rules.Policy),
		}
		if err := r.Register(info, func() Game { return snake.New(id, title, rules) }); err != nil {
			return nil, err
		}
	}

	if cfg.Default != "" {
		if err := r.SetDefault(cfg.Default); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// RulesFor converts a configured variant into engine rules.
func RulesFor(v config.Variant) (snake.Rules, error) {
	policy, err := snake.ParsePolicy(v.Input.Policy)
	if err != nil {
		return snake.Rules{}, err
	}
	w, h := v.Board.Dimensions()
	if w < 1 || h < 1 || w*h < 2 {
		return snake.Rules{}, fmt.Errorf("board %dx%d is too small", w, h)
	}
	return snake.Rules{
		Width:  w,
		Height: h,
		Speed: snake.SpeedRule{
			BaseDelay: v.Speed.BaseDelay(),
			Step:      v.Speed.Step(),
			Fixed:     v.Speed.Fixed,
		},
		Policy:    policy,
		OverDelay: v.OverDelay(),
	}, nil
}
