package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Rules is the per-variant configuration of a game.
type Rules struct {
	Width     int
	Height    int
	Speed     SpeedRule
	Policy    Policy
	OverDelay time.Duration // pacing while a round is over
}

// DefaultRules is the classic 20×15 board with score-scaled speed.
func DefaultRules() Rules {
	return Rules{
		Width:     20,
		Height:    15,
		Speed:     DefaultSpeedRule(),
		Policy:    PolicyQueued,
		OverDelay: 200 * time.Millisecond,
	}
}

// Game is the controller: it owns the simulation state and runs the tick
// pipeline input -> gate -> move -> spawn -> status.
type Game struct {
	id    string
	title string
	rules Rules

	rng   *rand.Rand
	state *State
	gate  *Gate
	tick  uint64
	last  Outcome

	screenW int
	screenH int
}

// New creates a game for the given variant. Reset must be called before
// the first Step.
func New(id, title string, rules Rules) *Game {
	if rules.Width <= 0 || rules.Height <= 0 {
		def := DefaultRules()
		rules.Width, rules.Height = def.Width, def.Height
	}
	return &Game{
		id:    id,
		title: title,
		rules: rules,
		state: NewState(rules.Width, rules.Height),
		gate:  NewGate(rules.Policy),
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Rules returns the variant configuration.
func (g *Game) Rules() Rules {
	return g.rules
}

// Reset seeds the RNG and starts a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.restart()
}

// restart begins a new round reusing the current RNG stream.
func (g *Game) restart() {
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.tick = 0
	g.last = OutcomeNone
	g.gate.Clear()
	g.state.Reset(g.rng)
}

// Step advances the game by exactly one tick.
//
// Restart begins a new round from any state. While the round is over
// nothing else changes. Otherwise the first legal direction change in the
// frame is applied and the snake moves one cell.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State(), Reset: true}
	}

	if g.state.Status.Terminal() {
		g.last = OutcomeNone
		return core.StepResult{State: g.State()}
	}

	for _, a := range input.Directions() {
		g.Offer(a)
	}

	g.tick++
	heading := g.gate.Take(g.state.Heading)
	g.last = Advance(g.state, heading, g.rng)

	return core.StepResult{State: g.State()}
}

// Offer feeds one key press to the direction gate between ticks. It returns
// true when the driver should run a tick right away (immediate policy).
func (g *Game) Offer(a core.Action) bool {
	if g.state.Status.Terminal() {
		return false
	}
	d, ok := DirectionFromAction(a)
	if !ok {
		return false
	}
	accepted := g.gate.Offer(g.state.Heading, d)
	return accepted && g.gate.Policy() == PolicyImmediate
}

// Delay returns how long the driver should wait after the current tick.
func (g *Game) Delay() time.Duration {
	if g.state.Status.Terminal() && g.rules.OverDelay > 0 {
		return g.rules.OverDelay
	}
	return g.rules.Speed.Delay(g.state.Score)
}

// Status returns the round status.
func (g *Game) Status() Status {
	return g.state.Status
}

// Score returns apples eaten this round.
func (g *Game) Score() int {
	return g.state.Score
}

// LastOutcome reports what the most recent Step did.
func (g *Game) LastOutcome() Outcome {
	return g.last
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Status.Terminal(),
		Won:      g.state.Status == StatusWon,
	}
}
