package snake

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newGame(t *testing.T, rules Rules, seed int64) *Game {
	t.Helper()
	g := New("classic", "Snake", rules)
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	return g
}

func TestResetInitialConfiguration(t *testing.T) {
	g := newGame(t, DefaultRules(), 42)

	snap := g.Snapshot()
	if snap.Status != StatusPlaying || snap.Score != 0 {
		t.Errorf("status=%v score=%d", snap.Status, snap.Score)
	}
	if snap.Head != Origin || snap.Tail != Origin || snap.Length != 1 {
		t.Errorf("head=%v tail=%v len=%d", snap.Head, snap.Tail, snap.Length)
	}

	snakeCells, apples := 0, 0
	for i := range snap.Snake {
		if snap.Snake[i] {
			snakeCells++
		}
		if snap.Apple[i] {
			apples++
		}
	}
	if snakeCells != 1 || !snap.IsSnake(0, 0) {
		t.Errorf("expected only the origin occupied, got %d cells", snakeCells)
	}
	if apples != 1 {
		t.Errorf("expected one apple, got %d", apples)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, DefaultRules(), 12345)
	g2 := newGame(t, DefaultRules(), 12345)

	script := map[int]core.Action{3: core.ActionDown, 9: core.ActionRight, 14: core.ActionDown}
	for i := 0; i < 40; i++ {
		in := core.NewInputFrame()
		if a, ok := script[i]; ok {
			in.Set(a)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots diverged:\n%s\nvs\n%s", g1.Snapshot(), g2.Snapshot())
	}
}

func TestStepRightUntilWall(t *testing.T) {
	rules := DefaultRules()
	g := newGame(t, rules, 7)

	for i := 0; i < rules.Width-1; i++ {
		g.Step(core.NewInputFrame())
		if g.Status() != StatusPlaying {
			t.Fatalf("tick %d: status %v", i+1, g.Status())
		}
	}

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || res.State.Won {
		t.Errorf("expected a loss, got %+v", res.State)
	}
	if g.Status() != StatusLost {
		t.Errorf("status = %v", g.Status())
	}
}

func TestStepIgnoresReversal(t *testing.T) {
	g := newGame(t, DefaultRules(), 1)
	g.Step(core.NewInputFrame()) // head at (1,0)

	g.Step(core.FrameOf(core.ActionLeft))

	snap := g.Snapshot()
	if snap.Head != (Point{X: 2, Y: 0}) || snap.Heading != DirRight {
		t.Errorf("reversal should be ignored: head=%v heading=%v", snap.Head, snap.Heading)
	}
}

func TestQueuedPolicyFirstKeyWins(t *testing.T) {
	g := newGame(t, DefaultRules(), 1)

	if g.Offer(core.ActionDown) {
		t.Error("queued policy should never ask for an immediate tick")
	}
	g.Offer(core.ActionUp) // dropped: a change is already pending
	g.Step(core.NewInputFrame())

	if snap := g.Snapshot(); snap.Head != (Point{X: 0, Y: 1}) {
		t.Fatalf("expected move down to (0,1), got %v", snap.Head)
	}

	// The dropped key does not carry over
	g.Step(core.NewInputFrame())
	if snap := g.Snapshot(); snap.Head != (Point{X: 0, Y: 2}) {
		t.Errorf("expected to keep heading down, got %v", snap.Head)
	}
}

func TestQueuedPolicyFrameOrder(t *testing.T) {
	g := newGame(t, DefaultRules(), 1)
	g.Step(core.NewInputFrame()) // head (1,0), heading right

	g.Step(core.FrameOf(core.ActionLeft, core.ActionDown, core.ActionUp))

	snap := g.Snapshot()
	if snap.Heading != DirDown || snap.Head != (Point{X: 1, Y: 1}) {
		t.Errorf("first legal change should win: heading=%v head=%v", snap.Heading, snap.Head)
	}
}

func TestImmediatePolicyRequestsTick(t *testing.T) {
	rules := DefaultRules()
	rules.Policy = PolicyImmediate
	g := newGame(t, rules, 1)

	if !g.Offer(core.ActionDown) {
		t.Fatal("accepted change should request a tick")
	}
	g.Step(core.NewInputFrame())
	if g.Snapshot().Head != (Point{X: 0, Y: 1}) {
		t.Fatalf("head = %v, expected (0,1)", g.Snapshot().Head)
	}

	if g.Offer(core.ActionDown) {
		t.Error("keeping the heading is not a change")
	}
	if g.Offer(core.ActionUp) {
		t.Error("reversal should not request a tick")
	}
	if !g.Offer(core.ActionRight) {
		t.Error("turning right should request a tick")
	}
}

func TestTerminalStepIsNoOp(t *testing.T) {
	g := newGame(t, DefaultRules(), 5)
	g.Step(core.FrameOf(core.ActionUp)) // off the top edge
	if g.Status() != StatusLost {
		t.Fatalf("expected loss, got %v", g.Status())
	}

	before := g.Snapshot()
	for i := 0; i < 5; i++ {
		g.Step(core.FrameOf(core.ActionDown))
	}
	if g.Offer(core.ActionDown) {
		t.Error("Offer on a finished round should do nothing")
	}

	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("steps after game over changed the simulation")
	}
	if g.LastOutcome() != OutcomeNone {
		t.Errorf("LastOutcome = %v", g.LastOutcome())
	}
}

func TestRestartRestoresInitialConfiguration(t *testing.T) {
	g := newGame(t, DefaultRules(), 9)
	g.Step(core.FrameOf(core.ActionUp))

	res := g.Step(core.FrameOf(core.ActionRestart))
	if !res.Reset || res.State.GameOver {
		t.Errorf("restart result = %+v", res)
	}

	snap := g.Snapshot()
	if snap.Status != StatusPlaying || snap.Score != 0 || snap.Length != 1 ||
		snap.Head != Origin || snap.Heading != DirRight || snap.Tick != 0 {
		t.Errorf("unexpected state after restart:\n%s", snap)
	}
}

func TestWinOnSmallBoard(t *testing.T) {
	rules := DefaultRules()
	rules.Width, rules.Height = 2, 1
	g := newGame(t, rules, 3)

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || !res.State.Won || res.State.Score != 1 {
		t.Errorf("expected win with score 1, got %+v", res.State)
	}
	if g.LastOutcome() != OutcomeWon {
		t.Errorf("LastOutcome = %v", g.LastOutcome())
	}
}

func TestDelay(t *testing.T) {
	rule := DefaultSpeedRule()

	tests := []struct {
		score int
		want  time.Duration
	}{
		{0, 150 * time.Millisecond},
		{1, 148 * time.Millisecond},
		{50, 50 * time.Millisecond},
		{75, 0},
		{200, 0},
	}
	for _, tc := range tests {
		if got := rule.Delay(tc.score); got != tc.want {
			t.Errorf("Delay(%d) = %v, expected %v", tc.score, got, tc.want)
		}
	}

	fixed := SpeedRule{BaseDelay: 100 * time.Millisecond, Step: 2 * time.Millisecond, Fixed: true}
	if fixed.Delay(40) != 100*time.Millisecond {
		t.Errorf("fixed rule should ignore the score")
	}
}

func TestDelayWhileOver(t *testing.T) {
	g := newGame(t, DefaultRules(), 5)
	if g.Delay() != 150*time.Millisecond {
		t.Errorf("initial delay = %v", g.Delay())
	}
	g.Step(core.FrameOf(core.ActionUp))
	if g.Delay() != 200*time.Millisecond {
		t.Errorf("game over delay = %v, expected 200ms", g.Delay())
	}
}

func TestSnapshotString(t *testing.T) {
	rules := DefaultRules()
	rules.Width, rules.Height = 4, 2
	g := newGame(t, rules, 11)
	g.Step(core.NewInputFrame())

	out := g.Snapshot().String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %q", out)
	}
	if lines[1][1] != 'H' {
		t.Errorf("row 0 = %q, expected the head at x=1", lines[1])
	}
	if strings.Count(out, "*") != 1 {
		t.Errorf("expected one apple in %q", out)
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, DefaultRules(), 444)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Snake  Score: 0") {
		t.Errorf("HUD missing:\n%s", content)
	}
	if !strings.Contains(content, "┌") || !strings.Contains(content, "()") {
		t.Errorf("board border or apple missing:\n%s", content)
	}

	g.Step(core.FrameOf(core.ActionUp))
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("game over overlay missing")
	}
}

func TestRenderWindowTooSmall(t *testing.T) {
	g := newGame(t, DefaultRules(), 1)

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected a too-small notice")
	}
}

func TestIdentity(t *testing.T) {
	g := New("fixed", "Snake (Fixed)", DefaultRules())
	if g.ID() != "fixed" || g.Title() != "Snake (Fixed)" {
		t.Errorf("ID=%q Title=%q", g.ID(), g.Title())
	}
}
