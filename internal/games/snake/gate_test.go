package snake

import "testing"

func TestCanTurnRejectsReversal(t *testing.T) {
	tests := []struct {
		current, requested Direction
		want               bool
	}{
		{DirUp, DirDown, false},
		{DirDown, DirUp, false},
		{DirLeft, DirRight, false},
		{DirRight, DirLeft, false},
		{DirUp, DirLeft, true},
		{DirUp, DirRight, true},
		{DirLeft, DirUp, true},
		{DirRight, DirDown, true},
		{DirRight, DirRight, true}, // no change is legal
		{DirRight, DirNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.current.String()+"->"+tc.requested.String(), func(t *testing.T) {
			if got := CanTurn(tc.current, tc.requested); got != tc.want {
				t.Errorf("CanTurn(%v, %v) = %v, expected %v", tc.current, tc.requested, got, tc.want)
			}
		})
	}
}

func TestGateFirstChangeWins(t *testing.T) {
	g := NewGate(PolicyQueued)

	if g.Offer(DirRight, DirLeft) {
		t.Error("reversal should be rejected")
	}
	if g.Offer(DirRight, DirRight) {
		t.Error("no change should not occupy the buffer")
	}
	if !g.Offer(DirRight, DirDown) {
		t.Fatal("Down should be accepted")
	}
	if g.Offer(DirRight, DirUp) {
		t.Error("second change in the same tick should be dropped")
	}

	if got := g.Take(DirRight); got != DirDown {
		t.Errorf("Take() = %v, expected Down", got)
	}
	if got := g.Take(DirDown); got != DirDown {
		t.Errorf("Take() with nothing pending should keep the heading, got %v", got)
	}
}

func TestGateClear(t *testing.T) {
	g := NewGate(PolicyImmediate)
	g.Offer(DirUp, DirLeft)
	g.Clear()
	if got := g.Take(DirUp); got != DirUp {
		t.Errorf("Take() after Clear = %v, expected the current heading", got)
	}
	if g.Policy() != PolicyImmediate {
		t.Errorf("Policy() = %v", g.Policy())
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", PolicyQueued, false},
		{"queued", PolicyQueued, false},
		{"immediate", PolicyImmediate, false},
		{"eager", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePolicy(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParsePolicy(%q) = (%v, %v)", tc.in, got, err)
		}
	}
}
