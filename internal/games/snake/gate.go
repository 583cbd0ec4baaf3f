package snake

import "fmt"

// Policy selects how accepted direction changes turn into ticks.
type Policy string

const (
	// PolicyQueued buffers the first accepted change and applies it on the
	// next scheduled tick. Extra key presses in the same tick are dropped.
	PolicyQueued Policy = "queued"
	// PolicyImmediate runs an extra tick for every accepted change, so the
	// snake speeds up while keys are being pressed.
	PolicyImmediate Policy = "immediate"
)

// ParsePolicy validates a policy name. Empty means queued.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyQueued:
		return PolicyQueued, nil
	case PolicyImmediate:
		return PolicyImmediate, nil
	}
	return "", fmt.Errorf("snake: unknown input policy %q", s)
}

// CanTurn reports whether requested is a legal heading when moving in
// current. Direct reversal is rejected; keeping the heading is allowed.
func CanTurn(current, requested Direction) bool {
	return requested != DirNone && requested != current.Opposite()
}

// Gate filters direction requests and holds at most one pending change.
type Gate struct {
	policy  Policy
	pending Direction
}

// NewGate creates a gate for the given policy.
func NewGate(p Policy) *Gate {
	if p == "" {
		p = PolicyQueued
	}
	return &Gate{policy: p}
}

// Policy returns the configured interaction policy.
func (g *Gate) Policy() Policy {
	return g.policy
}

// Offer proposes a new heading. It returns true only when the request is a
// legal change that is now pending. Requests that keep the current heading
// are legal but change nothing; once a change is pending, later requests
// are dropped until Take.
func (g *Gate) Offer(current, requested Direction) bool {
	if !CanTurn(current, requested) || requested == current {
		return false
	}
	if g.pending != DirNone {
		return false
	}
	g.pending = requested
	return true
}

// Take consumes the pending change, falling back to current.
func (g *Gate) Take(current Direction) Direction {
	if g.pending == DirNone {
		return current
	}
	d := g.pending
	g.pending = DirNone
	return d
}

// Clear drops any buffered change.
func (g *Gate) Clear() {
	g.pending = DirNone
}
