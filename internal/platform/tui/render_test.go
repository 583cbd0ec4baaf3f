package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '█', core.ColorGreen)
	s.SetColored(3, 0, '█', core.ColorGreen)
	s.DrawTextColored(0, 1, "()", core.ColorBrightRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "██") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "()") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 3); got != "abcdef" {
		t.Errorf("centerText overflow = %q", got)
	}
}
