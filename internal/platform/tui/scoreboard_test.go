package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestScoreboardLoadsAndSwitches(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	store.SaveScore(storage.Round{GameID: "classic", Score: 3, Length: 4})
	store.SaveScore(storage.Round{GameID: "classic", Score: 11, Length: 12, Won: true})

	games := testRegistry(t).List()
	m := NewScoreboardModel(games, store, 100, 30)

	if len(m.scores) != 2 || m.scores[0].Score != 11 {
		t.Fatalf("scores = %+v", m.scores)
	}
	view := m.View()
	if !strings.Contains(view, "SESSION SCORES - Snake") || !strings.Contains(view, "#1") {
		t.Errorf("view:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.games[m.gameCursor].ID != "fixed" {
		t.Errorf("tab moved to %q", m.games[m.gameCursor].ID)
	}
	if len(m.scores) != 0 {
		t.Errorf("fixed should have no scores, got %d", len(m.scores))
	}
	if !strings.Contains(m.View(), "No scores this session yet") {
		t.Error("empty message missing")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.games[m.gameCursor].ID != "classic" {
		t.Errorf("shift+tab moved to %q", m.games[m.gameCursor].ID)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(testRegistry(t).List(), nil, 60, 20)
	if len(m.scores) != 0 {
		t.Error("no store should mean no scores")
	}
	if !strings.Contains(m.View(), "< Snake >") {
		t.Errorf("narrow layout missing variant name:\n%s", m.View())
	}
}

func TestScoreboardStatsLine(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	store.SaveScore(storage.Round{GameID: "classic", Score: 2})
	store.SaveScore(storage.Round{GameID: "classic", Score: 6, Won: true})
	store.SaveScore(storage.Round{GameID: "fixed", Score: 5})

	m := NewScoreboardModel(testRegistry(t).List(), store, 100, 30)

	want := "Rounds: 2  Wins: 1  Best: 6  Avg: 4.0  (session: 3)"
	if got := m.statsLine(); got != want {
		t.Errorf("statsLine() = %q, expected %q", got, want)
	}
	if !strings.Contains(m.View(), want) {
		t.Errorf("stats line missing from view:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	want = "Rounds: 1  Wins: 0  Best: 5  Avg: 5.0  (session: 3)"
	if got := m.statsLine(); got != want {
		t.Errorf("statsLine() after tab = %q, expected %q", got, want)
	}
}

func TestScoreboardStatsLineWithoutStore(t *testing.T) {
	m := NewScoreboardModel(testRegistry(t).List(), nil, 100, 30)
	if got := m.statsLine(); got != "" {
		t.Errorf("statsLine() = %q, expected empty without a store", got)
	}
}
