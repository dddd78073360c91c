package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-numbers/internal/games/numbers"
	"github.com/vovakirdan/tui-numbers/internal/storage"
)

func TestScoreboardLoadsResults(t *testing.T) {
	store := openStore(t)
	store.SaveResult(numbers.IDWrap, storage.OutcomeWon, 30, 27)
	store.SaveResult(numbers.IDWrap, storage.OutcomeLost, 12, 64)
	store.SaveResult(numbers.IDBounded, storage.OutcomeWon, 21, 36)

	m := NewScoreboardModel(store, 100, 30)

	// All variants first
	if len(m.results) != 3 || m.stats.Games != 3 || m.stats.BestWin != 21 {
		t.Fatalf("all: %d results, stats %+v", len(m.results), m.stats)
	}
	if len(m.table.Rows()) != 3 {
		t.Errorf("table rows = %d", len(m.table.Rows()))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.currentGame().ID != numbers.IDWrap {
		t.Fatalf("tab selected %q", m.currentGame().ID)
	}
	if len(m.results) != 2 || m.stats.Wins != 1 || m.stats.Losses != 1 || m.stats.BestWin != 30 {
		t.Errorf("numbers: %d results, stats %+v", len(m.results), m.stats)
	}
	if view := m.View(); !strings.Contains(view, "RESULTS - Numbers") || !strings.Contains(view, "Win rate: 50%") {
		t.Errorf("view = %q", view)
	}

	// shift+tab wraps back to the start
	for range 2 {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
		m = next.(ScoreboardModel)
	}
	if m.currentGame().ID != numbers.IDBounded {
		t.Errorf("shift+tab selected %q", m.currentGame().ID)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No games recorded yet.") {
		t.Error("empty message not shown")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}
