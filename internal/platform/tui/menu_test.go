package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-numbers/internal/games/numbers"
	"github.com/vovakirdan/tui-numbers/internal/storage"
)

func menuUpdate(m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

func TestMenuListsVariantsAndPresets(t *testing.T) {
	m := NewMenuModel(testRuntime(t))

	if len(m.games) != 2 || m.games[0].ID != numbers.IDWrap || m.games[1].ID != numbers.IDBounded {
		t.Fatalf("games = %+v", m.games)
	}
	var ids []string
	for _, p := range m.presets {
		ids = append(ids, p.ID)
	}
	if got := strings.Join(ids, ","); got != "classic,duo,infinite" {
		t.Errorf("presets = %s", got)
	}

	view := m.View()
	for _, want := range []string{"N U M B E R S", "Numbers (Row Bounded)", "Board: < Classic >"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(testRuntime(t))

	m, _ = menuUpdate(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuUpdate(m, tea.KeyMsg{Type: tea.KeyDown}) // Stays on the last item
	m, _ = menuUpdate(m, tea.KeyMsg{Type: tea.KeyLeft}) // Wraps to the last preset
	m, cmd := menuUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("select should quit the menu program")
	}
	sel := m.Selected()
	if sel == nil || sel.GameID != numbers.IDBounded || sel.Board != "infinite" {
		t.Fatalf("selected = %+v", sel)
	}
	if m.Config().Board != "infinite" {
		t.Errorf("config board = %q", m.Config().Board)
	}
}

func TestMenuStartsOnConfiguredPreset(t *testing.T) {
	cfg := testRuntime(t)
	cfg.Board = "duo"
	m := NewMenuModel(cfg)
	if m.presets[m.preset].ID != "duo" {
		t.Errorf("initial preset = %s", m.presets[m.preset].ID)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(testRuntime(t))
	m, _ = menuUpdate(m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should request the results table")
	}

	m = NewMenuModel(testRuntime(t))
	m, _ = menuUpdate(m, runeKey('q'))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit")
	}
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	cfg := testRuntime(t)
	cfg.Board = "duo"
	s := NewSessionModel(store, cfg, Options{})

	step := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	if cmd := step(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Fatal("starting a game should schedule a tick")
	}
	if s.current != screenGame || s.game == nil {
		t.Fatalf("session did not enter the game: %v", s.current)
	}

	// Clear the duo board.
	for _, k := range []tea.KeyMsg{keySpace, keyRight, keySpace} {
		step(k)
		step(TickMsg{})
	}
	if !s.game.State().Won {
		t.Fatalf("game state = %+v", s.game.State())
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.current != screenMenu || s.game != nil {
		t.Fatal("esc should return to the menu")
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.current != screenResults {
		t.Fatal("tab should open the results table")
	}
	if len(s.results.results) != 1 || s.results.results[0].Outcome != storage.OutcomeWon {
		t.Errorf("results = %+v", s.results.results)
	}
	if !strings.Contains(s.View(), "RESULTS") {
		t.Error("results view not shown")
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.current != screenMenu {
		t.Fatal("esc should leave the results table")
	}

	if cmd := step(runeKey('q')); cmd == nil || !s.quitting {
		t.Error("q should end the session")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	s := NewSessionModel(nil, testRuntime(t), Options{})
	next, _ := s.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	s = next.(SessionModel)
	if s.config.ScreenW != 100 || s.menu.width != 100 {
		t.Errorf("size not tracked: config %d, menu %d", s.config.ScreenW, s.menu.width)
	}
}
