package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-numbers/internal/core"
	"github.com/vovakirdan/tui-numbers/internal/games/numbers"
	"github.com/vovakirdan/tui-numbers/internal/storage"
)

// duoPreset is a board cleared by one match.
const duoPreset = `id: duo
name: Duo
tiles:
  - {x: 0, y: 0, v: 1, active: true}
  - {x: 1, y: 0, v: 9, active: true}
`

func testRuntime(t *testing.T) core.RuntimeConfig {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "duo.yaml"), []byte(duoPreset), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	cfg.PresetDir = dir
	return cfg
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(m Model) Model {
	return update(m, TickMsg(time.Now()))
}

// keys sends each key followed by a tick.
func keys(m Model, msgs ...tea.KeyMsg) Model {
	for _, msg := range msgs {
		m = tick(update(m, msg))
	}
	return m
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
)

func newDuoModel(t *testing.T, store *storage.Store, opts Options) (Model, *numbers.Game) {
	t.Helper()
	cfg := testRuntime(t)
	cfg.Board = "duo"
	g := numbers.New()
	m := NewModel(g, store, cfg, opts)
	m.Init()
	return m, g
}

func TestModelKeysDriveGame(t *testing.T) {
	m, g := newDuoModel(t, nil, Options{})

	m = keys(m, keySpace)
	if g.Board().Selected() != 0 {
		t.Fatalf("selected = %d, want 0", g.Board().Selected())
	}
	m = keys(m, keyRight, keySpace)
	st := m.State()
	if !st.GameOver || !st.Won || st.Moves != 1 {
		t.Fatalf("state = %+v, want won after one move", st)
	}
}

func TestModelSavesOncePerRound(t *testing.T) {
	store := openStore(t)
	m, _ := newDuoModel(t, store, Options{})

	m = keys(m, keySpace, keyRight, keySpace)
	m = tick(m)
	m = tick(m)

	results, err := store.RecentResults("", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if r := results[0]; r.GameID != numbers.IDWrap || r.Outcome != storage.OutcomeWon || r.Moves != 1 || r.Tiles != 2 {
		t.Errorf("result = %+v", r)
	}

	// Undo and win again in the same round.
	m = keys(m, runeKey('u'))
	if m.State().GameOver {
		t.Fatal("undo should resume play")
	}
	m = keys(m, keySpace, keyLeft, keySpace)
	if !m.State().Won {
		t.Fatal("second win not reached")
	}
	if results, _ := store.RecentResults("", 10); len(results) != 1 {
		t.Errorf("same round recorded %d times", len(results))
	}

	// A new round is recorded separately.
	m = keys(m, runeKey('r'), keySpace, keyRight, keySpace)
	if results, _ := store.RecentResults("", 10); len(results) != 2 {
		t.Errorf("results after restart = %d, want 2", len(results))
	}
}

func TestModelCoalescesRepeats(t *testing.T) {
	m, g := newDuoModel(t, nil, Options{Debounce: time.Hour})

	// The second confirm falls inside the window and would have matched.
	m = keys(m, keySpace, keyRight, keySpace)
	if m.State().GameOver {
		t.Fatal("repeated confirm was not dropped")
	}
	if g.Board().Selected() != 0 {
		t.Errorf("selected = %d, want 0", g.Board().Selected())
	}

	// Movement is not coalesced.
	m = keys(m, keyLeft, keyRight, keyLeft)
	if g.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", g.Cursor())
	}
}

func TestModelMouseClick(t *testing.T) {
	m, g := newDuoModel(t, nil, Options{})

	// Real coordinates come from the renderer; click each rendered digit.
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	var points []core.Point
	for y := range screen.Height() {
		row := screen.Row(y)
		if i := strings.Index(row, "[1]"); i >= 0 {
			points = append(points, core.Point{X: i + 1, Y: y})
			if j := strings.Index(row, "9"); j >= 0 {
				points = append(points, core.Point{X: j, Y: y})
			}
		}
	}
	if len(points) != 2 {
		t.Fatalf("board not found on screen: %q", screen.String())
	}

	for _, p := range points {
		m = update(m, tea.MouseMsg{X: p.X, Y: p.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		m = tick(m)
	}
	if !m.State().Won {
		t.Errorf("two clicks should clear the duo board, state = %+v", m.State())
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, g := newDuoModel(t, nil, Options{})
	m = keys(m, keySpace)
	board := g.Board()

	m = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.Board() != board {
		t.Error("resize restarted the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m, _ := newDuoModel(t, nil, Options{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !next.(Model).IsQuitting() {
		t.Error("back outside a menu should quit")
	}

	m, _ = newDuoModel(t, nil, Options{InMenu: true})
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil || !next.(Model).BackToMenu() {
		t.Error("back inside a menu should return to it")
	}

	next, cmd = m.Update(runeKey('q'))
	if cmd == nil || !next.(Model).IsQuitting() {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newDuoModel(t, nil, Options{})
	m = tick(m)
	view := m.View()
	if !strings.Contains(view, "N U M B E R S") {
		t.Errorf("view missing title: %q", view)
	}
}
