package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-numbers/internal/core"
	"github.com/vovakirdan/tui-numbers/internal/registry"
	"github.com/vovakirdan/tui-numbers/internal/storage"
)

// screen shown by a session.
type screen int

const (
	screenMenu screen = iota
	screenGame
	screenResults
)

// SessionModel manages the full flow of one player: menu -> game or
// results -> menu. It is the top-level model for SSH sessions.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	opts     Options
	current  screen
	menu     MenuModel
	game     *Model
	results  *ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, opts Options) SessionModel {
	opts.InMenu = true
	return SessionModel{
		store:  store,
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenResults:
		return m.updateResults(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	// The menu quits its own program on a choice; a session swallows that.
	case m.menu.WantsScoreboard():
		results := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.results = &results
		m.current = screenResults
		return m, nil

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().GameID)
		if err != nil {
			m.menu = NewMenuModel(m.config)
			return m, nil
		}

		cfg := m.menu.Config()
		cfg.ScreenW = m.config.ScreenW
		cfg.ScreenH = m.config.ScreenH
		cfg.Seed = time.Now().UnixNano()
		m.config.Board = cfg.Board

		gameModel := NewModel(game, m.store, cfg, m.opts)
		m.game = &gameModel
		m.current = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.toMenu()
		return m, nil
	}

	return m, cmd
}

// updateResults handles updates when the results table is shown.
func (m SessionModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.results.Update(msg)
	if results, ok := newModel.(ScoreboardModel); ok {
		m.results = &results
	}

	if m.results.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.results.IsGoingBack() {
		m.toMenu()
		return m, nil
	}

	return m, cmd
}

// toMenu drops the current screen and shows a fresh menu.
func (m *SessionModel) toMenu() {
	m.game = nil
	m.results = nil
	m.current = screenMenu
	m.menu = NewMenuModel(m.config)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenResults:
		return m.results.View()
	default:
		return m.menu.View()
	}
}
