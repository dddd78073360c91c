// Package numbers provides the Numbers tile-matching puzzle for the
// platform: cursor handling, input routing, autopilot and rendering around
// the board engine in the core subpackage.
package numbers

import (
	"fmt"
	"time"

	platformcore "github.com/vovakirdan/tui-numbers/internal/core"
	"github.com/vovakirdan/tui-numbers/internal/games/numbers/boards"
	"github.com/vovakirdan/tui-numbers/internal/games/numbers/core"
	"github.com/vovakirdan/tui-numbers/internal/registry"
)

// Variant IDs.
const (
	IDWrap    = "numbers"
	IDBounded = "numbers_bounded"
)

// Game implements the Numbers puzzle.
type Game struct {
	id      string
	bounded bool

	board  *core.Board
	preset boards.Preset
	pilot  *Autopilot

	// Screen dimensions
	screenW int
	screenH int

	// Status
	tick     uint64
	round    int
	paused   bool
	tooSmall bool
	message  string

	// Cursor and viewport
	cursor    int // Tile index
	scroll    int
	collapse  bool
	showHints bool

	// Autopilot
	autoOn    bool
	autoTicks int
	autoEvery int
}

func init() {
	registry.Register(IDWrap, "left/right neighbours wrap between rows", func() registry.Game {
		return New()
	})
	registry.Register(IDBounded, "left/right neighbours stop at the row edge", func() registry.Game {
		return NewBounded()
	})
}

// New creates a game whose horizontal neighbours wrap between rows.
func New() *Game {
	return &Game{id: IDWrap}
}

// NewBounded creates a game whose horizontal neighbours stay within a row.
func NewBounded() *Game {
	return &Game{id: IDBounded, bounded: true}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.bounded {
		return "Numbers (Row Bounded)"
	}
	return "Numbers"
}

// Reset starts a new game from the configured preset.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.pilot = NewAutopilot(seed)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.collapse = cfg.CollapseRows
	g.autoEvery = cfg.AutopilotTicks
	if g.autoEvery < 1 {
		g.autoEvery = 1
	}
	g.message = ""

	preset, err := boards.NewLoader(cfg.PresetDir).LoadByID(cfg.Board)
	if err != nil {
		preset = boards.Preset{ID: boards.DefaultID, Name: "Classic"}
		g.message = err.Error()
	}
	switch {
	case g.bounded:
		preset.EdgePolicy = core.EdgeRowBounded.String()
	case cfg.EdgePolicy != "":
		preset.EdgePolicy = cfg.EdgePolicy
	}
	g.preset = preset

	g.newRound()
	g.checkScreenSize()
}

// newRound rebuilds the board from the current preset.
func (g *Game) newRound() {
	b, err := g.preset.NewBoard()
	if err != nil {
		b = core.New()
		g.message = err.Error()
	}
	g.board = b
	g.round++
	g.tick = 0
	g.paused = false
	g.autoOn = false
	g.autoTicks = 0
	g.showHints = false
	g.scroll = 0
	g.cursor = 0
	g.ensureVisible()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minWidth || g.screenH < minHeight
}

// Resize adapts the viewport to a new screen size and keeps the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
	if g.board != nil {
		g.ensureVisible()
	}
}

// Board returns the engine board of the current round.
func (g *Game) Board() *core.Board {
	return g.board
}

// Cursor returns the tile index under the cursor.
func (g *Game) Cursor() int {
	return g.cursor
}

// Autopilot reports whether the autopilot is playing.
func (g *Game) Autopilot() bool {
	return g.autoOn
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionRestart) {
		g.message = ""
		g.newRound()
		return platformcore.StepResult{State: g.State(), Changed: true}
	}

	changed := false

	if in.Has(platformcore.ActionAutopilot) {
		g.autoOn = !g.autoOn && !g.board.Status().Terminal()
		g.autoTicks = 0
	}

	switch {
	case in.Has(platformcore.ActionUp):
		g.moveRow(-1)
	case in.Has(platformcore.ActionDown):
		g.moveRow(1)
	case in.Has(platformcore.ActionLeft):
		g.moveCol(-1)
	case in.Has(platformcore.ActionRight):
		g.moveCol(1)
	}

	if in.Has(platformcore.ActionHint) {
		g.jumpToHint()
	}

	if in.Has(platformcore.ActionUndo) {
		if g.board.StepBack() {
			g.message = "Undone"
			changed = true
		} else {
			g.message = "Nothing to undo"
		}
	}

	if in.Clicked {
		if i := g.tileAt(in.Click); i != core.NoTile {
			g.cursor = i
			changed = g.activate(i) || changed
		}
	}

	if in.Has(platformcore.ActionConfirm) {
		changed = g.activate(g.cursor) || changed
	}

	if g.autoOn {
		changed = g.stepAutopilot() || changed
	}

	g.clampCursor()
	g.ensureVisible()
	return platformcore.StepResult{State: g.State(), Changed: changed}
}

// activate forwards an activation to the board and records the outcome.
func (g *Game) activate(i int) bool {
	res := g.board.Activate(i)
	if res.Outcome == core.OutcomeIgnored {
		return false
	}
	g.describe(res)
	return true
}

// stepAutopilot runs one autopilot activation every autoEvery ticks.
func (g *Game) stepAutopilot() bool {
	if g.board.Status().Terminal() {
		g.autoOn = false
		return false
	}

	g.autoTicks++
	if g.autoTicks < g.autoEvery {
		return false
	}
	g.autoTicks = 0

	i, res, ok := g.pilot.Step(g.board)
	if !ok {
		g.autoOn = false
		return false
	}
	g.cursor = i
	g.describe(res)
	if res.Status.Terminal() {
		g.autoOn = false
	}
	return true
}

// describe sets the status line message for an activation result.
func (g *Game) describe(res core.Result) {
	switch res.Outcome {
	case core.OutcomeMatched:
		g.showHints = false
		if res.Grown > 0 {
			g.message = fmt.Sprintf("Refilled: +%d tiles", res.Grown)
		} else {
			g.message = ""
		}
	case core.OutcomeSelected, core.OutcomeReselected:
		g.message = ""
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.board == nil {
		return platformcore.GameState{Outcome: core.StatusPlaying.String()}
	}
	status := g.board.Status()
	return platformcore.GameState{
		Score:    g.board.Moves() * 2,
		Moves:    g.board.Moves(),
		Tiles:    g.board.Len(),
		Outcome:  status.String(),
		Round:    g.round,
		GameOver: status.Terminal(),
		Won:      status == core.StatusWon,
		Paused:   g.paused || g.tooSmall,
	}
}
