package numbers

import "github.com/vovakirdan/tui-numbers/internal/games/numbers/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	ID         string
	Preset     string
	EdgePolicy string
	Cursor     int
	Selected   int
	Moves      int
	Streak     int
	Status     string
	Autopilot  bool
	Tiles      core.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		ID:         g.id,
		Preset:     g.preset.ID,
		EdgePolicy: g.board.EdgePolicy().String(),
		Cursor:     g.cursor,
		Selected:   g.board.Selected(),
		Moves:      g.board.Moves(),
		Streak:     g.board.Streak(),
		Status:     g.board.Status().String(),
		Autopilot:  g.autoOn,
		Tiles:      g.board.Serialize(),
	}
}
