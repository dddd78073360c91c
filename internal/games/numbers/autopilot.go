package numbers

import (
	"math/rand"

	"github.com/vovakirdan/tui-numbers/internal/games/numbers/core"
)

// DefaultMaxMoves bounds Autopilot.Play when the caller gives no limit.
const DefaultMaxMoves = 1000

// Autopilot plays a board by picking random hinted tiles and random
// partners. It holds no reference to a board between calls.
type Autopilot struct {
	rng *rand.Rand
}

// NewAutopilot creates an autopilot with a deterministic seed.
func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{rng: rand.New(rand.NewSource(seed))}
}

// Step performs a single activation: a random partner of the current
// selection, or a random hinted tile when nothing is selected. It returns
// the activated index and reports false when there was nothing to do.
func (a *Autopilot) Step(b *core.Board) (int, core.Result, bool) {
	if b.Status().Terminal() {
		return core.NoTile, core.Result{Status: b.Status()}, false
	}

	candidates := b.MatchableTiles()
	if b.Selected() == core.NoTile || len(candidates) == 0 {
		candidates = b.Hints()
	}
	if len(candidates) == 0 {
		return core.NoTile, core.Result{Status: b.Status()}, false
	}

	i := candidates[a.rng.Intn(len(candidates))]
	return i, b.Activate(i), true
}

// Move selects and resolves one pair.
func (a *Autopilot) Move(b *core.Board) (core.Result, bool) {
	for attempt := 0; attempt < 2; attempt++ {
		_, res, ok := a.Step(b)
		if !ok {
			return res, false
		}
		if res.Outcome == core.OutcomeMatched {
			return res, true
		}
	}
	return core.Result{Status: b.Status()}, false
}

// Play makes moves until the board finishes or maxMoves pairs have been
// removed. A non-positive maxMoves means DefaultMaxMoves.
func (a *Autopilot) Play(b *core.Board, maxMoves int) core.Status {
	if maxMoves <= 0 {
		maxMoves = DefaultMaxMoves
	}
	for n := 0; n < maxMoves; n++ {
		if _, ok := a.Move(b); !ok {
			break
		}
	}
	return b.Status()
}
