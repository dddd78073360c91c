package core

import "strconv"

// Status is the lifecycle state of a board.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game has ended.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Outcome describes what a single activation did.
type Outcome int

const (
	// OutcomeIgnored means the activation changed nothing.
	OutcomeIgnored Outcome = iota
	// OutcomeSelected means a tile became selected from idle.
	OutcomeSelected
	// OutcomeReselected means the selection moved to another tile.
	OutcomeReselected
	// OutcomeMatched means a pair was removed.
	OutcomeMatched
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSelected:
		return "selected"
	case OutcomeReselected:
		return "reselected"
	case OutcomeMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// Result is returned by Activate.
type Result struct {
	Outcome Outcome
	Status  Status
	// Pair holds the removed tiles (selected first) when Outcome is
	// OutcomeMatched, and NoTile otherwise.
	Pair [2]int
	// Grown is the number of tiles appended by refill during this call.
	Grown int
}

// Board owns the tile sequence and every piece of game state.
// A Board is not safe for concurrent use.
type Board struct {
	tiles    []Tile
	selected int
	moves    int
	streak   int
	status   Status
	edges    EdgePolicy
	history  *History

	onTerminal func(Status)
}

// Option configures a Board.
type Option func(*Board)

// WithEdgePolicy sets how left/right neighbours treat row boundaries.
func WithEdgePolicy(p EdgePolicy) Option {
	return func(b *Board) {
		b.edges = p
	}
}

// WithTerminalHandler registers fn to be called once when the board
// reaches StatusWon or StatusLost.
func WithTerminalHandler(fn func(Status)) Option {
	return func(b *Board) {
		b.onTerminal = fn
	}
}

// New creates a board with the standard opening layout: one tile per
// decimal digit of 1..9 followed by 10..18.
func New(opts ...Option) *Board {
	b := &Board{
		selected: NoTile,
		history:  NewHistory(HistoryLimit),
	}
	for _, opt := range opts {
		opt(b)
	}

	for n := 1; n <= 2*RowWidth; n++ {
		for _, r := range strconv.Itoa(n) {
			b.appendTile(int(r - '0'))
		}
	}
	b.refreshAll()
	return b
}

// appendTile adds an active tile at the end of the sequence.
func (b *Board) appendTile(value int) {
	b.tiles = append(b.tiles, newTile(value, ToCoord(len(b.tiles)), true))
}

func (b *Board) valid(i int) bool {
	return i >= 0 && i < len(b.tiles)
}

// Len returns the number of tiles in the sequence, active or not.
func (b *Board) Len() int {
	return len(b.tiles)
}

// Tile returns a copy of tile i.
func (b *Board) Tile(i int) (Tile, bool) {
	if !b.valid(i) {
		return Tile{}, false
	}
	return b.tiles[i], true
}

// Tiles returns a copy of the whole sequence.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// IndexAt returns the index of the tile at pos, or NoTile.
func (b *Board) IndexAt(pos Coord) int {
	if pos.X < 0 || pos.X >= RowWidth || pos.Y < 0 {
		return NoTile
	}
	i := ToIndex(pos)
	if !b.valid(i) {
		return NoTile
	}
	return i
}

// ActiveCount returns the number of tiles still in play.
func (b *Board) ActiveCount() int {
	n := 0
	for i := range b.tiles {
		if b.tiles[i].active {
			n++
		}
	}
	return n
}

// Selected returns the selected tile index, or NoTile.
func (b *Board) Selected() int { return b.selected }

// Moves returns the number of matches made, minus undone ones.
func (b *Board) Moves() int { return b.moves }

// Streak returns the current run of refills that produced no match.
func (b *Board) Streak() int { return b.streak }

// Status returns the lifecycle state.
func (b *Board) Status() Status { return b.status }

// EdgePolicy returns the configured edge policy.
func (b *Board) EdgePolicy() EdgePolicy { return b.edges }

// HistoryLen returns the number of undo steps available.
func (b *Board) HistoryLen() int { return b.history.Len() }

// Activate is the single mutation entrypoint for player input. It selects
// a tile, moves the selection, or resolves a match against the selected
// tile. Activations on a finished board, on unknown indices and on tiles
// without matches are ignored.
func (b *Board) Activate(i int) Result {
	res := Result{Outcome: OutcomeIgnored, Status: b.status, Pair: [2]int{NoTile, NoTile}}
	if b.status.Terminal() || !b.valid(i) {
		return res
	}

	if b.tiles[i].matchable && b.selected != NoTile && b.selected != i {
		return b.resolveMatch(b.selected, i)
	}

	if len(b.Matches(i)) == 0 {
		return res
	}

	res.Outcome = OutcomeSelected
	var affected []int
	if prev := b.selected; prev != NoTile {
		res.Outcome = OutcomeReselected
		b.deselectTile(prev)
		affected = append(affected, prev)
		affected = append(affected, b.linked(prev)...)
	}

	b.selectTile(i)
	affected = append(affected, i)
	affected = append(affected, b.linked(i)...)
	for _, n := range affected {
		b.refresh(n)
	}
	return res
}

// resolveMatch removes the pair (t, u), relinks the surrounding tiles and
// runs refill evaluation. A snapshot is pushed before anything changes.
func (b *Board) resolveMatch(t, u int) Result {
	b.history.Push(b.Serialize())
	b.moves++

	b.deselectTile(t)
	affected := append(b.linked(t), b.linked(u)...)
	b.deactivate(t)
	b.deactivate(u)
	affected = append(affected, t, u)
	for _, n := range affected {
		b.refresh(n)
	}

	before := len(b.tiles)
	status := b.Evaluate()
	return Result{
		Outcome: OutcomeMatched,
		Status:  status,
		Pair:    [2]int{t, u},
		Grown:   len(b.tiles) - before,
	}
}

// Serialize captures every tile's position, value and active flag.
func (b *Board) Serialize() Snapshot {
	snap := make(Snapshot, len(b.tiles))
	for i, t := range b.tiles {
		snap[i] = SerializedTile{X: t.pos.X, Y: t.pos.Y, Value: t.value, Active: t.active}
	}
	return snap
}

// RestoreFrom replaces the tile sequence with the snapshot contents. The
// selection is cleared and the board returns to StatusPlaying; the move
// counter and undo history are kept. RestoreFrom does not run refill
// evaluation; call Evaluate for boards that may have no matches.
func (b *Board) RestoreFrom(snap Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	b.load(snap)
	return nil
}

// StepBack undoes the most recent match. It reports false when there is
// nothing to undo. Undo is allowed after the game has ended.
func (b *Board) StepBack() bool {
	snap, ok := b.history.Pop()
	if !ok {
		return false
	}
	b.load(snap)
	b.moves--
	return true
}

// load rebuilds the sequence from snap, taking positions from the entries.
func (b *Board) load(snap Snapshot) {
	tiles := make([]Tile, len(snap))
	for i, st := range snap {
		tiles[i] = newTile(st.Value, C(st.X, st.Y), st.Active)
	}
	b.tiles = tiles
	b.selected = NoTile
	b.status = StatusPlaying
	b.streak = 0
	b.refreshAll()
}

// finish moves the board into a terminal status.
func (b *Board) finish(s Status) {
	b.status = s
	if b.onTerminal != nil {
		b.onTerminal(s)
	}
}
