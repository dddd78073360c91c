package core

// MatchSum is the pair total that makes two different digits match.
const MatchSum = 10

// Match reports whether two tile values form a pair.
func Match(a, b int) bool {
	return a+b == MatchSum || a == b
}

// Matches returns the active, linked neighbours of tile i that match it.
// At most one tile per grid position is reported, so a tile reachable
// through two directions appears once.
func (b *Board) Matches(i int) []int {
	if !b.valid(i) || !b.tiles[i].active {
		return nil
	}

	t := &b.tiles[i]
	var out []int
	for _, d := range directions {
		n := t.neighbours[d]
		if n == NoTile {
			continue
		}
		other := &b.tiles[n]
		if !other.active || !Match(t.value, other.value) {
			continue
		}
		if b.containsPos(out, other.pos) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (b *Board) containsPos(indices []int, pos Coord) bool {
	for _, n := range indices {
		if b.tiles[n].pos == pos {
			return true
		}
	}
	return false
}

// HasMatches reports whether any active tile has a match, that is
// whether the union of all tiles' matches is non-empty.
func (b *Board) HasMatches() bool {
	for i := range b.tiles {
		if len(b.Matches(i)) > 0 {
			return true
		}
	}
	return false
}

// Hints returns the active tiles that have at least one match, in order.
func (b *Board) Hints() []int {
	var out []int
	for i := range b.tiles {
		if len(b.Matches(i)) > 0 {
			out = append(out, i)
		}
	}
	return out
}

// MatchableTiles returns the tiles currently flagged as partners for the
// selection.
func (b *Board) MatchableTiles() []int {
	var out []int
	for i := range b.tiles {
		if b.tiles[i].matchable {
			out = append(out, i)
		}
	}
	return out
}

// selectTile flags i as selected and its matches as matchable.
func (b *Board) selectTile(i int) {
	b.tiles[i].selected = true
	for _, n := range b.Matches(i) {
		b.tiles[n].matchable = true
	}
	b.selected = i
}

// deselectTile clears the selection flag of i and its partners.
func (b *Board) deselectTile(i int) {
	b.tiles[i].selected = false
	for _, n := range b.Matches(i) {
		b.tiles[n].matchable = false
	}
	if b.selected == i {
		b.selected = NoTile
	}
}

// deactivate removes tile i from play. Its slot stays in the sequence.
func (b *Board) deactivate(i int) {
	t := &b.tiles[i]
	t.active = false
	t.selected = false
	t.matchable = false
}
