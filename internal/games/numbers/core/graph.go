package core

import "fmt"

// EdgePolicy controls how left/right scans treat row boundaries.
type EdgePolicy int

const (
	// EdgeWrap scans raw sequence indices, so the right neighbour of a
	// row's last tile may be found at the start of the next row.
	EdgeWrap EdgePolicy = iota

	// EdgeRowBounded stops left/right scans at the tile's own row.
	EdgeRowBounded
)

// String returns the config name of the policy.
func (p EdgePolicy) String() string {
	switch p {
	case EdgeWrap:
		return "wrap"
	case EdgeRowBounded:
		return "row_bounded"
	default:
		return "unknown"
	}
}

// ParseEdgePolicy parses a config name. The empty string selects EdgeWrap.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch s {
	case "", "wrap":
		return EdgeWrap, nil
	case "row_bounded", "bounded":
		return EdgeRowBounded, nil
	default:
		return EdgeWrap, fmt.Errorf("core: unknown edge policy %q", s)
	}
}

// resolveNeighbour returns the nearest active tile from i in direction d, or
// NoTile. A cached link in the slot is used as the scan start: every tile
// between i and the cached index was inactive when the link was made, and
// tiles never come back to life.
func (b *Board) resolveNeighbour(i int, d Direction) int {
	step := d.delta()
	n := i + step
	if cached := b.tiles[i].neighbours[d]; cached != NoTile {
		n = cached
	}

	for n >= 0 && n < len(b.tiles) {
		if b.tiles[n].active {
			if d.horizontal() && b.edges == EdgeRowBounded && b.tiles[n].pos.Y != b.tiles[i].pos.Y {
				return NoTile
			}
			return n
		}
		n += step
	}
	return NoTile
}

// relink recomputes the outgoing links of tile i. Inactive tiles lose all
// links. Callers relink every tile whose neighbour set may have changed.
func (b *Board) relink(i int) {
	t := &b.tiles[i]
	if !t.active {
		t.neighbours = noLinks
		return
	}
	for _, d := range directions {
		t.neighbours[d] = b.resolveNeighbour(i, d)
	}
}

// refresh relinks and reclassifies tile i.
func (b *Board) refresh(i int) {
	b.relink(i)
	b.classify(i)
}

// refreshAll relinks and reclassifies every tile.
func (b *Board) refreshAll() {
	for i := range b.tiles {
		b.relink(i)
	}
	for i := range b.tiles {
		b.classify(i)
	}
}

// linked returns the active tiles linked from i, one entry per direction.
func (b *Board) linked(i int) []int {
	t := &b.tiles[i]
	out := make([]int, 0, len(directions))
	for _, d := range directions {
		n := t.neighbours[d]
		if n != NoTile && b.tiles[n].active {
			out = append(out, n)
		}
	}
	return out
}

// Neighbours returns the active tiles currently linked from tile i.
func (b *Board) Neighbours(i int) []int {
	if !b.valid(i) {
		return nil
	}
	return b.linked(i)
}
