package core

import (
	"math/rand"
	"testing"
)

// snapshotOf builds a snapshot with positions derived from indices.
// A negative value marks an inactive tile holding the absolute value.
func snapshotOf(values ...int) Snapshot {
	snap := make(Snapshot, len(values))
	for i, v := range values {
		pos := ToCoord(i)
		active := v >= 0
		if v < 0 {
			v = -v
		}
		snap[i] = SerializedTile{X: pos.X, Y: pos.Y, Value: v, Active: active}
	}
	return snap
}

func boardFrom(t *testing.T, snap Snapshot, opts ...Option) *Board {
	t.Helper()
	b := New(opts...)
	if err := b.RestoreFrom(snap); err != nil {
		t.Fatalf("RestoreFrom() failed: %v", err)
	}
	return b
}

// scratchNeighbour scans without using any cached link.
func scratchNeighbour(b *Board, i int, d Direction) int {
	if !b.tiles[i].active {
		return NoTile
	}
	for n := i + d.delta(); n >= 0 && n < len(b.tiles); n += d.delta() {
		if !b.tiles[n].active {
			continue
		}
		if d.horizontal() && b.edges == EdgeRowBounded && b.tiles[n].pos.Y != b.tiles[i].pos.Y {
			return NoTile
		}
		return n
	}
	return NoTile
}

// checkInvariants verifies the structural guarantees of the tile graph and
// the selection state.
func checkInvariants(t *testing.T, b *Board) {
	t.Helper()

	selected := 0
	for i, tile := range b.tiles {
		for _, d := range directions {
			n := tile.neighbours[d]
			if want := scratchNeighbour(b, i, d); n != want {
				t.Fatalf("tile %d %s link = %d, from-scratch scan = %d", i, d, n, want)
			}
			if n == NoTile {
				continue
			}
			if !b.tiles[n].active {
				t.Fatalf("tile %d %s links to inactive tile %d", i, d, n)
			}
			if !tile.active {
				t.Fatalf("inactive tile %d has %s link %d", i, d, n)
			}
		}
		if tile.selected {
			selected++
			if b.selected != i {
				t.Fatalf("tile %d selected but board selection is %d", i, b.selected)
			}
		}
	}
	if selected > 1 {
		t.Fatalf("%d tiles selected, want at most 1", selected)
	}
	if selected == 0 && b.selected != NoTile {
		t.Fatalf("board selection %d but no tile flagged", b.selected)
	}

	want := map[int]bool{}
	if b.selected != NoTile {
		for _, n := range b.Matches(b.selected) {
			want[n] = true
		}
	}
	for i, tile := range b.tiles {
		if tile.matchable != want[i] {
			t.Fatalf("tile %d matchable = %v, want %v", i, tile.matchable, want[i])
		}
	}

	for i := range b.tiles {
		got := b.tiles[i].label
		b.classify(i)
		if b.tiles[i].label != got {
			t.Fatalf("tile %d label = %s, recomputed %s", i, got, b.tiles[i].label)
		}
	}
}

// playRandom drives a board with seeded random activations, checking the
// invariants after every step.
func playRandom(t *testing.T, b *Board, seed int64, steps int) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for step := 0; step < steps && !b.Status().Terminal(); step++ {
		hints := b.Hints()
		if len(hints) == 0 {
			t.Fatalf("step %d: playing board has no hints", step)
		}
		b.Activate(hints[rng.Intn(len(hints))])
		checkInvariants(t, b)

		partners := b.MatchableTiles()
		if len(partners) == 0 {
			t.Fatalf("step %d: selection has no partners", step)
		}
		b.Activate(partners[rng.Intn(len(partners))])
		checkInvariants(t, b)
	}
}
