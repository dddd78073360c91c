package core

import (
	"errors"
	"reflect"
	"testing"
)

func values(b *Board) []int {
	out := make([]int, b.Len())
	for i, t := range b.tiles {
		out[i] = t.value
	}
	return out
}

func TestNewLayout(t *testing.T) {
	b := New()

	want := []int{
		1, 2, 3, 4, 5, 6, 7, 8, 9,
		1, 0, 1, 1, 1, 2, 1, 3, 1,
		4, 1, 5, 1, 6, 1, 7, 1, 8,
	}
	if got := values(b); !reflect.DeepEqual(got, want) {
		t.Fatalf("values = %v, want %v", got, want)
	}

	for i, tile := range b.tiles {
		if !tile.active {
			t.Errorf("tile %d inactive on a new board", i)
		}
		if tile.pos != ToCoord(i) {
			t.Errorf("tile %d pos = %v, want %v", i, tile.pos, ToCoord(i))
		}
	}
	if b.Status() != StatusPlaying {
		t.Errorf("Status() = %s, want playing", b.Status())
	}
	if b.Selected() != NoTile {
		t.Errorf("Selected() = %d, want NoTile", b.Selected())
	}
	checkInvariants(t, b)
}

func TestActivateSelection(t *testing.T) {
	b := New()

	if res := b.Activate(0); res.Outcome != OutcomeSelected {
		t.Fatalf("Activate(0) outcome = %s, want selected", res.Outcome)
	}
	if got := b.MatchableTiles(); !reflect.DeepEqual(got, []int{9}) {
		t.Fatalf("MatchableTiles() = %v, want [9]", got)
	}
	checkInvariants(t, b)

	// Tile 2 (3) has no matches: the selection must survive.
	if got := b.Matches(2); len(got) != 0 {
		t.Fatalf("Matches(2) = %v, want none", got)
	}
	if res := b.Activate(2); res.Outcome != OutcomeIgnored {
		t.Errorf("Activate(2) outcome = %s, want ignored", res.Outcome)
	}
	if b.Selected() != 0 {
		t.Errorf("Selected() = %d after ignored activation, want 0", b.Selected())
	}

	// Tile 11 matches 12 but is not a partner of 0: selection moves.
	if res := b.Activate(11); res.Outcome != OutcomeReselected {
		t.Fatalf("Activate(11) outcome = %s, want reselected", res.Outcome)
	}
	if b.tiles[0].selected || b.tiles[9].matchable {
		t.Error("previous selection state not cleared")
	}
	checkInvariants(t, b)

	// Activating the selected tile again keeps it selected.
	if res := b.Activate(11); res.Outcome != OutcomeReselected || b.Selected() != 11 {
		t.Errorf("Activate(11) again: outcome %s, selected %d", res.Outcome, b.Selected())
	}
	checkInvariants(t, b)
}

func TestActivateMatchRelinks(t *testing.T) {
	b := New()
	before := b.Serialize()

	b.Activate(0)
	res := b.Activate(9)
	if res.Outcome != OutcomeMatched {
		t.Fatalf("outcome = %s, want matched", res.Outcome)
	}
	if res.Pair != [2]int{0, 9} {
		t.Errorf("Pair = %v, want [0 9]", res.Pair)
	}
	if b.tiles[0].active || b.tiles[9].active {
		t.Fatal("matched tiles still active")
	}

	tests := []struct {
		name string
		tile int
		dir  Direction
		want int
	}{
		{"row end skips to next live tile", 8, Right, 10},
		{"back link", 10, Left, 8},
		{"column emptied above", 18, Above, NoTile},
		{"left edge emptied", 1, Left, NoTile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.tiles[tt.tile].neighbours[tt.dir]; got != tt.want {
				t.Errorf("tile %d %s = %d, want %d", tt.tile, tt.dir, got, tt.want)
			}
		})
	}

	if b.Moves() != 1 || b.HistoryLen() != 1 {
		t.Errorf("moves=%d history=%d, want 1 and 1", b.Moves(), b.HistoryLen())
	}
	if b.Selected() != NoTile {
		t.Errorf("Selected() = %d after match, want NoTile", b.Selected())
	}
	checkInvariants(t, b)

	if !b.StepBack() {
		t.Fatal("StepBack() = false, want true")
	}
	if got := b.Serialize(); !reflect.DeepEqual(got, before) {
		t.Errorf("serialization after undo differs:\n got %v\nwant %v", got, before)
	}
	if b.Moves() != 0 {
		t.Errorf("Moves() = %d after undo, want 0", b.Moves())
	}
	checkInvariants(t, b)

	if b.StepBack() {
		t.Error("StepBack() on empty history = true")
	}
}

func TestActivateIgnored(t *testing.T) {
	b := New()

	for _, i := range []int{-1, b.Len(), 1000} {
		if res := b.Activate(i); res.Outcome != OutcomeIgnored {
			t.Errorf("Activate(%d) outcome = %s, want ignored", i, res.Outcome)
		}
	}

	b.Activate(0)
	b.Activate(9)
	if res := b.Activate(0); res.Outcome != OutcomeIgnored {
		t.Errorf("activating a removed tile: outcome %s, want ignored", res.Outcome)
	}
}

func TestEdgePolicyWrap(t *testing.T) {
	b := New()
	if got := b.tiles[8].neighbours[Right]; got != 9 {
		t.Errorf("wrap: tile 8 right = %d, want 9", got)
	}
	if got := b.tiles[9].neighbours[Left]; got != 8 {
		t.Errorf("wrap: tile 9 left = %d, want 8", got)
	}

	rb := New(WithEdgePolicy(EdgeRowBounded))
	if got := rb.tiles[8].neighbours[Right]; got != NoTile {
		t.Errorf("row bounded: tile 8 right = %d, want NoTile", got)
	}
	if got := rb.tiles[9].neighbours[Left]; got != NoTile {
		t.Errorf("row bounded: tile 9 left = %d, want NoTile", got)
	}
	checkInvariants(t, rb)
}

func TestRestoreFrom(t *testing.T) {
	b := New()
	b.Activate(0)
	b.Activate(9)

	snap := snapshotOf(5, -3, 5)
	if err := b.RestoreFrom(snap); err != nil {
		t.Fatalf("RestoreFrom() failed: %v", err)
	}
	if b.Len() != 3 || b.Selected() != NoTile || b.Status() != StatusPlaying {
		t.Fatalf("unexpected state: len=%d selected=%d status=%s", b.Len(), b.Selected(), b.Status())
	}
	if b.Moves() != 1 || b.HistoryLen() != 1 {
		t.Errorf("RestoreFrom dropped counters: moves=%d history=%d", b.Moves(), b.HistoryLen())
	}
	if got := b.Matches(0); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("Matches(0) = %v, want [2]", got)
	}
	checkInvariants(t, b)
}

func TestRestoreFromInvalid(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
	}{
		{"value too large", Snapshot{{X: 0, Y: 0, Value: 10, Active: true}}},
		{"negative value", Snapshot{{X: 0, Y: 0, Value: -1, Active: true}}},
		{"column out of range", Snapshot{{X: RowWidth, Y: 0, Value: 1, Active: true}}},
		{"negative row", Snapshot{{X: 0, Y: -1, Value: 1, Active: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			before := b.Serialize()
			err := b.RestoreFrom(tt.snap)
			if !errors.Is(err, ErrInvalidSnapshot) {
				t.Fatalf("RestoreFrom() error = %v, want ErrInvalidSnapshot", err)
			}
			if !reflect.DeepEqual(b.Serialize(), before) {
				t.Error("board changed after rejected snapshot")
			}
		})
	}
}

func TestTerminalHandler(t *testing.T) {
	var got []Status
	b := New(WithTerminalHandler(func(s Status) { got = append(got, s) }))
	if err := b.RestoreFrom(snapshotOf(4, 6)); err != nil {
		t.Fatal(err)
	}

	b.Activate(0)
	res := b.Activate(1)
	if res.Status != StatusWon {
		t.Fatalf("Status = %s, want won", res.Status)
	}
	if !reflect.DeepEqual(got, []Status{StatusWon}) {
		t.Errorf("handler calls = %v, want [won]", got)
	}

	if res := b.Activate(0); res.Outcome != OutcomeIgnored {
		t.Error("activation accepted on a finished board")
	}

	// Undo is allowed after the game ends and resumes play.
	if !b.StepBack() {
		t.Fatal("StepBack() after win = false")
	}
	if b.Status() != StatusPlaying || b.ActiveCount() != 2 {
		t.Errorf("after undo: status=%s active=%d", b.Status(), b.ActiveCount())
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	policies := []EdgePolicy{EdgeWrap, EdgeRowBounded}
	for _, p := range policies {
		for seed := int64(1); seed <= 8; seed++ {
			b := New(WithEdgePolicy(p))
			playRandom(t, b, seed, 120)

			for b.StepBack() {
				checkInvariants(t, b)
			}
		}
	}
}
