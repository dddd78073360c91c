package core

import (
	"reflect"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		a, b int
		want bool
	}{
		{1, 9, true},
		{4, 6, true},
		{5, 5, true},
		{7, 7, true},
		{0, 0, true},
		{1, 2, false},
		{2, 8, true},
		{3, 8, false},
	}

	for _, tt := range tests {
		if got := Match(tt.a, tt.b); got != tt.want {
			t.Errorf("Match(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMatchesDedupByPosition(t *testing.T) {
	// Tile 9 sees tile 0 both above and to the left through the wrap.
	b := boardFrom(t, snapshotOf(5, -1, -1, -1, -1, -1, -1, -1, -1, 5))

	if b.tiles[9].neighbours[Above] != 0 || b.tiles[9].neighbours[Left] != 0 {
		t.Fatalf("tile 9 links: %v", b.tiles[9].neighbours)
	}
	if got := b.Matches(9); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("Matches(9) = %v, want [0]", got)
	}
	if got := b.tiles[9].label; got != LabelHint1 {
		t.Errorf("label = %s, want hint_1", got)
	}
}

func TestMatchesIgnoresStaleLinks(t *testing.T) {
	b := boardFrom(t, snapshotOf(5, 5, 5))

	// Deactivate without relinking: the cached links now point at a dead tile.
	b.tiles[1].active = false
	if got := b.Matches(0); len(got) != 0 {
		t.Errorf("Matches(0) = %v, want none through a stale link", got)
	}
	if got := b.Matches(1); got != nil {
		t.Errorf("Matches on inactive tile = %v, want nil", got)
	}
}

func TestMatchesOrder(t *testing.T) {
	// Tile 10 (value 5) has a match in every direction.
	b := boardFrom(t, snapshotOf(
		-1, 5, -1, -1, -1, -1, -1, -1, -1,
		5, 5, 5, -1, -1, -1, -1, -1, -1,
		-1, 5,
	))

	if got := b.Matches(10); !reflect.DeepEqual(got, []int{1, 19, 9, 11}) {
		t.Errorf("Matches(10) = %v, want [1 19 9 11]", got)
	}
	if got := b.tiles[10].label; got != LabelHint4 {
		t.Errorf("label = %s, want hint_4", got)
	}
}

func TestHintsAndHasMatches(t *testing.T) {
	b := boardFrom(t, snapshotOf(3, 7, 2))

	if got := b.Hints(); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("Hints() = %v, want [0 1]", got)
	}
	if !b.HasMatches() {
		t.Error("HasMatches() = false")
	}

	if boardFrom(t, snapshotOf(1, 2, 3)).HasMatches() {
		t.Error("HasMatches() = true on a board without pairs")
	}
}
