package core

import (
	"reflect"
	"testing"
)

func TestEvaluateGrowsOnce(t *testing.T) {
	// Only 1, 2, 3 are live: no pair exists until the copies land below.
	b := boardFrom(t, snapshotOf(1, 2, 3, -4, -5, -6, -7, -8, -9))

	if got := b.Evaluate(); got != StatusPlaying {
		t.Fatalf("Evaluate() = %s, want playing", got)
	}
	if b.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", b.Len())
	}
	if got := values(b)[9:]; !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("appended values = %v, want [1 2 3]", got)
	}
	for i := 9; i < 12; i++ {
		if b.tiles[i].pos != ToCoord(i) || !b.tiles[i].active {
			t.Errorf("appended tile %d: pos %v active %v", i, b.tiles[i].pos, b.tiles[i].active)
		}
	}
	if b.Streak() != 0 {
		t.Errorf("Streak() = %d, want 0", b.Streak())
	}
	checkInvariants(t, b)
}

func TestEvaluateLoses(t *testing.T) {
	// Alternating 1/2 never pairs with an odd row width.
	b := boardFrom(t, snapshotOf(1, 2))

	var calls int
	b.onTerminal = func(Status) { calls++ }

	if got := b.Evaluate(); got != StatusLost {
		t.Fatalf("Evaluate() = %s, want lost", got)
	}
	// Five doublings of two tiles, no sixth.
	if b.Len() != 64 {
		t.Errorf("Len() = %d, want 64", b.Len())
	}
	if b.Streak() != LossThreshold {
		t.Errorf("Streak() = %d, want %d", b.Streak(), LossThreshold)
	}
	if calls != 1 {
		t.Errorf("terminal handler called %d times, want 1", calls)
	}

	if res := b.Activate(0); res.Outcome != OutcomeIgnored {
		t.Errorf("Activate on lost board: outcome %s", res.Outcome)
	}
	if got := b.Evaluate(); got != StatusLost || b.Len() != 64 {
		t.Errorf("Evaluate() on lost board grew or changed status: %s, len %d", got, b.Len())
	}
}

func TestEvaluateWins(t *testing.T) {
	b := boardFrom(t, snapshotOf(-1, -2, -3))

	if got := b.Evaluate(); got != StatusWon {
		t.Fatalf("Evaluate() = %s, want won", got)
	}
	if b.Len() != 3 {
		t.Errorf("Len() = %d, board grew on a win", b.Len())
	}
}

func TestEvaluateKeepsMatches(t *testing.T) {
	b := New()
	if got := b.Evaluate(); got != StatusPlaying || b.Len() != 27 {
		t.Errorf("Evaluate() on a board with matches: %s, len %d", got, b.Len())
	}
}
