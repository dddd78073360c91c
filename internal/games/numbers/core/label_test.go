package core

import "testing"

func TestHintLabel(t *testing.T) {
	tests := []struct {
		matches int
		want    Label
	}{
		{0, LabelNone},
		{1, LabelHint1},
		{2, LabelHint2},
		{3, LabelHint3},
		{4, LabelHint4},
		{7, LabelHint4},
	}
	for _, tt := range tests {
		got := hintLabel(tt.matches)
		if got != tt.want {
			t.Errorf("hintLabel(%d) = %s, expected %s", tt.matches, got, tt.want)
		}
		if n := min(tt.matches, 4); got.Hints() != n {
			t.Errorf("%s.Hints() = %d, expected %d", got, got.Hints(), n)
		}
	}
}

func TestLabelPriority(t *testing.T) {
	b := boardFrom(t, snapshotOf(1, 9, -5, 1))

	b.Activate(0)
	if got := b.tiles[0].label; got != LabelSelected {
		t.Errorf("selected tile label = %s", got)
	}
	if got := b.tiles[1].label; got != LabelMatchable {
		t.Errorf("partner label = %s", got)
	}
	if got := b.tiles[2].label; got != LabelMatched {
		t.Errorf("inactive tile label = %s", got)
	}
	if LabelMatchable.Hints() != 0 || Label(42).String() != "unknown" {
		t.Error("non-hint labels should report no hints")
	}
}
