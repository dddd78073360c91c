package core

// Label is the display classification of a tile, chosen by priority:
// matched > selected > matchable > hint count > none.
type Label int

const (
	LabelNone Label = iota
	LabelHint1
	LabelHint2
	LabelHint3
	LabelHint4
	LabelMatchable
	LabelSelected
	LabelMatched
)

// String returns a stable name for the label.
func (l Label) String() string {
	switch l {
	case LabelNone:
		return "none"
	case LabelHint1:
		return "hint_1"
	case LabelHint2:
		return "hint_2"
	case LabelHint3:
		return "hint_3"
	case LabelHint4:
		return "hint_4"
	case LabelMatchable:
		return "matchable"
	case LabelSelected:
		return "selected"
	case LabelMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// Hints returns the number of live matches a hint label stands for.
func (l Label) Hints() int {
	if l >= LabelHint1 && l <= LabelHint4 {
		return int(l-LabelHint1) + 1
	}
	return 0
}

// hintLabel returns the hint label for n matches, capped at four.
func hintLabel(n int) Label {
	switch {
	case n <= 0:
		return LabelNone
	case n >= 4:
		return LabelHint4
	default:
		return LabelHint1 + Label(n-1)
	}
}

// classify recomputes the label of tile i from its current state.
func (b *Board) classify(i int) {
	t := &b.tiles[i]
	switch {
	case !t.active:
		t.label = LabelMatched
	case t.selected:
		t.label = LabelSelected
	case t.matchable:
		t.label = LabelMatchable
	default:
		t.label = hintLabel(len(b.Matches(i)))
	}
}
