package core

import (
	"errors"
	"fmt"
)

// HistoryLimit is the maximum number of undo snapshots kept.
const HistoryLimit = 100

// MaxSnapshotTiles bounds the length of a restorable snapshot.
const MaxSnapshotTiles = 2048

// ErrInvalidSnapshot is returned when a snapshot cannot describe a board.
var ErrInvalidSnapshot = errors.New("core: invalid snapshot")

// SerializedTile is the persisted form of a tile. Selection, matchable and
// link state are rederived on restore.
type SerializedTile struct {
	X      int  `json:"x" yaml:"x"`
	Y      int  `json:"y" yaml:"y"`
	Value  int  `json:"v" yaml:"v"`
	Active bool `json:"active" yaml:"active"`
}

// Snapshot is a serialized board: one entry per tile, in sequence order.
type Snapshot []SerializedTile

// Validate checks that every entry could have been produced by a board.
func (s Snapshot) Validate() error {
	if len(s) > MaxSnapshotTiles {
		return fmt.Errorf("%w: %d tiles, at most %d allowed", ErrInvalidSnapshot, len(s), MaxSnapshotTiles)
	}
	for i, t := range s {
		if t.Value < 0 || t.Value > 9 {
			return fmt.Errorf("%w: tile %d has value %d", ErrInvalidSnapshot, i, t.Value)
		}
		if t.X < 0 || t.X >= RowWidth || t.Y < 0 {
			return fmt.Errorf("%w: tile %d has position %s", ErrInvalidSnapshot, i, C(t.X, t.Y))
		}
	}
	return nil
}

// ActiveCount returns the number of active entries.
func (s Snapshot) ActiveCount() int {
	n := 0
	for _, t := range s {
		if t.Active {
			n++
		}
	}
	return n
}

// History is a bounded undo stack. Pushing beyond the limit evicts the
// oldest snapshot.
type History struct {
	entries []Snapshot
	limit   int
}

// NewHistory creates a history holding at most limit snapshots.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = HistoryLimit
	}
	return &History{limit: limit}
}

// Push stores a snapshot on top of the stack.
func (h *History) Push(s Snapshot) {
	h.entries = append(h.entries, s)
	if len(h.entries) > h.limit {
		copy(h.entries, h.entries[1:])
		h.entries[len(h.entries)-1] = nil
		h.entries = h.entries[:len(h.entries)-1]
	}
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (Snapshot, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = nil
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.entries)
}
