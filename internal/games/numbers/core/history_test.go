package core

import (
	"errors"
	"testing"
)

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(HistoryLimit)
	for i := 0; i <= HistoryLimit; i++ {
		h.Push(snapshotOf(i % 10))
	}

	if h.Len() != HistoryLimit {
		t.Fatalf("Len() = %d, want %d", h.Len(), HistoryLimit)
	}

	top, ok := h.Pop()
	if !ok || top[0].Value != HistoryLimit%10 {
		t.Errorf("Pop() = %v, %v; want the last push", top, ok)
	}

	var last Snapshot
	for {
		s, ok := h.Pop()
		if !ok {
			break
		}
		last = s
	}
	// The first push (value 0) was evicted, so the oldest left holds 1.
	if last[0].Value != 1 {
		t.Errorf("oldest snapshot value = %d, want 1", last[0].Value)
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory(0)
	if _, ok := h.Pop(); ok {
		t.Error("Pop() on empty history reported ok")
	}

	h.Push(snapshotOf(1))
	if _, ok := h.Pop(); !ok || h.Len() != 0 {
		t.Errorf("Pop() after one push: ok = %v, Len() = %d", ok, h.Len())
	}
}

func TestBoardHistoryCap(t *testing.T) {
	b := New()
	for i := 0; i < HistoryLimit+20; i++ {
		b.history.Push(b.Serialize())
	}
	if b.HistoryLen() != HistoryLimit {
		t.Errorf("HistoryLen() = %d, want %d", b.HistoryLen(), HistoryLimit)
	}
}

func TestSnapshotValidate(t *testing.T) {
	if err := New().Serialize().Validate(); err != nil {
		t.Errorf("Validate() on a fresh board: %v", err)
	}

	bad := Snapshot{{X: 3, Y: 0, Value: 12, Active: true}}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("Validate() = %v, want ErrInvalidSnapshot", err)
	}
}

func TestSnapshotValidateTileLimit(t *testing.T) {
	values := make([]int, MaxSnapshotTiles)
	for i := range values {
		values[i] = 1 + i%2
	}
	if err := snapshotOf(values...).Validate(); err != nil {
		t.Errorf("Validate() at the limit: %v", err)
	}

	over := snapshotOf(append(values, 1)...)
	if err := over.Validate(); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("Validate() over the limit = %v, want ErrInvalidSnapshot", err)
	}
	if err := New().RestoreFrom(over); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("RestoreFrom() over the limit = %v, want ErrInvalidSnapshot", err)
	}
}

func TestSnapshotActiveCount(t *testing.T) {
	if got := snapshotOf(1, -2, 3, -4).ActiveCount(); got != 2 {
		t.Errorf("ActiveCount() = %d, want 2", got)
	}
}
