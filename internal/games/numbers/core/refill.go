package core

// LossThreshold is the number of consecutive refills without a match that
// ends the game.
const LossThreshold = 5

// Evaluate checks for a win, then refills the board until a match exists
// or the loss threshold is reached. It returns the resulting status and is
// a no-op on a finished board.
func (b *Board) Evaluate() Status {
	if b.status.Terminal() {
		return b.status
	}

	for {
		if b.ActiveCount() == 0 {
			b.finish(StatusWon)
			return b.status
		}
		if b.HasMatches() {
			b.streak = 0
			return b.status
		}
		if b.streak >= LossThreshold {
			b.finish(StatusLost)
			return b.status
		}

		b.grow()
		if !b.HasMatches() {
			b.streak++
		}
	}
}

// grow appends a copy of every active tile's value, in sequence order.
// New tiles take positions from their new indices.
func (b *Board) grow() {
	values := make([]int, 0, len(b.tiles))
	for _, t := range b.tiles {
		if t.active {
			values = append(values, t.value)
		}
	}
	for _, v := range values {
		b.appendTile(v)
	}
	b.refreshAll()
}
