// Package core implements the Numbers board engine: a growable sequence of
// digit tiles, four-way visible-neighbour resolution over that sequence, the
// match/selection state machine, automatic refill, bounded undo history and
// win/loss detection.
//
// The package is pure: no I/O, no timing, no rendering. All mutation goes
// through Board.Activate and Board.StepBack.
package core

import "fmt"

// RowWidth is the number of tiles in one visual row.
const RowWidth = 9

// Coord is a grid position. X is the column, Y the row; both start at zero.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ToCoord maps a linear tile index to its grid position.
func ToCoord(n int) Coord {
	return Coord{X: n % RowWidth, Y: n / RowWidth}
}

// ToIndex maps a grid position back to a linear tile index.
func ToIndex(c Coord) int {
	return c.Y*RowWidth + c.X
}
