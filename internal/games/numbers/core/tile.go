package core

// NoTile marks an empty neighbour slot or the absence of a selection.
const NoTile = -1

// Direction is one of the four scan directions of the tile graph.
type Direction int

const (
	Above Direction = iota
	Below
	Left
	Right
)

// directions lists every direction in match-reporting order.
var directions = [...]Direction{Above, Below, Left, Right}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Above:
		return "above"
	case Below:
		return "below"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// delta is the index step taken when scanning in this direction.
func (d Direction) delta() int {
	switch d {
	case Above:
		return -RowWidth
	case Below:
		return RowWidth
	case Left:
		return -1
	default:
		return 1
	}
}

// horizontal reports whether the direction walks along a row.
func (d Direction) horizontal() bool {
	return d == Left || d == Right
}

// noLinks is the neighbour set of an unlinked tile.
var noLinks = [4]int{NoTile, NoTile, NoTile, NoTile}

// Tile is a single numbered cell. Tiles are owned by a Board and exposed to
// callers by value; the fields are read through accessors only.
type Tile struct {
	value     int
	pos       Coord
	active    bool
	selected  bool
	matchable bool
	label     Label

	// neighbours caches the nearest active tile index per direction.
	neighbours [4]int
}

func newTile(value int, pos Coord, active bool) Tile {
	return Tile{
		value:      value,
		pos:        pos,
		active:     active,
		neighbours: noLinks,
	}
}

// Value returns the tile digit.
func (t Tile) Value() int { return t.value }

// Pos returns the grid position.
func (t Tile) Pos() Coord { return t.pos }

// Active reports whether the tile is still in play.
func (t Tile) Active() bool { return t.active }

// Selected reports whether the tile is the current selection.
func (t Tile) Selected() bool { return t.selected }

// Matchable reports whether the tile is a valid partner for the selection.
func (t Tile) Matchable() bool { return t.matchable }

// Label returns the display classification.
func (t Tile) Label() Label { return t.label }

// Neighbour returns the linked tile index in direction d, or NoTile.
func (t Tile) Neighbour(d Direction) int { return t.neighbours[d] }
