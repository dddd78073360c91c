package core

// Row is one visual row of the board.
type Row struct {
	// Start is the sequence index of the row's first tile.
	Start  int
	Tiles  []Tile
	Active bool
}

// Rows groups the sequence into visual rows. A new row starts at every
// tile in column zero.
func (b *Board) Rows() []Row {
	var rows []Row
	for i, t := range b.tiles {
		if len(rows) == 0 || t.pos.X == 0 {
			rows = append(rows, Row{Start: i})
		}
		r := &rows[len(rows)-1]
		r.Tiles = append(r.Tiles, t)
		r.Active = r.Active || t.active
	}
	return rows
}

// RowGroup is a run of consecutive rows sharing the same Active flag.
type RowGroup struct {
	Rows []Row
	// Collapsed is set for runs of two or more cleared rows, which are
	// shown as a single marker.
	Collapsed bool
}

// CollapseRows partitions rows into runs by their Active flag.
func CollapseRows(rows []Row) []RowGroup {
	var groups []RowGroup
	for i, r := range rows {
		if i == 0 || r.Active != rows[i-1].Active {
			groups = append(groups, RowGroup{})
		}
		g := &groups[len(groups)-1]
		g.Rows = append(g.Rows, r)
	}
	for i := range groups {
		g := &groups[i]
		g.Collapsed = len(g.Rows) > 1 && !g.Rows[0].Active
	}
	return groups
}
