package api

import (
	"github.com/vovakirdan/tui-numbers/internal/games/numbers/core"
)

// tileView is the JSON form of one tile.
type tileView struct {
	Index  int    `json:"index"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Value  int    `json:"value"`
	Active bool   `json:"active"`
	Label  string `json:"label"`
}

// stateView is the JSON form of a session's board.
type stateView struct {
	ID         string `json:"id"`
	Preset     string `json:"preset"`
	EdgePolicy string `json:"edge_policy"`
	Status     string `json:"status"`
	Moves      int    `json:"moves"`
	Streak     int    `json:"streak"`
	Tiles      int    `json:"tiles"`
	Active     int    `json:"active"`
	Selected   *int   `json:"selected"`
	Matchable  []int  `json:"matchable"`
	Hints      []int  `json:"hints"`
	Undo       int    `json:"undo"`
}

// activateView is the response to an activation.
type activateView struct {
	State   stateView `json:"state"`
	Outcome string    `json:"outcome"`
	Pair    []int     `json:"pair,omitempty"`
	Grown   int       `json:"grown"`
}

// rowView is one visual row.
type rowView struct {
	Start  int        `json:"start"`
	Active bool       `json:"active"`
	Tiles  []tileView `json:"tiles"`
}

// groupView is a run of rows sharing an active flag.
type groupView struct {
	Collapsed bool `json:"collapsed"`
	Rows      int  `json:"rows"`
	Start     int  `json:"start"`
}

// rowsView is the response for the rows endpoint.
type rowsView struct {
	ID     string      `json:"id"`
	Rows   []rowView   `json:"rows"`
	Groups []groupView `json:"groups"`
}

func newStateView(s *Session, b *core.Board) stateView {
	v := stateView{
		ID:         s.ID,
		Preset:     s.Preset,
		EdgePolicy: b.EdgePolicy().String(),
		Status:     b.Status().String(),
		Moves:      b.Moves(),
		Streak:     b.Streak(),
		Tiles:      b.Len(),
		Active:     b.ActiveCount(),
		Matchable:  nonNil(b.MatchableTiles()),
		Hints:      nonNil(b.Hints()),
		Undo:       b.HistoryLen(),
	}
	if sel := b.Selected(); sel != core.NoTile {
		v.Selected = &sel
	}
	return v
}

func newTileView(i int, t core.Tile) tileView {
	return tileView{
		Index:  i,
		X:      t.Pos().X,
		Y:      t.Pos().Y,
		Value:  t.Value(),
		Active: t.Active(),
		Label:  t.Label().String(),
	}
}

func newRowsView(s *Session, b *core.Board) rowsView {
	rows := b.Rows()
	v := rowsView{ID: s.ID, Rows: make([]rowView, len(rows))}
	for ri, r := range rows {
		rv := rowView{Start: r.Start, Active: r.Active, Tiles: make([]tileView, len(r.Tiles))}
		for ti, t := range r.Tiles {
			rv.Tiles[ti] = newTileView(r.Start+ti, t)
		}
		v.Rows[ri] = rv
	}
	for _, g := range core.CollapseRows(rows) {
		v.Groups = append(v.Groups, groupView{Collapsed: g.Collapsed, Rows: len(g.Rows), Start: g.Rows[0].Start})
	}
	return v
}

// nonNil keeps empty lists as [] in JSON.
func nonNil(xs []int) []int {
	if xs == nil {
		return []int{}
	}
	return xs
}
