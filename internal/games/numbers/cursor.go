package numbers

import (
	platformcore "github.com/vovakirdan/tui-numbers/internal/core"
	"github.com/vovakirdan/tui-numbers/internal/games/numbers/core"
)

// viewLine is one screen line of the board: a row of tiles, or a marker
// standing for a run of cleared rows.
type viewLine struct {
	row       core.Row
	collapsed int // Number of rows folded into this line; 0 for a tile row
}

func (l viewLine) contains(i int) bool {
	if l.collapsed > 0 {
		return false
	}
	return i >= l.row.Start && i < l.row.Start+len(l.row.Tiles)
}

// lines lays the board out as screen lines.
func (g *Game) lines() []viewLine {
	rows := g.board.Rows()
	if !g.collapse {
		out := make([]viewLine, len(rows))
		for i, r := range rows {
			out[i] = viewLine{row: r}
		}
		return out
	}

	var out []viewLine
	for _, grp := range core.CollapseRows(rows) {
		if grp.Collapsed {
			out = append(out, viewLine{row: grp.Rows[0], collapsed: len(grp.Rows)})
			continue
		}
		for _, r := range grp.Rows {
			out = append(out, viewLine{row: r})
		}
	}
	return out
}

// lineOf returns the index of the line showing tile i, or -1.
func lineOf(lines []viewLine, i int) int {
	for li, l := range lines {
		if l.contains(i) {
			return li
		}
	}
	return -1
}

// moveRow moves the cursor to the same column of the next visible row.
func (g *Game) moveRow(delta int) {
	lines := g.lines()
	li := lineOf(lines, g.cursor)
	if li < 0 {
		return
	}
	col := g.cursor - lines[li].row.Start

	for next := li + delta; next >= 0 && next < len(lines); next += delta {
		l := lines[next]
		if l.collapsed > 0 {
			continue
		}
		g.cursor = l.row.Start + platformcore.Clamp(col, 0, len(l.row.Tiles)-1)
		return
	}
}

// moveCol moves the cursor one tile along the sequence, skipping folded rows.
func (g *Game) moveCol(delta int) {
	next := g.cursor + delta
	if next < 0 || next >= g.board.Len() {
		return
	}

	lines := g.lines()
	if lineOf(lines, next) >= 0 {
		g.cursor = next
		return
	}

	li := lineOf(lines, g.cursor)
	for n := li + delta; n >= 0 && n < len(lines); n += delta {
		l := lines[n]
		if l.collapsed > 0 {
			continue
		}
		if delta > 0 {
			g.cursor = l.row.Start
		} else {
			g.cursor = l.row.Start + len(l.row.Tiles) - 1
		}
		return
	}
}

// jumpToHint moves the cursor to the next tile worth activating: a partner
// of the selection, or any tile with a match. Hint colours stay on until
// the next match.
func (g *Game) jumpToHint() {
	candidates := g.board.MatchableTiles()
	if g.board.Selected() == core.NoTile || len(candidates) == 0 {
		candidates = g.board.Hints()
	}
	if len(candidates) == 0 {
		g.message = "No matches"
		return
	}

	g.showHints = true
	for _, i := range candidates {
		if i > g.cursor {
			g.cursor = i
			return
		}
	}
	g.cursor = candidates[0]
}

// clampCursor keeps the cursor on a visible tile.
func (g *Game) clampCursor() {
	g.cursor = platformcore.Clamp(g.cursor, 0, g.board.Len()-1)

	lines := g.lines()
	li := -1
	for n, l := range lines {
		if l.row.Start > g.cursor {
			break
		}
		li = n
	}
	if li < 0 || lines[li].collapsed == 0 {
		return
	}

	for n := li + 1; n < len(lines); n++ {
		if lines[n].collapsed == 0 {
			g.cursor = lines[n].row.Start
			return
		}
	}
	for n := li - 1; n >= 0; n-- {
		if lines[n].collapsed == 0 {
			g.cursor = lines[n].row.Start + len(lines[n].row.Tiles) - 1
			return
		}
	}
}

// viewportHeight is the number of board lines that fit on screen.
func (g *Game) viewportHeight() int {
	return max(1, g.screenH-boardTop-footerHeight)
}

// ensureVisible scrolls the board so the cursor line is on screen.
func (g *Game) ensureVisible() {
	lines := g.lines()
	vh := g.viewportHeight()

	if li := lineOf(lines, g.cursor); li >= 0 {
		if li < g.scroll {
			g.scroll = li
		}
		if li >= g.scroll+vh {
			g.scroll = li - vh + 1
		}
	}
	g.scroll = platformcore.Clamp(g.scroll, 0, max(0, len(lines)-vh))
}

// tileAt maps a screen cell to the tile drawn there, or NoTile.
func (g *Game) tileAt(p platformcore.Point) int {
	lines := g.lines()
	li := p.Y - boardTop + g.scroll
	if p.Y < boardTop || li < 0 || li >= len(lines) || li-g.scroll >= g.viewportHeight() {
		return core.NoTile
	}
	l := lines[li]
	if l.collapsed > 0 {
		return core.NoTile
	}

	area := platformcore.NewRect(g.boardX(), p.Y, len(l.row.Tiles)*cellWidth, 1)
	if !area.Contains(p) {
		return core.NoTile
	}
	return l.row.Start + (p.X-area.X)/cellWidth
}
