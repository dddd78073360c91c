package numbers

import (
	"fmt"
	"strconv"

	platformcore "github.com/vovakirdan/tui-numbers/internal/core"
	"github.com/vovakirdan/tui-numbers/internal/games/numbers/core"
)

const (
	cellWidth    = 3 // Each tile is drawn as " d " or "[d]"
	boardTop     = 4 // HUD height plus a blank line
	footerHeight = 2
	minWidth     = core.RowWidth*cellWidth + 4
	minHeight    = boardTop + footerHeight + 4
)

// labelColors maps tile labels to display colors. Hint colors are only
// used while hints are shown.
var labelColors = map[core.Label]platformcore.Color{
	core.LabelNone:      platformcore.ColorDefault,
	core.LabelHint1:     platformcore.ColorCyan,
	core.LabelHint2:     platformcore.ColorBlue,
	core.LabelHint3:     platformcore.ColorMagenta,
	core.LabelHint4:     platformcore.ColorOrange,
	core.LabelMatchable: platformcore.ColorGreen,
	core.LabelSelected:  platformcore.ColorYellow,
	core.LabelMatched:   platformcore.ColorGray,
}

// LabelColor returns the display color of a label.
func LabelColor(l core.Label, hints bool) platformcore.Color {
	if !hints && l.Hints() > 0 {
		return platformcore.ColorDefault
	}
	return labelColors[l]
}

func (g *Game) boardX() int {
	return max(0, (g.screenW-core.RowWidth*cellWidth)/2)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", platformcore.ColorGray)
}

// renderHUD draws the title, counters and mode line.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextCentered(0, "N U M B E R S", platformcore.ColorBrightWhite)

	stats := fmt.Sprintf("Moves: %d  Left: %d/%d  Refills: %d/%d",
		g.board.Moves(), g.board.ActiveCount(), g.board.Len(), g.board.Streak(), core.LossThreshold)
	dst.DrawTextCentered(1, stats, platformcore.ColorDefault)

	mode := fmt.Sprintf("%s  %s  Undo: %d", g.preset.Name, g.board.EdgePolicy(), g.board.HistoryLen())
	if g.autoOn {
		mode += "  AUTO"
	}
	dst.DrawTextCentered(2, mode, platformcore.ColorGray)
}

// renderBoard draws the visible part of the tile rows.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	lines := g.lines()
	vh := g.viewportHeight()
	x0 := g.boardX()
	hints := g.showHints || g.autoOn

	for n := 0; n < vh && g.scroll+n < len(lines); n++ {
		l := lines[g.scroll+n]
		y := boardTop + n

		if l.collapsed > 0 {
			marker := fmt.Sprintf("· %d rows cleared ·", l.collapsed)
			dst.DrawTextCentered(y, marker, platformcore.ColorGray)
			continue
		}

		for col, t := range l.row.Tiles {
			x := x0 + col*cellWidth
			digit := rune('0' + t.Value())
			dst.SetColor(x+1, y, digit, LabelColor(t.Label(), hints))

			if l.row.Start+col == g.cursor {
				dst.SetColor(x, y, '[', platformcore.ColorBrightWhite)
				dst.SetColor(x+2, y, ']', platformcore.ColorBrightWhite)
			}
		}
	}

	right := x0 + core.RowWidth*cellWidth + 1
	if g.scroll > 0 {
		dst.SetColor(right, boardTop, '▲', platformcore.ColorGray)
	}
	if g.scroll+vh < len(lines) {
		dst.SetColor(right, boardTop+vh-1, '▼', platformcore.ColorGray)
	}
}

// renderFooter draws the last message or the control hints.
func (g *Game) renderFooter(dst *platformcore.Screen) {
	y := g.screenH - 1
	if g.message != "" {
		dst.DrawTextCentered(y, g.message, platformcore.ColorYellow)
		return
	}
	dst.DrawTextCentered(y, g.Controls(), platformcore.ColorGray)
}

// renderOverlays draws pause and end-of-game boxes.
func (g *Game) renderOverlays(dst *platformcore.Screen) {
	centerX := g.screenW / 2
	centerY := boardTop + g.viewportHeight()/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	switch g.board.Status() {
	case core.StatusWon:
		moves := "Moves: " + strconv.Itoa(g.board.Moves())
		g.drawOverlay(dst, centerX, centerY, "BOARD CLEARED", moves, "U: undo  R: new game")
	case core.StatusLost:
		refills := fmt.Sprintf("%d refills without a pair", core.LossThreshold)
		g.drawOverlay(dst, centerX, centerY, "NO MORE MATCHES", refills, "U: undo  R: new game")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := platformcore.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawHLine(box.X, y, box.W, ' ', platformcore.ColorDefault)
	}
	dst.DrawBox(box, platformcore.ColorBrightWhite)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Space: Pick | U: Undo | H: Hint | Tab: Auto | R: New | Q: Quit"
}
