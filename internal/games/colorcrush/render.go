package colorcrush

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/colorcrush/internal/core"
	"github.com/vovakirdan/colorcrush/internal/games/colorcrush/engine"
)

const (
	hudHeight    = 2 // title line + separator
	footerHeight = 1
)

// layout is where the board sits on screen.
type layout struct {
	grid  core.Grid
	large bool
}

// cellSizes are tried largest first.
var cellSizes = []struct {
	w, h, gap int
	large     bool
}{
	{w: 5, h: 2, gap: 1, large: true},
	{w: 3, h: 1, gap: 1},
}

// relayout picks the largest cell size that fits the screen and centers
// the board. tooSmall is set when nothing fits.
func (g *Game) relayout() {
	for _, size := range cellSizes {
		grid := core.Grid{Rows: engine.Rows, Cols: engine.Cols, CellW: size.w, CellH: size.h, Gap: size.gap}
		b := grid.Bounds()
		needW := b.W + 2
		needH := hudHeight + b.H + 2 + footerHeight
		if g.screenW < needW || g.screenH < needH {
			continue
		}
		avail := g.screenH - hudHeight - footerHeight
		grid.Origin = core.Point{
			X: (g.screenW - b.W) / 2,
			Y: hudHeight + (avail-b.H)/2,
		}
		g.layout = layout{grid: grid, large: size.large}
		g.tooSmall = false
		return
	}
	g.tooSmall = true
}

// minSize returns the smallest screen the game can be drawn on.
func minSize() (w, h int) {
	s := cellSizes[len(cellSizes)-1]
	b := core.Grid{Rows: engine.Rows, Cols: engine.Cols, CellW: s.w, CellH: s.h, Gap: s.gap}.Bounds()
	return b.W + 2, hudHeight + b.H + 2 + footerHeight
}

var tileColors = map[engine.Color]core.Color{
	engine.ColorYellow: core.ColorYellow,
	engine.ColorBlue:   core.ColorBlue,
	engine.ColorRed:    core.ColorRed,
	engine.ColorPink:   core.ColorMagenta,
	engine.ColorGreen:  core.ColorGreen,
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		w, h := minSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need at least %dx%d", w, h))
		return
	}

	g.renderBoard(dst)
	g.renderFooter(dst)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the title, score and best score.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawStyled(1, 0, g.Title(), core.ColorBrightYellow, core.AttrBold)

	status := fmt.Sprintf("Score: %d  Best: %d", g.view.Score, g.view.HighScore)
	if g.combo > 1 && g.view.Phase != engine.PhaseIdle {
		status = fmt.Sprintf("Combo x%d  %s", g.combo, status)
	}
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(status)-1, 0, status, core.ColorWhite)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderBoard draws the frame and every tile with cursor and selection
// markers. Tiles being cleared blink.
func (g *Game) renderBoard(dst *core.Screen) {
	grid := g.layout.grid
	b := grid.Bounds()
	frame := core.NewRect(b.X-1, b.Y-1, b.W+2, b.H+2)
	dst.DrawBox(frame, core.ColorGray)

	blinkOff := g.view.Phase == engine.PhaseClearing &&
		(g.phaseTicks/max(g.cfg.Animation.BlinkTicks, 1))%2 == 1

	for r := range engine.Rows {
		for c := range engine.Cols {
			p := engine.P(r, c)
			cell := grid.Cell(r, c)
			t := g.view.Board.Get(p)

			if !(blinkOff && slices.Contains(g.view.Clearing, p)) {
				g.drawTile(dst, cell, t)
			}
			g.drawMarkers(dst, cell, p)
		}
	}
}

// drawTile fills the inner part of a cell; the first and last columns are
// left for markers.
func (g *Game) drawTile(dst *core.Screen, cell core.Rect, t engine.Tile) {
	if t.Empty() {
		return
	}
	color := tileColors[t.Color]
	fill, center := '●', '●'
	attr := core.Attr(0)
	switch t.Kind {
	case engine.KindAreaClear:
		fill, center = '▒', '◆'
		attr = core.AttrBold
	case engine.KindColorClear:
		fill, center = '✦', '✦'
		color = core.ColorBrightWhite
		attr = core.AttrBold
	default:
		if g.layout.large {
			fill, center = '█', '█'
		}
	}

	cx, cy := cell.Center()
	for y := cell.Y; y < cell.Bottom(); y++ {
		for x := cell.X + 1; x < cell.Right()-1; x++ {
			r := fill
			if x == cx && y == cy {
				r = center
			}
			dst.SetCell(x, y, core.Cell{Rune: r, Color: color, Attr: attr})
		}
	}
}

// drawMarkers brackets the cursor cell and the selected cell.
func (g *Game) drawMarkers(dst *core.Screen, cell core.Rect, p engine.Pos) {
	selected := g.view.HasSelection && g.view.Selected == p
	cursor := g.cursor == p

	var left, right rune
	color := core.ColorWhite
	switch {
	case selected && cursor:
		left, right, color = '[', ']', core.ColorBrightYellow
	case selected:
		left, right, color = '‹', '›', core.ColorBrightYellow
	case cursor:
		left, right = '[', ']'
	default:
		return
	}
	for y := cell.Y; y < cell.Bottom(); y++ {
		dst.SetCell(cell.X, y, core.Cell{Rune: left, Color: color, Attr: core.AttrBold})
		dst.SetCell(cell.Right()-1, y, core.Cell{Rune: right, Color: color, Attr: core.AttrBold})
	}
}

// renderFooter draws the control hints on the last line.
func (g *Game) renderFooter(dst *core.Screen) {
	hints := []string{"arrows move", "enter tap", "esc cancel", "r new board", "p pause", "q quit"}
	line := strings.Join(hints, " · ")
	for utf8.RuneCountInString(line) > dst.Width() && len(hints) > 1 {
		hints = hints[:len(hints)-1]
		line = strings.Join(hints, " · ")
	}
	dst.DrawTextCentered(dst.Height()-1, line, core.ColorGray)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	boxH := 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+2, line2, core.ColorWhite)
}
