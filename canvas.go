package main

import (
	"fmt"
	"strings"
)

// Terminal cells approximate canvas pixels at a fixed ratio; the same
// constants scale the PNG export in the other direction.
const (
	cellW = 8.0
	cellH = 16.0
)

// Pseudo-color indices below zero select effects instead of palette
// entries.
const (
	colorDefault = -1
	colorDim     = -2
)

// ANSI foreground codes for the highlight palette.
var paletteCodes = [paletteSize]int{31, 32, 33, 34, 35, 36, 91}

const colorReset = "\x1b[0m"

func colorCode(colorIndex int) string {
	if colorIndex == colorDim {
		return "\x1b[2m"
	}
	if colorIndex >= 0 && colorIndex < paletteSize {
		return fmt.Sprintf("\x1b[%dm", paletteCodes[colorIndex])
	}
	return ""
}

// frame is one rendered viewport: a rune grid plus a color index per
// cell.
type frame struct {
	width, height int
	panX, panY    int
	cells         [][]rune
	colors        [][]int
}

func newFrame(width, height, panX, panY int) *frame {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	f := &frame{width: width, height: height, panX: panX, panY: panY}
	f.cells = make([][]rune, height)
	f.colors = make([][]int, height)
	for i := range f.cells {
		f.cells[i] = make([]rune, width)
		f.colors[i] = make([]int, width)
		for j := range f.cells[i] {
			f.cells[i][j] = ' '
			f.colors[i][j] = colorDefault
		}
	}
	return f
}

// set places a rune at world cell coordinates, applying the pan offset.
func (f *frame) set(cx, cy int, r rune, color int) {
	x := cx - f.panX
	y := cy - f.panY
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.cells[y][x] = r
	f.colors[y][x] = color
}

func (f *frame) text(cx, cy int, s string, color int) {
	for i, r := range []rune(s) {
		f.set(cx+i, cy, r, color)
	}
}

func (f *frame) lines() []string {
	out := make([]string, f.height)
	for y := 0; y < f.height; y++ {
		var b strings.Builder
		current := colorDefault
		for x := 0; x < f.width; x++ {
			if c := f.colors[y][x]; c != current {
				if current != colorDefault {
					b.WriteString(colorReset)
				}
				b.WriteString(colorCode(c))
				current = c
			}
			b.WriteRune(f.cells[y][x])
		}
		if current != colorDefault {
			b.WriteString(colorReset)
		}
		out[y] = b.String()
	}
	return out
}

func cellX(x float64) int { return int(x / cellW) }
func cellY(y float64) int { return int(y / cellH) }

// renderTimeline draws the computed layout into a viewport-sized frame:
// connections behind, event boxes on top, day labels along the top edge
// and lane separators with storyline names. When a hover component is
// active everything outside it is dimmed.
func renderTimeline(story *Story, layout *Layout, routes map[string]RoutedPath,
	component map[string]bool, edgeColors map[string]int,
	selected string, width, height, panX, panY int) *frame {

	f := newFrame(width, height, panX, panY)
	hoverActive := len(component) > 0

	// Lane separators and labels.
	laneLabelColor := colorDefault
	for _, sl := range story.Storylines {
		lane, ok := layout.Lanes[sl.ID]
		if !ok {
			continue
		}
		bottom := cellY(lane.Y + lane.H)
		for x := 0; x <= cellX(layout.Width); x++ {
			f.set(x, bottom, '┄', colorDim)
		}
		f.text(1, cellY(lane.Y)+1, truncateRunes(sl.Name, 24), laneLabelColor)
	}

	// Day column labels along the top.
	for _, day := range layout.Days {
		col := layout.Columns[day]
		label := formatDate(layout.DayDates[day], story.Eras)
		f.text(cellX(col.X), 0, truncateRunes(label, int(col.W/cellW)), colorDim)
	}

	// Connections first so boxes draw over them.
	for _, c := range story.Connections {
		rp, ok := routes[c.ID]
		if !ok {
			continue
		}
		color := colorDefault
		if hoverActive {
			color = colorDim
			if idx, ok := edgeColors[c.ID]; ok {
				color = idx
			}
		}
		const samples = 48
		for i := 0; i <= samples; i++ {
			t := float64(i) / samples
			x := cubicAt(t, rp.X1, rp.CX1, rp.CX2, rp.X2)
			y := cubicAt(t, rp.Y1, rp.CY1, rp.CY2, rp.Y2)
			f.set(cellX(x), cellY(y), '·', color)
		}
		f.set(cellX(rp.X1), cellY(rp.Y1), '●', color)
		f.set(cellX(rp.X2), cellY(rp.Y2), '●', color)
	}

	// Event boxes.
	for _, ev := range story.Events {
		rect, ok := layout.Events[ev.ID]
		if !ok {
			continue
		}
		color := colorDefault
		if hoverActive && !component[ev.ID] {
			color = colorDim
		}
		drawEventBox(f, story, ev, rect, ev.ID == selected, color)
	}

	return f
}

func drawEventBox(f *frame, story *Story, ev Event, rect Rect, isSelected bool, color int) {
	x0, y0 := cellX(rect.X), cellY(rect.Y)
	x1, y1 := cellX(rect.Right()), cellY(rect.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	tl, tr, bl, br, hr, vr := '┌', '┐', '└', '┘', '─', '│'
	if isSelected {
		tl, tr, bl, br, hr, vr = '╔', '╗', '╚', '╝', '═', '║'
	}
	for x := x0 + 1; x < x1; x++ {
		f.set(x, y0, hr, color)
		f.set(x, y1, hr, color)
	}
	for y := y0 + 1; y < y1; y++ {
		f.set(x0, y, vr, color)
		f.set(x1, y, vr, color)
	}
	f.set(x0, y0, tl, color)
	f.set(x1, y0, tr, color)
	f.set(x0, y1, bl, color)
	f.set(x1, y1, br, color)

	inner := x1 - x0 - 2
	if inner < 1 {
		return
	}
	row := y0 + 1
	f.text(x0+1, row, truncateRunes(ev.Title, inner), color)
	row++
	if row < y1 {
		f.text(x0+1, row, truncateRunes(formatDate(ev.Date, story.Eras), inner), colorDim)
		row++
	}
	if row < y1 {
		if et := story.Type(ev.TypeID); et != nil {
			f.text(x0+1, row, truncateRunes("◆ "+et.Name, inner), colorDim)
			row++
		}
	}
	for _, line := range wrapRunes(ev.Description, inner) {
		if row >= y1 {
			break
		}
		f.text(x0+1, row, line, color)
		row++
	}
}
