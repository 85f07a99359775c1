package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	defaultLaneColor = "#7a7a7a"
	defaultTypeColor = "#5e81ac"
	connectionColor  = "#999999"
)

// hexToRGB parses a #rrggbb color into unit-range components; anything
// it cannot parse comes back mid gray.
func hexToRGB(s string) (float64, float64, float64) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0.5, 0.5, 0.5
	}
	var r, g, b int
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0.5, 0.5, 0.5
	}
	return float64(r) / 255, float64(g) / 255, float64(b) / 255
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// exportSVG writes the current layout as a standalone SVG document: lane
// bands, day labels, connection curves and event cards, in that stacking
// order.
func exportSVG(story *Story, layout *Layout, routes map[string]RoutedPath, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		layout.Width, layout.Height, layout.Width, layout.Height)
	b.WriteString(`<style>
  text { font-family: sans-serif; }
  .lane-label { font-size: 14px; font-weight: bold; }
  .day-label { font-size: 12px; fill: #666; }
  .event-title { font-size: 13px; font-weight: bold; }
  .event-date { font-size: 11px; fill: #666; }
  .conn-label { font-size: 11px; fill: #555; }
</style>
`)
	fmt.Fprintf(&b, `<rect width="%.0f" height="%.0f" fill="#ffffff"/>`+"\n", layout.Width, layout.Height)

	for _, sl := range story.Storylines {
		lane, ok := layout.Lanes[sl.ID]
		if !ok {
			continue
		}
		color := hexOrDefault(sl.Color, defaultLaneColor)
		fmt.Fprintf(&b, `<rect x="0" y="%.1f" width="%.0f" height="%.1f" fill="%s" fill-opacity="0.08"/>`+"\n",
			lane.Y, layout.Width, lane.H, color)
		fmt.Fprintf(&b, `<text class="lane-label" x="8" y="%.1f" fill="%s">%s</text>`+"\n",
			lane.Y+18, color, xmlEscaper.Replace(sl.Name))
	}

	for _, day := range layout.Days {
		col := layout.Columns[day]
		label := formatDate(layout.DayDates[day], story.Eras)
		fmt.Fprintf(&b, `<text class="day-label" x="%.1f" y="%.1f">%s</text>`+"\n",
			col.X, canvasPadding-16, xmlEscaper.Replace(label))
	}

	for _, c := range story.Connections {
		rp, ok := routes[c.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
			rp.Path, connectionColor)
		if c.Label != "" {
			mx := cubicAt(0.5, rp.X1, rp.CX1, rp.CX2, rp.X2)
			my := cubicAt(0.5, rp.Y1, rp.CY1, rp.CY2, rp.Y2)
			fmt.Fprintf(&b, `<text class="conn-label" x="%.1f" y="%.1f" text-anchor="middle">%s</text>`+"\n",
				mx, my-4, xmlEscaper.Replace(c.Label))
		}
	}

	for _, ev := range story.Events {
		rect, ok := layout.Events[ev.ID]
		if !ok {
			continue
		}
		stroke := defaultTypeColor
		if et := story.Type(ev.TypeID); et != nil {
			stroke = hexOrDefault(et.Color, defaultTypeColor)
		}
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="6" fill="#ffffff" stroke="%s" stroke-width="2"/>`+"\n",
			rect.X, rect.Y, rect.W, rect.H, stroke)
		fmt.Fprintf(&b, `<text class="event-title" x="%.1f" y="%.1f">%s</text>`+"\n",
			rect.X+8, rect.Y+18, xmlEscaper.Replace(ev.Title))
		fmt.Fprintf(&b, `<text class="event-date" x="%.1f" y="%.1f">%s</text>`+"\n",
			rect.X+8, rect.Y+33, xmlEscaper.Replace(formatDate(ev.Date, story.Eras)))
		if rect.H > collapsedHeight && ev.Description != "" {
			y := rect.Y + 50
			for _, line := range wrapRunes(ev.Description, 20) {
				if y > rect.Bottom()-8 {
					break
				}
				fmt.Fprintf(&b, `<text class="event-date" x="%.1f" y="%.1f">%s</text>`+"\n",
					rect.X+8, y, xmlEscaper.Replace(line))
				y += 14
			}
		}
	}

	b.WriteString("</svg>\n")

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write svg file: %w", err)
	}
	return nil
}

// exportPNG rasterizes the layout at the configured scale.
func exportPNG(story *Story, layout *Layout, routes map[string]RoutedPath, path string, scale float64) error {
	if scale <= 0 {
		scale = 1.0
	}
	width := int(layout.Width * scale)
	height := int(layout.Height * scale)

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.Scale(scale, scale)

	font, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	titleFace := truetype.NewFace(font, &truetype.Options{Size: 13})
	smallFace := truetype.NewFace(font, &truetype.Options{Size: 11})

	for _, sl := range story.Storylines {
		lane, ok := layout.Lanes[sl.ID]
		if !ok {
			continue
		}
		color := hexOrDefault(sl.Color, defaultLaneColor)
		r, g, bl := hexToRGB(color)
		dc.SetRGBA(r, g, bl, 0.08)
		dc.DrawRectangle(0, lane.Y, layout.Width, lane.H)
		dc.Fill()

		dc.SetFontFace(titleFace)
		dc.SetHexColor(color)
		dc.DrawString(sl.Name, 8, lane.Y+18)
	}

	dc.SetFontFace(smallFace)
	dc.SetHexColor("#666666")
	for _, day := range layout.Days {
		col := layout.Columns[day]
		dc.DrawString(formatDate(layout.DayDates[day], story.Eras), col.X, canvasPadding-16)
	}

	dc.SetHexColor(connectionColor)
	dc.SetLineWidth(1.5)
	for _, c := range story.Connections {
		rp, ok := routes[c.ID]
		if !ok {
			continue
		}
		dc.MoveTo(rp.X1, rp.Y1)
		dc.CubicTo(rp.CX1, rp.CY1, rp.CX2, rp.CY2, rp.X2, rp.Y2)
		dc.Stroke()
	}
	dc.SetHexColor("#555555")
	for _, c := range story.Connections {
		rp, ok := routes[c.ID]
		if !ok || c.Label == "" {
			continue
		}
		mx := cubicAt(0.5, rp.X1, rp.CX1, rp.CX2, rp.X2)
		my := cubicAt(0.5, rp.Y1, rp.CY1, rp.CY2, rp.Y2)
		dc.DrawStringAnchored(c.Label, mx, my-4, 0.5, 0.5)
	}

	for _, ev := range story.Events {
		rect, ok := layout.Events[ev.ID]
		if !ok {
			continue
		}
		stroke := defaultTypeColor
		if et := story.Type(ev.TypeID); et != nil {
			stroke = hexOrDefault(et.Color, defaultTypeColor)
		}
		dc.DrawRoundedRectangle(rect.X, rect.Y, rect.W, rect.H, 6)
		dc.SetRGB(1, 1, 1)
		dc.FillPreserve()
		dc.SetHexColor(stroke)
		dc.SetLineWidth(2)
		dc.Stroke()

		dc.SetFontFace(titleFace)
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawString(ev.Title, rect.X+8, rect.Y+18)
		dc.SetFontFace(smallFace)
		dc.SetHexColor("#666666")
		dc.DrawString(formatDate(ev.Date, story.Eras), rect.X+8, rect.Y+33)
		if rect.H > collapsedHeight && ev.Description != "" {
			y := rect.Y + 50
			for _, line := range wrapRunes(ev.Description, 20) {
				if y > rect.Bottom()-8 {
					break
				}
				dc.DrawString(line, rect.X+8, y)
				y += 14
			}
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write png file: %w", err)
	}
	return nil
}
