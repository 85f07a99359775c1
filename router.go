package main

import "fmt"

type portSide int

const (
	sideTop portSide = iota
	sideBottom
	sideLeft
	sideRight
)

type portKey struct {
	event string
	side  portSide
}

// connPlan is one connection's routing decision before ports are placed.
type connPlan struct {
	conn     Connection
	from, to portKey
	sameDay  bool
}

// RouteConnections produces a cubic path for every connection whose both
// endpoints have geometry in the layout; the rest are silently skipped,
// since a dangling endpoint is a normal transient state mid-edit.
//
// Routing is two-pass: the first pass counts how many connections land
// on each side of each event, the second places the k-th connection on a
// side at k/(total+1) along it. Fan-out therefore depends on the final
// totals, which is why the counting cannot be folded into path
// generation.
func RouteConnections(story *Story, layout *Layout) map[string]RoutedPath {
	totals := make(map[portKey]int)
	var plans []connPlan

	for _, c := range story.Connections {
		ra, okA := layout.Events[c.From]
		rb, okB := layout.Events[c.To]
		if !okA || !okB {
			continue
		}
		p := connPlan{conn: c}
		if layout.EventDays[c.From] == layout.EventDays[c.To] {
			p.sameDay = true
			// Leave the visually higher event through its bottom edge
			// and enter the lower one through its top.
			if ra.Y <= rb.Y {
				p.from = portKey{c.From, sideBottom}
				p.to = portKey{c.To, sideTop}
			} else {
				p.from = portKey{c.From, sideTop}
				p.to = portKey{c.To, sideBottom}
			}
		} else {
			// Leave the earlier column rightward, enter the later one
			// from the left.
			if layout.Columns[layout.EventDays[c.From]].X < layout.Columns[layout.EventDays[c.To]].X {
				p.from = portKey{c.From, sideRight}
				p.to = portKey{c.To, sideLeft}
			} else {
				p.from = portKey{c.From, sideLeft}
				p.to = portKey{c.To, sideRight}
			}
		}
		totals[p.from]++
		totals[p.to]++
		plans = append(plans, p)
	}

	counts := make(map[portKey]int)
	routed := make(map[string]RoutedPath, len(plans))
	for _, p := range plans {
		counts[p.from]++
		counts[p.to]++
		x1, y1 := portPoint(layout.Events[p.conn.From], p.from.side, counts[p.from], totals[p.from])
		x2, y2 := portPoint(layout.Events[p.conn.To], p.to.side, counts[p.to], totals[p.to])

		rp := RoutedPath{X1: x1, Y1: y1, X2: x2, Y2: y2, SameDay: p.sameDay}
		if p.sameDay {
			dy := (y2 - y1) / 2
			rp.CX1, rp.CY1 = x1, y1+dy
			rp.CX2, rp.CY2 = x2, y2-dy
		} else {
			dx := (x2 - x1) / 2
			rp.CX1, rp.CY1 = x1+dx, y1
			rp.CX2, rp.CY2 = x2-dx, y2
		}
		rp.Path = cubicPath(x1, y1, rp.CX1, rp.CY1, rp.CX2, rp.CY2, x2, y2)
		routed[p.conn.ID] = rp
	}
	return routed
}

// portPoint places the k-th of total connections on one side of a rect.
// Positions k/(total+1) keep every port strictly inside the side, away
// from the corners, and strictly increasing with k.
func portPoint(r Rect, side portSide, k, total int) (float64, float64) {
	f := float64(k) / float64(total+1)
	switch side {
	case sideTop:
		return r.X + f*r.W, r.Y
	case sideBottom:
		return r.X + f*r.W, r.Bottom()
	case sideLeft:
		return r.X, r.Y + f*r.H
	default:
		return r.Right(), r.Y + f*r.H
	}
}

func cubicPath(x1, y1, cx1, cy1, cx2, cy2, x2, y2 float64) string {
	return fmt.Sprintf("M %.1f %.1f C %.1f %.1f, %.1f %.1f, %.1f %.1f",
		x1, y1, cx1, cy1, cx2, cy2, x2, y2)
}

// cubicAt evaluates the Bezier at t in [0,1]; the terminal renderer
// samples it to approximate the curve with cells.
func cubicAt(t, p0, c1, c2, p1 float64) float64 {
	u := 1 - t
	return u*u*u*p0 + 3*u*u*t*c1 + 3*u*t*t*c2 + t*t*t*p1
}
