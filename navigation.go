package main

import "sort"

// visibleEvents returns the complete events in chronological order, the
// order h/l selection moves through.
func (m *model) visibleEvents() []Event {
	events := completeEvents(m.story)
	sort.SliceStable(events, func(i, j int) bool {
		return orderKey(events[i].Date, m.story.Eras) < orderKey(events[j].Date, m.story.Eras)
	})
	return events
}

// ensureSelection keeps the selection pointing at a laid-out event,
// falling back to the first one when the current id disappears.
func (m *model) ensureSelection() {
	events := m.visibleEvents()
	if len(events) == 0 {
		m.selected = ""
		return
	}
	for _, ev := range events {
		if ev.ID == m.selected {
			return
		}
	}
	m.selected = events[0].ID
}

func (m *model) selectStep(delta int) {
	events := m.visibleEvents()
	if len(events) == 0 {
		return
	}
	current := -1
	for i, ev := range events {
		if ev.ID == m.selected {
			current = i
			break
		}
	}
	if current < 0 {
		m.selected = events[0].ID
		return
	}
	next := (current + delta + len(events)) % len(events)
	m.selected = events[next].ID
	m.scrollToSelection()
}

// selectLane moves the selection to the nearest event in an adjacent
// lane, preferring the one whose column is closest horizontally. Lanes
// without events are skipped.
func (m *model) selectLane(delta int) {
	layout := ComputeLayout(m.story, m.expanded)
	rect, ok := layout.Events[m.selected]
	if !ok {
		m.ensureSelection()
		return
	}

	laneIndex := -1
	for i, sl := range m.story.Storylines {
		lane := layout.Lanes[sl.ID]
		if rect.Y >= lane.Y && rect.Y < lane.Y+lane.H {
			laneIndex = i
			break
		}
	}
	if laneIndex < 0 {
		return
	}

	events := m.visibleEvents()
	for i := laneIndex + delta; i >= 0 && i < len(m.story.Storylines); i += delta {
		target := m.story.Storylines[i].ID
		bestID := ""
		bestDist := 0.0
		for _, ev := range events {
			if ev.StorylineID != target {
				continue
			}
			r, ok := layout.Events[ev.ID]
			if !ok {
				continue
			}
			d := r.X + r.W/2 - (rect.X + rect.W/2)
			if d < 0 {
				d = -d
			}
			if bestID == "" || d < bestDist {
				bestID = ev.ID
				bestDist = d
			}
		}
		if bestID != "" {
			m.selected = bestID
			m.scrollToSelection()
			return
		}
	}
}

// scrollToSelection pans just enough to bring the selected event's cells
// into the viewport.
func (m *model) scrollToSelection() {
	layout := ComputeLayout(m.story, m.expanded)
	rect, ok := layout.Events[m.selected]
	if !ok {
		return
	}
	left := int(rect.X / cellW)
	right := int(rect.Right()/cellW) + 1
	top := int(rect.Y / cellH)
	bottom := int(rect.Bottom()/cellH) + 1

	viewW := m.width
	viewH := m.height - 2 // status line and header
	if viewW < 1 || viewH < 1 {
		return
	}
	if left < m.panX {
		m.panX = left
	}
	if right > m.panX+viewW {
		m.panX = right - viewW
	}
	if top < m.panY {
		m.panY = top
	}
	if bottom > m.panY+viewH {
		m.panY = bottom - viewH
	}
	if m.panX < 0 {
		m.panX = 0
	}
	if m.panY < 0 {
		m.panY = 0
	}
}

func (m *model) handlePan(key string) {
	switch key {
	case "H", "shift+left":
		m.panX -= 4
	case "L", "shift+right":
		m.panX += 4
	case "K", "shift+up":
		m.panY -= 2
	case "J", "shift+down":
		m.panY += 2
	}
	if m.panX < 0 {
		m.panX = 0
	}
	if m.panY < 0 {
		m.panY = 0
	}
}
