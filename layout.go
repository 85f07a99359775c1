package main

import "sort"

// ComputeLayout turns a story plus the set of expanded event ids into
// concrete 2D geometry: day columns left to right in chronological
// order, one lane per storyline stacked in list order, and one rectangle
// per complete event. The pass is deterministic and side-effect-free;
// the viewer calls it on every state change.
func ComputeLayout(story *Story, expanded map[string]bool) *Layout {
	layout := &Layout{
		Events:    make(map[string]Rect),
		Columns:   make(map[string]Column),
		Lanes:     make(map[string]Lane),
		DayDates:  make(map[string]string),
		EventDays: make(map[string]string),
	}

	events := completeEvents(story)
	sort.SliceStable(events, func(i, j int) bool {
		return orderKey(events[i].Date, story.Eras) < orderKey(events[j].Date, story.Eras)
	})

	// Group into day columns, preserving chronological order of first
	// occurrence.
	dayEvents := make(map[string][]Event)
	for _, ev := range events {
		day := dayKey(ev.Date)
		if _, seen := dayEvents[day]; !seen {
			layout.Days = append(layout.Days, day)
			layout.DayDates[day] = ev.Date
		}
		dayEvents[day] = append(dayEvents[day], ev)
		layout.EventDays[ev.ID] = day
	}

	// Same-day events get increasing indentation so co-temporal events
	// stay distinguishable; the column widens to fit the deepest indent.
	indents := make(map[string]int)
	x := canvasPadding
	for _, day := range layout.Days {
		deepest := 0
		for i, ev := range dayEvents[day] {
			indent := i
			if indent > maxIndent {
				indent = maxIndent
			}
			indents[ev.ID] = indent
			if indent > deepest {
				deepest = indent
			}
		}
		w := eventWidth + float64(deepest)*indentStep
		layout.Columns[day] = Column{X: x, W: w}
		x += w + dayGap
	}

	layout.Width = minCanvasWidth
	if len(layout.Days) > 0 {
		if w := x - dayGap + canvasPadding; w > layout.Width {
			layout.Width = w
		}
	}

	// Lanes in storyline list order. A lane's height is driven by its
	// tallest day stack; empty lanes keep the minimum height so the
	// band structure stays stable while a story is being filled in.
	laneY := 0.0
	for _, sl := range story.Storylines {
		stacks := make(map[string][]Event)
		for _, day := range layout.Days {
			for _, ev := range dayEvents[day] {
				if ev.StorylineID == sl.ID {
					stacks[day] = append(stacks[day], ev)
				}
			}
		}

		laneH := minLaneHeight
		for _, stack := range stacks {
			if h := stackHeight(stack, expanded, story.Connections) + 2*lanePadding; h > laneH {
				laneH = h
			}
		}
		layout.Lanes[sl.ID] = Lane{Y: laneY, H: laneH}

		// Each day stack is vertically centered within the lane.
		for day, stack := range stacks {
			col := layout.Columns[day]
			y := laneY + (laneH-stackHeight(stack, expanded, story.Connections))/2
			for i, ev := range stack {
				h := eventHeight(ev.ID, expanded)
				layout.Events[ev.ID] = Rect{
					X: col.X + float64(indents[ev.ID])*indentStep,
					Y: y,
					W: eventWidth,
					H: h,
				}
				y += h
				if i < len(stack)-1 {
					y += eventGap(ev.ID, stack[i+1].ID, story.Connections)
				}
			}
		}

		laneY += laneH
	}

	layout.Height = minCanvasHeight
	if laneY > layout.Height {
		layout.Height = laneY
	}

	return layout
}

// completeEvents filters to events that can be placed: storyline, type
// and date all present, and the storyline actually part of the story.
func completeEvents(story *Story) []Event {
	lanes := make(map[string]bool, len(story.Storylines))
	for _, sl := range story.Storylines {
		lanes[sl.ID] = true
	}
	var out []Event
	for _, ev := range story.Events {
		if ev.Date == "" || ev.TypeID == "" || !lanes[ev.StorylineID] {
			continue
		}
		out = append(out, ev)
	}
	return out
}

func eventHeight(id string, expanded map[string]bool) float64 {
	if expanded[id] {
		return expandedHeight
	}
	return collapsedHeight
}

// eventGap is the vertical gap between two consecutive same-day events
// in a lane: widened when a connection links them so the connector has
// room to breathe. The linear scan over the connection list is fine for
// the dataset sizes skein handles.
func eventGap(a, b string, conns []Connection) float64 {
	if linked(a, b, conns) {
		return linkedStackGap
	}
	return stackGap
}

func linked(a, b string, conns []Connection) bool {
	for _, c := range conns {
		if (c.From == a && c.To == b) || (c.From == b && c.To == a) {
			return true
		}
	}
	return false
}

func stackHeight(stack []Event, expanded map[string]bool, conns []Connection) float64 {
	h := 0.0
	for i, ev := range stack {
		h += eventHeight(ev.ID, expanded)
		if i < len(stack)-1 {
			h += eventGap(ev.ID, stack[i+1].ID, conns)
		}
	}
	return h
}
