package main

import "time"

// ResolveDrop maps a pointer position in canvas coordinates to the
// (storyline, date) cell a dragged event would land in. Returns nil when
// the pointer is outside every lane or the story has no storylines.
//
// Past the last day column the target date extrapolates one calendar day
// beyond the last known Gregorian date; non-Gregorian last dates are
// reused verbatim. With no columns at all the target is today at
// midnight in the first storyline.
func ResolveDrop(x, y float64, story *Story, layout *Layout) *DropTarget {
	if len(story.Storylines) == 0 {
		return nil
	}

	laneID := ""
	for _, sl := range story.Storylines {
		lane, ok := layout.Lanes[sl.ID]
		if ok && y >= lane.Y && y < lane.Y+lane.H {
			laneID = sl.ID
			break
		}
	}
	if laneID == "" {
		return nil
	}

	if len(layout.Days) == 0 {
		return &DropTarget{
			StorylineID: story.Storylines[0].ID,
			Date:        time.Now().UTC().Format("2006-01-02"),
		}
	}

	for _, day := range layout.Days {
		col := layout.Columns[day]
		if col.X+col.W+dayGap/2 > x {
			return &DropTarget{StorylineID: laneID, Date: layout.DayDates[day]}
		}
	}

	last := layout.DayDates[layout.Days[len(layout.Days)-1]]
	if t, err := parseGregorian(last); err == nil {
		return &DropTarget{StorylineID: laneID, Date: t.AddDate(0, 0, 1).Format("2006-01-02")}
	}
	return &DropTarget{StorylineID: laneID, Date: last}
}
