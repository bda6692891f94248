package chart

import (
	"time"

	"daily-planner/pkg/timerange"
)

// Build turns parsed schedule lines into a Timeline.
// Each distinct task label gets one row and one colour; repeated labels share a row.
func Build(lines []timerange.Line) Timeline {
	if len(lines) == 0 {
		return Timeline{Title: PlaceholderTitle, Rows: []Row{}, Bars: []Bar{}, Empty: true}
	}

	t := Timeline{
		Title: DefaultTitle,
		Rows:  make([]Row, 0, len(lines)),
		Bars:  make([]Bar, 0, len(lines)),
		Min:   lines[0].Start,
		Max:   lines[0].End,
	}

	index := make(map[string]int, len(lines))
	for _, line := range lines {
		row, ok := index[line.Task]
		if !ok {
			row = len(t.Rows)
			index[line.Task] = row
			t.Rows = append(t.Rows, Row{Label: line.Task, Color: palette[row%len(palette)]})
		}

		t.Bars = append(t.Bars, Bar{
			Row:   row,
			Task:  line.Task,
			Start: line.Start,
			End:   line.End,
			Color: t.Rows[row].Color,
		})

		for _, ts := range [2]time.Time{line.Start, line.End} {
			if ts.Before(t.Min) {
				t.Min = ts
			}
			if ts.After(t.Max) {
				t.Max = ts
			}
		}
	}

	return t
}
