package chart

import "time"

// position maps ts onto [0, width] relative to the timeline bounds.
func (t Timeline) position(ts time.Time, width int) int {
	span := t.Max.Sub(t.Min)
	if span <= 0 {
		return 0
	}
	p := int(float64(ts.Sub(t.Min)) / float64(span) * float64(width))
	if p < 0 {
		return 0
	}
	if p > width {
		return width
	}
	return p
}

// extent returns the [from, to) cells covered by b. Every bar covers at least one cell
// so zero-length or inverted intervals stay visible.
func (t Timeline) extent(b Bar, width int) (int, int) {
	from := t.position(b.Start, width)
	to := t.position(b.End, width)
	if to < from {
		from, to = to, from
	}
	if to == from {
		if from >= width && width > 0 {
			from = width - 1
		}
		to = from + 1
	}
	return from, to
}

// tickStep picks an axis step that keeps labels readable.
func tickStep(span time.Duration) time.Duration {
	switch {
	case span <= 2*time.Hour:
		return 30 * time.Minute
	case span <= 12*time.Hour:
		return time.Hour
	default:
		return 2 * time.Hour
	}
}

// firstTick floors min to a multiple of step on the wall clock of min's location,
// so ticks land on the hour even in zones with a half-hour offset.
func firstTick(min time.Time, step time.Duration) time.Time {
	stepMin := int(step / time.Minute)
	if stepMin <= 0 {
		return min
	}
	minutes := min.Hour()*60 + min.Minute()
	minutes -= minutes % stepMin
	return time.Date(min.Year(), min.Month(), min.Day(), 0, minutes, 0, 0, min.Location())
}
