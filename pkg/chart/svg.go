package chart

import (
	"bytes"
	"fmt"
	"html"
)

// RenderSVG draws the timeline as a standalone SVG document of the given width.
func RenderSVG(t Timeline, width int) []byte {
	if width <= 0 {
		width = DefaultSVGWidth
	}

	plotWidth := width - svgLabelWidth - 2*svgPadding
	if plotWidth < 1 {
		plotWidth = 1
	}
	rows := len(t.Rows)
	if rows == 0 {
		rows = 1
	}
	height := svgTopMargin + rows*svgRowHeight + svgAxisHeight + svgPadding

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif" font-size="12">`, width, height, width, height)
	buf.WriteString("\n")
	fmt.Fprintf(&buf, `<rect width="%d" height="%d" fill="#ffffff"/>`+"\n", width, height)
	fmt.Fprintf(&buf, `<text x="%d" y="%d" font-size="16" font-weight="bold">%s</text>`+"\n", svgPadding, svgPadding+12, html.EscapeString(t.Title))

	if t.Empty {
		buf.WriteString("</svg>\n")
		return buf.Bytes()
	}

	plotX := svgPadding + svgLabelWidth
	axisY := svgTopMargin + len(t.Rows)*svgRowHeight

	step := tickStep(t.Max.Sub(t.Min))
	for tick := firstTick(t.Min, step); !tick.After(t.Max); tick = tick.Add(step) {
		if tick.Before(t.Min) {
			continue
		}
		x := plotX + t.position(tick, plotWidth)
		fmt.Fprintf(&buf, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#e5e5e5"/>`+"\n", x, svgTopMargin, x, axisY)
		fmt.Fprintf(&buf, `<text x="%d" y="%d" text-anchor="middle" fill="#555555">%s</text>`+"\n", x, axisY+18, tick.Format(clockLayout))
	}

	for i, r := range t.Rows {
		y := svgTopMargin + i*svgRowHeight
		fmt.Fprintf(&buf, `<text x="%d" y="%d" text-anchor="end" dominant-baseline="middle">%s</text>`+"\n",
			plotX-8, y+svgRowHeight/2, html.EscapeString(truncate(r.Label, 32)))
	}

	for _, bar := range t.Bars {
		from, to := t.extent(bar, plotWidth)
		y := svgTopMargin + bar.Row*svgRowHeight + 4
		fmt.Fprintf(&buf, `<rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="%s"><title>%s: %s - %s</title></rect>`+"\n",
			plotX+from, y, to-from, svgRowHeight-8, bar.Color,
			html.EscapeString(bar.Task), bar.Start.Format(clockLayout), bar.End.Format(clockLayout))
	}

	fmt.Fprintf(&buf, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#999999"/>`+"\n", plotX, axisY, plotX+plotWidth, axisY)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
