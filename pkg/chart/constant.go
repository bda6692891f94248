package chart

const (
	// PlaceholderTitle titles the chart when no task could be parsed.
	PlaceholderTitle = "No valid tasks found"
	// DefaultTitle titles a chart with at least one task.
	DefaultTitle = "Daily schedule"

	// DefaultTerminalWidth is the bar area width used when a renderer gets a non-positive width.
	DefaultTerminalWidth = 60
	// DefaultSVGWidth is the SVG canvas width used when a renderer gets a non-positive width.
	DefaultSVGWidth = 960

	svgLabelWidth = 200
	svgRowHeight  = 28
	svgTopMargin  = 48
	svgAxisHeight = 32
	svgPadding    = 16
)

// palette cycles per label, in the order labels first appear.
var palette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}
