package gemini

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"
)
