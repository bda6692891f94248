package speech

const (
	ProviderGroq   = "groq"
	ProviderGoogle = "google"

	// DefaultLanguageCode is used by Google when no language is configured.
	DefaultLanguageCode = "en-US"

	// googleSampleRate is the LINEAR16 rate audio is normalised to before recognition.
	googleSampleRate = 16000
)
