package speech

// Result is the recognised transcript.
type Result struct {
	Text     string
	Language string
}

// GoogleConfig configures the Google Cloud Speech-to-Text transcriber.
type GoogleConfig struct {
	// CredentialsPath points at a service account JSON file. Empty uses application default credentials.
	CredentialsPath string
	LanguageCode    string
	// FFmpegPath overrides the ffmpeg binary used for non-wav input.
	FFmpegPath string
}

func (c *GoogleConfig) applyDefaults() {
	if c.LanguageCode == "" {
		c.LanguageCode = DefaultLanguageCode
	}
	if c.FFmpegPath == "" {
		c.FFmpegPath = "ffmpeg"
	}
}
