package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile       string
	CatalogFile   string
	StatePath     string
	AssetBase     string
	Category      string
	Voice         bool
	Autoplay      bool
	DelayMs       int
	Stats         bool
	ResetProgress bool
	Say           string

	// Speech flags
	SpeechProvider string
	SpeechRate     float64
	SpeechPitch    float64
	SpeechLang     string
	OpenAIModel    string
	OpenAIVoice    string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		AssetBase:      "https://akashbadhe.github.io/baby-books",
		DelayMs:        3000,
		SpeechProvider: "espeak",
		SpeechRate:     0.85,
		SpeechPitch:    1.02,
		SpeechLang:     "en-US",
		OpenAIModel:    "gpt-4o-mini-tts",
		OpenAIVoice:    "alloy",
	}
}
