package speech

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned by a Synthesizer that is not usable on this
// system (missing binary, missing API key).
var ErrUnavailable = errors.New("synthesizer unavailable")

// Prober answers whether a recorded-audio resource exists. Implementations
// never return an error to callers; internal failures map to false.
type Prober interface {
	Available(uri string) bool
}

// Player plays recorded audio. At most one playback is active at a time;
// starting a new one while another runs is the caller's bug, Stop first.
type Player interface {
	// Play starts playback of the resource and returns once playback has
	// started (or failed to start).
	Play(uri string) error

	// Stop stops and releases any active playback. Idempotent, never fails.
	Stop()
}

// Synthesizer speaks text aloud. Speak is fire-and-forget: it returns once
// synthesis has been handed to the backend.
type Synthesizer interface {
	Speak(text string) error
	Stop()
	Name() string
	IsAvailable() error
}

// Config holds common configuration for the speech stack.
type Config struct {
	Provider string // Synthesizer name: "espeak" or "openai"

	// Delivery parameters, shared by all synthesizers. Rate below 1.0 and a
	// slight pitch lift give the friendly reading pace the cards need.
	Rate  float64
	Pitch float64
	Lang  string

	// AssetBase is the URL prefix for catalog-relative audio paths.
	AssetBase string

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string
	OpenAIVoice string
}

// DefaultConfig returns the default speech configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:    "espeak",
		Rate:        0.85,
		Pitch:       1.02,
		Lang:        "en-US",
		AssetBase:   "https://akashbadhe.github.io/baby-books",
		OpenAIModel: "gpt-4o-mini-tts",
		OpenAIVoice: "alloy",
	}
}

// NewSynthesizer creates the synthesizer named by the configuration.
func NewSynthesizer(config *Config, player Player) (Synthesizer, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "espeak":
		return NewESpeakSynthesizer(config), nil

	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAISynthesizer(config, player), nil

	default:
		return nil, fmt.Errorf("unknown speech provider: %s", config.Provider)
	}
}

// SynthesizerWithFallback wraps a primary synthesizer with a fallback option.
type SynthesizerWithFallback struct {
	primary  Synthesizer
	fallback Synthesizer
}

// NewSynthesizerWithFallback creates a synthesizer that falls back to
// secondary if primary fails.
func NewSynthesizerWithFallback(primary, fallback Synthesizer) Synthesizer {
	return &SynthesizerWithFallback{primary: primary, fallback: fallback}
}

// Speak tries the primary synthesizer first, falls back on error.
func (s *SynthesizerWithFallback) Speak(text string) error {
	if err := s.primary.Speak(text); err != nil {
		return s.fallback.Speak(text)
	}
	return nil
}

// Stop stops both synthesizers.
func (s *SynthesizerWithFallback) Stop() {
	s.primary.Stop()
	s.fallback.Stop()
}

// Name returns the combined provider name.
func (s *SynthesizerWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", s.primary.Name(), s.fallback.Name())
}

// IsAvailable checks if at least one synthesizer is available.
func (s *SynthesizerWithFallback) IsAvailable() error {
	primaryErr := s.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := s.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both synthesizers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
