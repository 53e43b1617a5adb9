package speech

import (
	"errors"
	"strings"
	"testing"

	"codeberg.org/snonux/kidcards/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Provider != "espeak" {
		t.Errorf("Expected provider 'espeak', got '%s'", config.Provider)
	}
	if config.Rate != 0.85 {
		t.Errorf("Expected rate 0.85, got %f", config.Rate)
	}
	if config.Pitch != 1.02 {
		t.Errorf("Expected pitch 1.02, got %f", config.Pitch)
	}
	if config.OpenAIModel != "gpt-4o-mini-tts" {
		t.Errorf("Expected OpenAI model 'gpt-4o-mini-tts', got '%s'", config.OpenAIModel)
	}
	if config.OpenAIVoice != "alloy" {
		t.Errorf("Expected OpenAI voice 'alloy', got '%s'", config.OpenAIVoice)
	}
}

func TestNewSynthesizer(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		wantErr  bool
		wantName string
	}{
		{
			name:     "nil config uses defaults",
			config:   nil,
			wantName: "espeak",
		},
		{
			name:     "espeak provider",
			config:   &Config{Provider: "espeak", Rate: 1.0, Pitch: 1.0},
			wantName: "espeak",
		},
		{
			name:     "openai provider with key",
			config:   &Config{Provider: "openai", OpenAIKey: "sk-test", Rate: 1.0},
			wantName: "openai",
		},
		{
			name:    "openai provider without key",
			config:  &Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			config:  &Config{Provider: "festival"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synth, err := NewSynthesizer(tt.config, &testutil.MockPlayer{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSynthesizer() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && synth.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", synth.Name(), tt.wantName)
			}
		})
	}
}

func TestSynthesizerWithFallbackSpeak(t *testing.T) {
	primary := &testutil.MockSynthesizer{}
	fallback := &testutil.MockSynthesizer{}
	s := NewSynthesizerWithFallback(primary, fallback)

	if err := s.Speak("hello"); err != nil {
		t.Fatalf("Speak() unexpected error: %v", err)
	}
	if len(primary.SpokenTexts()) != 1 || len(fallback.SpokenTexts()) != 0 {
		t.Error("Expected primary to speak and fallback to stay idle")
	}

	primary.SpeakErr = errors.New("primary down")
	if err := s.Speak("again"); err != nil {
		t.Fatalf("Speak() unexpected error with working fallback: %v", err)
	}
	spoken := fallback.SpokenTexts()
	if len(spoken) != 1 || spoken[0] != "again" {
		t.Errorf("Expected fallback to speak 'again', got %v", spoken)
	}

	fallback.SpeakErr = errors.New("fallback down")
	if err := s.Speak("silence"); err == nil {
		t.Error("Expected error when both synthesizers fail")
	}
}

func TestSynthesizerWithFallbackStop(t *testing.T) {
	primary := &testutil.MockSynthesizer{}
	fallback := &testutil.MockSynthesizer{}

	NewSynthesizerWithFallback(primary, fallback).Stop()

	if primary.Stops != 1 || fallback.Stops != 1 {
		t.Errorf("Expected both synthesizers stopped, got primary=%d fallback=%d",
			primary.Stops, fallback.Stops)
	}
}

func TestSynthesizerWithFallbackName(t *testing.T) {
	s := NewSynthesizerWithFallback(&testutil.MockSynthesizer{}, &testutil.MockSynthesizer{})
	if !strings.Contains(s.Name(), "fallback") {
		t.Errorf("Expected combined name, got %q", s.Name())
	}
}

func TestSynthesizerWithFallbackIsAvailable(t *testing.T) {
	available := &testutil.MockSynthesizer{}
	if err := NewSynthesizerWithFallback(available, &testutil.MockSynthesizer{}).IsAvailable(); err != nil {
		t.Errorf("IsAvailable() unexpected error: %v", err)
	}
}
