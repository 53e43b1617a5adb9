package speech

import "testing"

func TestNewESpeakSynthesizerMapping(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantVoice string
		wantSpeed int
		wantPitch int
	}{
		{
			name:      "card reading defaults",
			config:    Config{Rate: 0.85, Pitch: 1.02, Lang: "en-US"},
			wantVoice: "en-us",
			wantSpeed: 127,
			wantPitch: 51,
		},
		{
			name:      "neutral delivery",
			config:    Config{Rate: 1.0, Pitch: 1.0, Lang: "en-US"},
			wantVoice: "en-us",
			wantSpeed: 150,
			wantPitch: 50,
		},
		{
			name:      "british voice",
			config:    Config{Rate: 1.0, Pitch: 1.0, Lang: "en-GB"},
			wantVoice: "en-gb",
			wantSpeed: 150,
			wantPitch: 50,
		},
		{
			name:      "rate clamped low",
			config:    Config{Rate: 0.1, Pitch: 1.0},
			wantVoice: "en-us",
			wantSpeed: 80,
			wantPitch: 50,
		},
		{
			name:      "rate clamped high",
			config:    Config{Rate: 5.0, Pitch: 1.0},
			wantVoice: "en-us",
			wantSpeed: 450,
			wantPitch: 50,
		},
		{
			name:      "zero rate treated as neutral",
			config:    Config{Rate: 0, Pitch: 1.0},
			wantVoice: "en-us",
			wantSpeed: 150,
			wantPitch: 50,
		},
		{
			name:      "pitch clamped high",
			config:    Config{Rate: 1.0, Pitch: 3.0},
			wantVoice: "en-us",
			wantSpeed: 150,
			wantPitch: 99,
		},
		{
			name:      "zero pitch treated as neutral",
			config:    Config{Rate: 1.0, Pitch: 0},
			wantVoice: "en-us",
			wantSpeed: 150,
			wantPitch: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewESpeakSynthesizer(&tt.config)
			if s.voice != tt.wantVoice {
				t.Errorf("voice = %q, want %q", s.voice, tt.wantVoice)
			}
			if s.speed != tt.wantSpeed {
				t.Errorf("speed = %d, want %d", s.speed, tt.wantSpeed)
			}
			if s.pitch != tt.wantPitch {
				t.Errorf("pitch = %d, want %d", s.pitch, tt.wantPitch)
			}
		})
	}
}

func TestESpeakSpeakEmptyText(t *testing.T) {
	s := NewESpeakSynthesizer(DefaultConfig())
	if err := s.Speak(""); err == nil {
		t.Error("Expected error for empty text")
	}
}

func TestESpeakName(t *testing.T) {
	if got := NewESpeakSynthesizer(DefaultConfig()).Name(); got != "espeak" {
		t.Errorf("Name() = %q, want espeak", got)
	}
}
