package speech

import (
	"fmt"
	"os/exec"
	"sync"
)

// ESpeakSynthesizer speaks text through the espeak-ng engine.
type ESpeakSynthesizer struct {
	voice string
	speed int // words per minute
	pitch int // 0 to 99, 50 is neutral

	mu       sync.Mutex
	speakCmd *exec.Cmd
}

// espeak-ng's neutral reading pace in words per minute.
const espeakBaseSpeed = 150

// NewESpeakSynthesizer creates an espeak-ng synthesizer, mapping the shared
// rate/pitch parameters onto espeak's wpm and 0-99 pitch scales.
func NewESpeakSynthesizer(config *Config) *ESpeakSynthesizer {
	rate := config.Rate
	if rate <= 0 {
		rate = 1.0
	}
	speed := int(espeakBaseSpeed * rate)
	if speed < 80 {
		speed = 80
	} else if speed > 450 {
		speed = 450
	}

	pitch := 50
	if config.Pitch > 0 {
		pitch = int(50 * config.Pitch)
	}
	if pitch < 0 {
		pitch = 0
	} else if pitch > 99 {
		pitch = 99
	}

	voice := "en-us"
	if config.Lang == "en-GB" {
		voice = "en-gb"
	}

	return &ESpeakSynthesizer{voice: voice, speed: speed, pitch: pitch}
}

// Speak starts speaking the text and returns immediately. Any previous
// utterance is cancelled first.
func (e *ESpeakSynthesizer) Speak(text string) error {
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}

	cmd := exec.Command("espeak-ng",
		"-v", e.voice,
		"-s", fmt.Sprintf("%d", e.speed),
		"-p", fmt.Sprintf("%d", e.pitch),
		text,
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("espeak-ng failed to start: %w", err)
	}
	e.speakCmd = cmd

	go func() {
		cmd.Wait()
		e.mu.Lock()
		if e.speakCmd == cmd {
			e.speakCmd = nil
		}
		e.mu.Unlock()
	}()

	return nil
}

// Stop cancels any in-flight utterance. Idempotent.
func (e *ESpeakSynthesizer) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

func (e *ESpeakSynthesizer) stopLocked() {
	if e.speakCmd != nil && e.speakCmd.Process != nil {
		e.speakCmd.Process.Kill()
	}
	e.speakCmd = nil
}

// Name returns the provider name.
func (e *ESpeakSynthesizer) Name() string {
	return "espeak"
}

// IsAvailable verifies that espeak-ng is on the PATH.
func (e *ESpeakSynthesizer) IsAvailable() error {
	if err := exec.Command("espeak-ng", "--version").Run(); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", ErrUnavailable)
	}
	return nil
}
