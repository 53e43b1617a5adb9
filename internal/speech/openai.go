package speech

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAISynthesizer speaks text by synthesizing it through the OpenAI TTS
// API and playing the result through the recorded-audio player. Synthesized
// clips are cached on disk so a card heard once stays free and instant.
type OpenAISynthesizer struct {
	client   *openai.Client
	config   *Config
	player   Player
	cacheDir string
}

// NewOpenAISynthesizer creates an OpenAI TTS synthesizer.
func NewOpenAISynthesizer(config *Config, player Player) *OpenAISynthesizer {
	cacheDir := filepath.Join(os.TempDir(), "kidcards-tts")

	return &OpenAISynthesizer{
		client:   openai.NewClient(config.OpenAIKey),
		config:   config,
		player:   player,
		cacheDir: cacheDir,
	}
}

// Speak synthesizes the text and starts playing it.
func (s *OpenAISynthesizer) Speak(text string) error {
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}

	clipFile := s.cacheFilePath(text)
	if _, err := os.Stat(clipFile); err != nil {
		if err := s.synthesize(text, clipFile); err != nil {
			return err
		}
	}

	return s.player.Play(clipFile)
}

func (s *OpenAISynthesizer) synthesize(text, outputFile string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(s.config.OpenAIModel),
		Input:          text,
		Voice:          openai.SpeechVoice(s.config.OpenAIVoice),
		Speed:          s.config.Rate,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	}

	response, err := s.client.CreateSpeech(ctx, req)
	if err != nil {
		return fmt.Errorf("OpenAI TTS API error: %w", err)
	}
	defer response.Close()

	if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}
	defer out.Close()

	written, err := io.Copy(out, response)
	if err != nil {
		os.Remove(outputFile)
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	if written == 0 {
		os.Remove(outputFile)
		return fmt.Errorf("no audio data received from OpenAI")
	}

	return nil
}

// Stop stops any clip currently playing.
func (s *OpenAISynthesizer) Stop() {
	s.player.Stop()
}

// Name returns the provider name.
func (s *OpenAISynthesizer) Name() string {
	return "openai"
}

// IsAvailable checks that an API key is configured. No test call is made;
// that would use credits on every startup.
func (s *OpenAISynthesizer) IsAvailable() error {
	if s.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured: %w", ErrUnavailable)
	}
	return nil
}

// cacheFilePath hashes the text and delivery settings into a cache location.
func (s *OpenAISynthesizer) cacheFilePath(text string) string {
	h := md5.New()
	h.Write([]byte(text))
	h.Write([]byte(s.config.OpenAIModel))
	h.Write([]byte(s.config.OpenAIVoice))
	h.Write([]byte(fmt.Sprintf("%.2f", s.config.Rate)))
	hash := hex.EncodeToString(h.Sum(nil))

	return filepath.Join(s.cacheDir, hash[:2], hash[2:]+".mp3")
}
