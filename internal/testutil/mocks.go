package testutil

import (
	"fmt"
	"sync"

	"codeberg.org/snonux/kidcards/internal/catalog"
)

// MockStore mocks the key-value state store
type MockStore struct {
	mu     sync.Mutex
	Values map[string]string
	Errors map[string]error
	Calls  []string
}

// NewMockStore creates an empty mock store
func NewMockStore() *MockStore {
	return &MockStore{
		Values: make(map[string]string),
		Errors: make(map[string]error),
	}
}

// Get mocks reading a stored value
func (m *MockStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, fmt.Sprintf("GET %s", key))

	if err, ok := m.Errors[key]; ok {
		return "", false, err
	}

	value, ok := m.Values[key]
	return value, ok, nil
}

// Set mocks storing a value
func (m *MockStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, fmt.Sprintf("SET %s", key))

	if err, ok := m.Errors[key]; ok {
		return err
	}

	m.Values[key] = value
	return nil
}

// Delete mocks removing a key
func (m *MockStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, fmt.Sprintf("DELETE %s", key))

	if err, ok := m.Errors[key]; ok {
		return err
	}

	delete(m.Values, key)
	return nil
}

// Value returns a stored value without recording a call
func (m *MockStore) Value(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Values[key]
}

// MockSpeaker mocks the engine-facing speech controller
type MockSpeaker struct {
	mu       sync.Mutex
	Played   []string
	StopAlls int
}

// PlayCard records a speech request as "categoryID:cardID"
func (m *MockSpeaker) PlayCard(categoryID string, card catalog.Card) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Played = append(m.Played, categoryID+":"+card.ID)
}

// StopAll records a cancellation request
func (m *MockSpeaker) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StopAlls++
}

// PlayedCards returns a copy of the recorded speech requests
func (m *MockSpeaker) PlayedCards() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Played...)
}

// MockProber mocks the recorded-audio availability check
type MockProber struct {
	mu           sync.Mutex
	Availability map[string]bool
	Calls        []string
}

// NewMockProber creates a prober with the given availability map
func NewMockProber(availability map[string]bool) *MockProber {
	if availability == nil {
		availability = make(map[string]bool)
	}
	return &MockProber{Availability: availability}
}

// Available mocks the HEAD-style existence check
func (m *MockProber) Available(uri string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, uri)
	return m.Availability[uri]
}

// MockPlayer mocks recorded-audio playback
type MockPlayer struct {
	mu      sync.Mutex
	PlayErr error
	Played  []string
	Stops   int
}

// Play mocks starting playback
func (m *MockPlayer) Play(uri string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PlayErr != nil {
		return m.PlayErr
	}
	m.Played = append(m.Played, uri)
	return nil
}

// Stop mocks stopping playback
func (m *MockPlayer) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Stops++
}

// PlayedURIs returns a copy of the played URIs
func (m *MockPlayer) PlayedURIs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Played...)
}

// MockSynthesizer mocks text-to-speech synthesis
type MockSynthesizer struct {
	mu       sync.Mutex
	SpeakErr error
	Spoken   []string
	Stops    int
}

// Speak mocks speaking text
func (m *MockSynthesizer) Speak(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SpeakErr != nil {
		return m.SpeakErr
	}
	m.Spoken = append(m.Spoken, text)
	return nil
}

// Stop mocks cancelling synthesis
func (m *MockSynthesizer) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Stops++
}

// Name returns the mock provider name
func (m *MockSynthesizer) Name() string { return "mock" }

// IsAvailable reports the mock as always available
func (m *MockSynthesizer) IsAvailable() error { return nil }

// SpokenTexts returns a copy of the spoken texts
func (m *MockSynthesizer) SpokenTexts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Spoken...)
}
