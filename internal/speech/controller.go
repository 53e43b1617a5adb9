package speech

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"codeberg.org/snonux/kidcards/internal/catalog"
)

// Controller decides how a card gets spoken: recorded audio when the
// resource exists, synthesized speech otherwise. Every request carries a
// monotonically increasing token; a request that has been superseded stops
// before producing any audible effect instead of being aborted mid-step,
// since the playback backends cannot all be cancelled cooperatively.
//
// The mutex covers token bumps, backend stops and backend starts, so a
// request's final token check and its start are one atomic step. Only the
// availability probe runs outside the lock; it is the slow part.
type Controller struct {
	prober    Prober
	player    Player
	synth     Synthesizer
	assetBase string

	mu    sync.Mutex
	token atomic.Uint64
}

// NewController wires the speech decision logic to its backends. assetBase
// is the URL prefix for catalog-relative audio paths; empty disables
// recorded audio for cards without an absolute audio URL.
func NewController(prober Prober, player Player, synth Synthesizer, assetBase string) *Controller {
	return &Controller{
		prober:    prober,
		player:    player,
		synth:     synth,
		assetBase: strings.TrimSuffix(assetBase, "/"),
	}
}

// PlayCard speaks the card. It returns immediately; probing and playback
// run in the background. A later PlayCard or StopAll silences this
// request. Probe and playback failures degrade to synthesized speech and
// are never surfaced: a child's app must not show an error because a
// pronunciation clip is missing.
func (c *Controller) PlayCard(categoryID string, card catalog.Card) {
	token := c.supersede()
	go c.play(token, categoryID, card)
}

// Say speaks the card synchronously: the probe and playback hand-off happen
// on the caller's goroutine. Playback itself still finishes in the
// background. Used by the one-shot CLI mode.
func (c *Controller) Say(categoryID string, card catalog.Card) {
	token := c.supersede()
	c.play(token, categoryID, card)
}

// StopAll cancels any in-flight request and silences both backends.
// Idempotent, never fails: stopping an already-stopped backend is not an
// error condition.
func (c *Controller) StopAll() {
	c.supersede()
}

// supersede invalidates all earlier requests and silences the backends,
// returning the new request's token. At most one audio/speech output is
// ever active.
func (c *Controller) supersede() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	token := c.token.Add(1)
	c.player.Stop()
	c.synth.Stop()
	return token
}

func (c *Controller) play(token uint64, categoryID string, card catalog.Card) {
	if uri := c.AudioURI(categoryID, card); uri != "" {
		if c.prober.Available(uri) && c.startPlayback(token, uri) {
			return
		}
	}
	c.startSynth(token, card.SpokenText())
}

// startPlayback starts recorded playback unless the request has been
// superseded. Returns true when the request is finished, either because
// playback started or because a newer request took over; false means the
// player failed and synthesized speech should take its place.
func (c *Controller) startPlayback(token uint64, uri string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.current(token) {
		return true
	}
	if err := c.player.Play(uri); err != nil {
		// Playback failed after a positive probe; release the slot and let
		// synthesized speech take over rather than staying silent.
		c.player.Stop()
		return false
	}
	return true
}

// startSynth speaks the text unless the request has been superseded.
func (c *Controller) startSynth(token uint64, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.current(token) {
		return
	}
	c.synth.Speak(text)
}

// AudioURI resolves the recorded-audio location for a card. Absolute URLs
// are used as-is; catalog-relative paths and cards without an audio field
// resolve against the asset base, mirroring how the mobile shell locates
// the shared web assets.
func (c *Controller) AudioURI(categoryID string, card catalog.Card) string {
	audio := card.Audio
	if strings.HasPrefix(audio, "http://") || strings.HasPrefix(audio, "https://") {
		return audio
	}
	if c.assetBase == "" {
		return ""
	}
	if strings.HasPrefix(audio, "/") {
		return c.assetBase + audio
	}
	return fmt.Sprintf("%s/assets/audio/%s/%s.mp3", c.assetBase, categoryID, card.ID)
}

func (c *Controller) current(token uint64) bool {
	return c.token.Load() == token
}
