package speech

import (
	"fmt"
	"os/exec"
	"runtime"
	"sync"
)

// ExecPlayer plays recorded audio through a platform audio command. It owns
// the single active-playback slot: starting a new playback always releases
// the previous process first, including on error paths.
type ExecPlayer struct {
	mu      sync.Mutex
	playCmd *exec.Cmd
}

// NewExecPlayer creates a player backed by platform audio commands.
func NewExecPlayer() *ExecPlayer {
	return &ExecPlayer{}
}

// Play starts playback of the file or URL and returns once the player
// process has started. Playback continues in the background until it
// finishes or Stop is called.
func (p *ExecPlayer) Play(uri string) error {
	cmd, err := playbackCommand(uri)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start audio playback: %w", err)
	}
	p.playCmd = cmd

	// Reap the process when playback finishes on its own.
	go func() {
		cmd.Wait()
		p.mu.Lock()
		if p.playCmd == cmd {
			p.playCmd = nil
		}
		p.mu.Unlock()
	}()

	return nil
}

// Stop kills any active playback. Idempotent.
func (p *ExecPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *ExecPlayer) stopLocked() {
	if p.playCmd != nil && p.playCmd.Process != nil {
		p.playCmd.Process.Kill()
	}
	p.playCmd = nil
}

// playbackCommand builds the platform-specific playback command.
func playbackCommand(uri string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("afplay", uri), nil
	case "linux":
		// mpg123 first since it handles MP3 files and URLs best
		if _, err := exec.LookPath("mpg123"); err == nil {
			return exec.Command("mpg123", "-q", uri), nil
		}
		if _, err := exec.LookPath("ffplay"); err == nil {
			return exec.Command("ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", uri), nil
		}
		if _, err := exec.LookPath("play"); err == nil {
			return exec.Command("play", "-q", uri), nil
		}
		if _, err := exec.LookPath("paplay"); err == nil {
			return exec.Command("paplay", uri), nil
		}
		if _, err := exec.LookPath("aplay"); err == nil {
			return exec.Command("aplay", "-q", uri), nil
		}
		return nil, fmt.Errorf("no audio player found. Install mpg123, ffplay, sox, paplay, or aplay")
	case "windows":
		return exec.Command("cmd", "/c", "start", "/min", uri), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
