package speech

import (
	"net/http"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// HTTPProber checks recorded-audio availability with HEAD requests. Results
// are cached per URI for the session; the check itself runs through a
// circuit breaker so a dead asset host stops being probed after a few
// consecutive failures instead of delaying every card change.
type HTTPProber struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker

	mu    sync.Mutex
	cache map[string]bool
}

// NewHTTPProber creates a prober with a short per-request timeout.
func NewHTTPProber() *HTTPProber {
	settings := gobreaker.Settings{
		Name:    "audio-probe",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}

	return &HTTPProber{
		client:  &http.Client{Timeout: 4 * time.Second},
		breaker: gobreaker.NewCircuitBreaker(settings),
		cache:   make(map[string]bool),
	}
}

// Available reports whether a HEAD request for uri succeeds. Probe errors
// and open-breaker states map to false; only completed probes are cached.
func (p *HTTPProber) Available(uri string) bool {
	if uri == "" {
		return false
	}

	p.mu.Lock()
	if cached, ok := p.cache[uri]; ok {
		p.mu.Unlock()
		return cached
	}
	p.mu.Unlock()

	result, err := p.breaker.Execute(func() (interface{}, error) {
		resp, err := p.client.Head(uri)
		if err != nil {
			return nil, err
		}
		resp.Body.Close()
		return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
	})
	if err != nil {
		// Network failures count against the breaker but still pin the URI
		// as unavailable for the rest of the session.
		if err != gobreaker.ErrOpenState && err != gobreaker.ErrTooManyRequests {
			p.remember(uri, false)
		}
		return false
	}

	available := result.(bool)
	p.remember(uri, available)
	return available
}

func (p *HTTPProber) remember(uri string, available bool) {
	p.mu.Lock()
	p.cache[uri] = available
	p.mu.Unlock()
}
