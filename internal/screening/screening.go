// Package screening runs simulated entity screenings. A scan performs no list
// matching: it only advances a progress value on a fixed interval until it
// completes.
package screening

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// Step is the progress added on every tick.
	Step = 20
	// Complete is the progress value of a finished scan.
	Complete = 100

	DefaultInterval  = 300 * time.Millisecond
	defaultRetention = 10 * time.Minute
)

// ErrClosed is returned when starting a scan on a closed registry.
var ErrClosed = errors.New("screening registry closed")

// Scan is a snapshot of a screening run.
type Scan struct {
	ID         string    `json:"id"`
	Entity     string    `json:"entity"`
	Progress   int       `json:"progress"`
	Scanning   bool      `json:"scanning"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt,omitzero"`
}

// Advance returns the progress after one tick and whether the scan is still
// running. A scan that already reached Complete stops on the following tick.
func Advance(progress int) (int, bool) {
	if progress >= Complete {
		return Complete, false
	}
	return min(progress+Step, Complete), true
}

// Registry tracks running and recently finished scans.
type Registry struct {
	interval  time.Duration
	retention time.Duration
	now       func() time.Time
	logger    *slog.Logger

	mu     sync.Mutex
	scans  map[string]*Scan
	closed bool

	done chan struct{}
	wg   sync.WaitGroup
}

// NewRegistry returns a Registry whose scans tick every interval.
// A non-positive interval falls back to DefaultInterval.
func NewRegistry(interval time.Duration, logger *slog.Logger) *Registry {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		interval:  interval,
		retention: defaultRetention,
		now:       time.Now,
		logger:    logger,
		scans:     make(map[string]*Scan),
		done:      make(chan struct{}),
	}
}

// Start begins a scan of entity and returns its initial snapshot.
func (r *Registry) Start(entity string) (Scan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return Scan{}, ErrClosed
	}
	r.evictLocked()

	s := &Scan{
		ID:        uuid.NewString(),
		Entity:    strings.TrimSpace(entity),
		Progress:  0,
		Scanning:  true,
		StartedAt: r.now(),
	}
	r.scans[s.ID] = s

	r.wg.Add(1)
	go r.run(s)

	r.logger.Debug("screening scan started", "scan_id", s.ID, "entity", s.Entity)
	return *s, nil
}

// Get returns a snapshot of the scan with the given id.
func (r *Registry) Get(id string) (Scan, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.scans[id]
	if !ok {
		return Scan{}, false
	}
	return *s, true
}

// Len reports how many scans are tracked.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.scans)
}

// Close stops all running tickers and waits for their goroutines to exit.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.done)
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Registry) run(s *Scan) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			r.mu.Lock()
			progress, scanning := Advance(s.Progress)
			s.Progress = progress
			s.Scanning = scanning
			if !scanning {
				s.FinishedAt = r.now()
			}
			r.mu.Unlock()

			if !scanning {
				r.logger.Debug("screening scan finished", "scan_id", s.ID, "entity", s.Entity)
				return
			}
		}
	}
}

// evictLocked drops finished scans older than the retention window.
func (r *Registry) evictLocked() {
	cutoff := r.now().Add(-r.retention)
	for id, s := range r.scans {
		if !s.Scanning && s.FinishedAt.Before(cutoff) {
			delete(r.scans, id)
		}
	}
}
