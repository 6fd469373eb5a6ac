package main

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/objectflow/objectflow-go/pkg/model"
)

// Simulation owns a registry and its logical clock. All access to the
// registry goes through it so the tick loop and the console never overlap.
type Simulation struct {
	mu   sync.Mutex
	reg  *model.Registry
	now  model.Time
	step model.Time
	log  *slog.Logger
}

// NewSimulation creates a simulation advancing the clock by step per tick.
func NewSimulation(reg *model.Registry, step model.Time, logger *slog.Logger) *Simulation {
	if logger == nil {
		logger = reg.Logger()
	}
	return &Simulation{reg: reg, step: step, log: logger}
}

// Do runs fn with exclusive access to the registry.
func (s *Simulation) Do(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// Now returns the current logical time.
func (s *Simulation) Now() model.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Tick advances the clock n steps, feeding each step to the registry.
// It returns the total number of interval activations. Timer errors are
// logged and do not stop the remaining steps.
func (s *Simulation) Tick(n int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fired := 0
	var last error
	for range n {
		s.now = (s.now + s.step) & s.reg.TimeMask()
		count, err := s.reg.AdvanceTime(s.now)
		fired += count
		if err != nil {
			s.log.Warn("advance time", "now", s.now, "error", err)
			last = err
		}
	}
	return fired, last
}

// Run ticks once per period until ctx is done or limit ticks have run.
// A limit of 0 runs until cancelled.
func (s *Simulation) Run(ctx context.Context, period time.Duration, limit int) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for ticks := 0; limit == 0 || ticks < limit; ticks++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fired, _ := s.Tick(1)
			if fired > 0 {
				s.log.Debug("tick", "now", s.Now(), "fired", fired)
			}
		}
	}
}
