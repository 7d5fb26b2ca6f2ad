package hw

import (
	"context"
	"math/rand"
	"sync"
)

// SimConfig configures a Sim.
type SimConfig struct {
	// CDI is the fixed Compound Device Identifier value Sim.Read
	// returns. If zero-valued, a Sim created via NewSim generates one
	// from Seed instead.
	CDI [CDISize]byte

	// Seed drives the deterministic math/rand source backing ReadWord,
	// so tests that need nonces or a generated CDI get reproducible
	// values across runs.
	Seed int64

	// TouchArmed, when true, makes Wait return immediately instead of
	// blocking until Press is called. Tests that don't care about
	// touch gating set this.
	TouchArmed bool
}

// DefaultSimConfig returns a Sim configuration seeded from a fixed
// value, suitable for tests that don't need to control the CDI or
// randomness directly.
func DefaultSimConfig() SimConfig {
	return SimConfig{Seed: 1}
}

// Sim is an in-memory stand-in for the four hardware interfaces
// (CDI, TRNG, LED, Touch), used by package tests and the
// cmd/tkey-oath-sim demo in place of memory-mapped I/O.
type Sim struct {
	mu sync.Mutex

	cdi  [CDISize]byte
	rng  *rand.Rand
	led  Color
	armed bool

	touchCh chan struct{}
}

// NewSim creates a Sim from the given configuration.
func NewSim(config SimConfig) *Sim {
	s := &Sim{
		cdi:     config.CDI,
		rng:     rand.New(rand.NewSource(config.Seed)),
		armed:   config.TouchArmed,
		touchCh: make(chan struct{}, 1),
	}
	if s.cdi == ([CDISize]byte{}) {
		s.rng.Read(s.cdi[:])
	}
	return s
}

// NewDefaultSim creates a Sim using DefaultSimConfig.
func NewDefaultSim() *Sim {
	return NewSim(DefaultSimConfig())
}

// Read returns the configured CDI value.
func (s *Sim) Read() ([CDISize]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cdi, nil
}

// ReadWord returns the next pseudo-random 32-bit word from the Sim's
// deterministic source. Unlike real hardware, it never blocks.
func (s *Sim) ReadWord() (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint32(), nil
}

// Set records the last color written to the LED, for test assertions.
func (s *Sim) Set(c Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.led = c
}

// LEDColor returns the color most recently passed to Set.
func (s *Sim) LEDColor() Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.led
}

// Press simulates a touch event, waking one pending Wait call.
func (s *Sim) Press() {
	select {
	case s.touchCh <- struct{}{}:
	default:
	}
}

// Wait blocks until Press is called, ctx is canceled, or the Sim was
// configured with TouchArmed, in which case it returns immediately.
func (s *Sim) Wait(ctx context.Context) error {
	s.mu.Lock()
	armed := s.armed
	s.mu.Unlock()
	if armed {
		return nil
	}
	select {
	case <-s.touchCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var (
	_ CDI   = (*Sim)(nil)
	_ TRNG  = (*Sim)(nil)
	_ LED   = (*Sim)(nil)
	_ Touch = (*Sim)(nil)
)
