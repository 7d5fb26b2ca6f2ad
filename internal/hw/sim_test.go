package hw

import (
	"context"
	"testing"
	"time"
)

func TestSim_ReadReturnsConfiguredCDI(t *testing.T) {
	var cdi [CDISize]byte
	cdi[0] = 0xab
	s := NewSim(SimConfig{CDI: cdi, Seed: 1})

	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read: unexpected error: %v", err)
	}
	if got != cdi {
		t.Errorf("Read() = %x, want %x", got, cdi)
	}
}

func TestSim_ReadGeneratesCDIWhenUnset(t *testing.T) {
	s := NewSim(SimConfig{Seed: 7})
	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read: unexpected error: %v", err)
	}
	if got == ([CDISize]byte{}) {
		t.Error("Read() returned all-zero CDI when none was configured")
	}
}

func TestSim_ReadWordDeterministicPerSeed(t *testing.T) {
	a := NewSim(SimConfig{Seed: 42})
	b := NewSim(SimConfig{Seed: 42})

	for i := 0; i < 4; i++ {
		wa, err := a.ReadWord()
		if err != nil {
			t.Fatalf("ReadWord: unexpected error: %v", err)
		}
		wb, err := b.ReadWord()
		if err != nil {
			t.Fatalf("ReadWord: unexpected error: %v", err)
		}
		if wa != wb {
			t.Errorf("ReadWord #%d diverged between same-seeded Sims: %d != %d", i, wa, wb)
		}
	}
}

func TestSim_LEDTracksLastSet(t *testing.T) {
	s := NewDefaultSim()
	if s.LEDColor() != Black {
		t.Errorf("initial LEDColor() = %v, want Black", s.LEDColor())
	}
	s.Set(Red | Blue)
	if got := s.LEDColor(); got != Red|Blue {
		t.Errorf("LEDColor() = %v, want Red|Blue", got)
	}
}

func TestSim_WaitTouchArmedReturnsImmediately(t *testing.T) {
	s := NewSim(SimConfig{Seed: 1, TouchArmed: true})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := s.Wait(ctx); err != nil {
		t.Errorf("Wait: unexpected error: %v", err)
	}
}

func TestSim_WaitBlocksUntilPress(t *testing.T) {
	s := NewSim(SimConfig{Seed: 1})
	done := make(chan error, 1)
	go func() {
		done <- s.Wait(context.Background())
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before Press was called")
	case <-time.After(20 * time.Millisecond):
	}

	s.Press()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Wait: unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Press")
	}
}

func TestSim_WaitRespectsContextCancellation(t *testing.T) {
	s := NewSim(SimConfig{Seed: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Wait(ctx); err != context.Canceled {
		t.Errorf("Wait(canceled ctx) error = %v, want context.Canceled", err)
	}
}
