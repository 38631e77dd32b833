package metronome

import (
	"sync"
	"testing"
	"time"

	"github.com/leandrodaf/strum/internal/logger"
)

type clickRecorder struct {
	mu    sync.Mutex
	freqs []float64
}

func (r *clickRecorder) PlayClick(freq, duration float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.freqs = append(r.freqs, freq)
	return nil
}

func (r *clickRecorder) recorded() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, len(r.freqs))
	copy(out, r.freqs)
	return out
}

func newTestScheduler(bpm int) (*Scheduler, *clickRecorder) {
	rec := &clickRecorder{}
	return NewScheduler(rec, bpm, logger.NewZapLogger()), rec
}

func collectBeats(t *testing.T, beats <-chan int, n int) []int {
	t.Helper()
	got := make([]int, 0, n)
	for len(got) < n {
		select {
		case b := <-beats:
			got = append(got, b)
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out after %d of %d beats", len(got), n)
		}
	}
	return got
}

func TestSetBPMClamps(t *testing.T) {
	s, _ := newTestScheduler(80)

	s.SetBPM(10)
	if got := s.BPM(); got != MinBPM {
		t.Errorf("SetBPM(10): BPM() = %d, want %d", got, MinBPM)
	}
	s.SetBPM(500)
	if got := s.BPM(); got != MaxBPM {
		t.Errorf("SetBPM(500): BPM() = %d, want %d", got, MaxBPM)
	}
	s.SetBPM(120)
	if got := s.BPM(); got != 120 {
		t.Errorf("SetBPM(120): BPM() = %d, want 120", got)
	}
}

func TestBeatCycleAndAccent(t *testing.T) {
	s, rec := newTestScheduler(200)
	beats := make(chan int, 16)

	s.Start(func(beat int) { beats <- beat })
	defer s.Stop()

	got := collectBeats(t, beats, 6)
	want := []int{0, 1, 2, 3, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("beat sequence = %v, want %v", got, want)
		}
	}

	freqs := rec.recorded()
	if freqs[0] != 1200 || freqs[4] != 1200 {
		t.Errorf("accent beats played %g and %g, want 1200", freqs[0], freqs[4])
	}
	if freqs[1] != 800 || freqs[2] != 800 || freqs[3] != 800 {
		t.Errorf("off beats played %v, want 800", freqs[1:4])
	}
}

func TestStartIdempotent(t *testing.T) {
	s, _ := newTestScheduler(200)
	beats := make(chan int, 16)

	s.Start(func(beat int) { beats <- beat })
	s.Start(func(beat int) { beats <- beat })
	defer s.Stop()

	if !s.IsRunning() {
		t.Fatal("IsRunning() = false after Start")
	}

	// A duplicate loop would interleave its own 0,1,2,3 cycle and
	// break the strict ordering.
	got := collectBeats(t, beats, 8)
	for i, b := range got {
		if b != i%4 {
			t.Fatalf("beat sequence = %v, want strict 0,1,2,3 cycle", got)
		}
	}
}

func TestStopBoundedWhileMidSleep(t *testing.T) {
	s, _ := newTestScheduler(MinBPM) // 1.5 s period, worst case sleep
	beats := make(chan int, 4)

	s.Start(func(beat int) { beats <- beat })
	<-beats // loop is now inside its sleep

	start := time.Now()
	s.Stop()
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Stop() took %v, want well under the stop timeout", elapsed)
	}
	if s.IsRunning() {
		t.Error("IsRunning() = true after Stop")
	}
}

func TestStopSafeInAnyState(t *testing.T) {
	s, _ := newTestScheduler(120)

	s.Stop() // never started
	s.Start(nil)
	s.Stop()
	s.Stop() // already stopped

	if s.IsRunning() {
		t.Error("IsRunning() = true after Stop")
	}
}

func TestRestartAfterStop(t *testing.T) {
	s, _ := newTestScheduler(200)
	beats := make(chan int, 8)

	s.Start(func(beat int) { beats <- beat })
	collectBeats(t, beats, 2)
	s.Stop()

	// Drop any beat queued before the stop landed.
	for {
		select {
		case <-beats:
			continue
		default:
		}
		break
	}

	s.Start(func(beat int) { beats <- beat })
	defer s.Stop()
	if got := collectBeats(t, beats, 1); got[0] != 0 {
		t.Errorf("first beat after restart = %d, want 0", got[0])
	}
	if !s.IsRunning() {
		t.Error("IsRunning() = false after restart")
	}
}
