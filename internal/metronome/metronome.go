// Package metronome runs a cancellable background beat loop that
// plays accented clicks on a fixed cadence, independent of chord
// playback.
package metronome

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/leandrodaf/strum/sdk/contracts"
)

// Tempo bounds; SetBPM clamps into this range.
const (
	MinBPM = 40
	MaxBPM = 200
)

const (
	accentClickHz = 1200 // first beat of the bar
	clickHz       = 800
	clickDuration = 0.05
	beatsPerBar   = 4
	stopTimeout   = 500 * time.Millisecond
)

// ClickPlayer plays a single metronome tick.
type ClickPlayer interface {
	PlayClick(freq, duration float64) error
}

// Scheduler is a two-state (stopped/running) periodic beat scheduler.
// bpm and running are read from the background loop and written from
// foreground calls; each is an independent atomic scalar, no broader
// lock is needed across them.
type Scheduler struct {
	logger  contracts.Logger
	clicks  ClickPlayer
	bpm     atomic.Int64
	running atomic.Bool

	mu   sync.Mutex // serializes Start/Stop transitions
	stop chan struct{}
	done chan struct{}
}

// NewScheduler creates a stopped scheduler at the given tempo.
func NewScheduler(clicks ClickPlayer, bpm int, logger contracts.Logger) *Scheduler {
	s := &Scheduler{logger: logger, clicks: clicks}
	s.SetBPM(bpm)
	return s
}

// Start launches the background beat loop. Calling Start on a running
// scheduler is a no-op, so at most one loop ever exists.
func (s *Scheduler) Start(cb contracts.BeatFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running.Load() {
		s.logger.Warn("metronome already running")
		return
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.running.Store(true)
	s.logger.Info("metronome started", s.logger.Field().Int("bpm", s.BPM()))
	go s.run(cb, s.stop, s.done)
}

// Stop halts the loop and waits, bounded by stopTimeout, for it to
// exit. Safe to call in any state, including before the first Start.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running.Load() {
		return
	}
	s.running.Store(false)
	close(s.stop)

	select {
	case <-s.done:
	case <-time.After(stopTimeout):
		s.logger.Warn("metronome loop did not exit within the stop timeout")
	}
	s.logger.Info("metronome stopped")
}

// SetBPM stores a new tempo, clamped to [MinBPM, MaxBPM]. The loop
// re-reads the tempo when computing each sleep, so the change takes
// effect on the next beat.
func (s *Scheduler) SetBPM(bpm int) {
	if bpm < MinBPM {
		bpm = MinBPM
	}
	if bpm > MaxBPM {
		bpm = MaxBPM
	}
	s.bpm.Store(int64(bpm))
}

// BPM returns the current tempo.
func (s *Scheduler) BPM() int {
	return int(s.bpm.Load())
}

// IsRunning reports whether the background loop is active.
func (s *Scheduler) IsRunning() bool {
	return s.running.Load()
}

func (s *Scheduler) run(cb contracts.BeatFunc, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	beat := 0
	for s.running.Load() {
		freq := float64(clickHz)
		if beat == 0 {
			freq = accentClickHz
		}
		if err := s.clicks.PlayClick(freq, clickDuration); err != nil {
			s.logger.Warn("metronome click failed", s.logger.Field().Error("error", err))
		}

		// The callback may be slow; that delays the next sleep but the
		// beat counter advances here regardless.
		if cb != nil {
			cb(beat)
		}
		beat = (beat + 1) % beatsPerBar

		interval := time.Duration(float64(time.Minute) / float64(s.bpm.Load()))
		select {
		case <-stop:
			return
		case <-time.After(interval):
		}
	}
}
