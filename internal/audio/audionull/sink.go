// Package audionull provides the silent playback sink used when no
// audio device is available. Synthesis stays fully usable; submissions
// are discarded.
package audionull

import "github.com/leandrodaf/strum/sdk/contracts"

// Sink discards every buffer it receives.
type Sink struct {
	logger contracts.Logger
}

// NewSink creates a silent sink.
func NewSink(logger contracts.Logger) *Sink {
	logger.Info("using silent playback sink; audio output disabled")
	return &Sink{logger: logger}
}

// Submit discards the buffer.
func (s *Sink) Submit(samples []float64) error {
	s.logger.Debug("discarding buffer on silent sink", s.logger.Field().Int("samples", len(samples)))
	return nil
}

// StopAll is a no-op.
func (s *Sink) StopAll() {}

// Audible reports that no device backs this sink.
func (s *Sink) Audible() bool { return false }

// Close is a no-op.
func (s *Sink) Close() error { return nil }
