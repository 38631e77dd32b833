// Package audiooto implements the playback sink on a real audio
// device through oto v3.
package audiooto

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/leandrodaf/strum/sdk/contracts"
)

// ErrNoAudioDevice is returned when the audio context cannot be opened.
var ErrNoAudioDevice = errors.New("no audio device available")

// Sink plays mono float buffers on the default output device. A new
// submission preempts whatever is still playing; there is no queue.
type Sink struct {
	logger     contracts.Logger
	ctx        *oto.Context
	sampleRate int

	mu     sync.Mutex // guards player lifecycle
	player *oto.Player
}

// NewSink opens the audio device at the given sample rate. The oto
// context is process-wide; create one sink per process.
func NewSink(sampleRate int, logger contracts.Logger) (*Sink, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoAudioDevice, err)
	}
	<-ready

	logger.Info("audio output ready", logger.Field().Int("sampleRate", sampleRate))
	return &Sink{logger: logger, ctx: ctx, sampleRate: sampleRate}, nil
}

// Submit starts playback of the buffer immediately, closing any
// player still running so the newest submission takes effect.
func (s *Sink) Submit(samples []float64) error {
	buf := floatsToBytes(samples)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.player != nil {
		if err := s.player.Close(); err != nil {
			s.logger.Debug("closing preempted player", s.logger.Field().Error("error", err))
		}
	}
	s.player = s.ctx.NewPlayer(bytes.NewReader(buf))
	s.player.Play()
	return nil
}

// StopAll halts any in-flight playback. Idempotent.
func (s *Sink) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.player != nil {
		if err := s.player.Close(); err != nil {
			s.logger.Debug("closing player", s.logger.Field().Error("error", err))
		}
		s.player = nil
	}
}

// Audible reports that a real device backs this sink.
func (s *Sink) Audible() bool { return true }

// Close stops playback and suspends the audio context.
func (s *Sink) Close() error {
	s.StopAll()
	return s.ctx.Suspend()
}

// floatsToBytes converts mono float64 samples to the little-endian
// float32 stream oto consumes.
func floatsToBytes(samples []float64) []byte {
	buf := make([]byte, 4*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(float32(v)))
	}
	return buf
}
