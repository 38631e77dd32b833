// Package guitar exposes the public surface of the audio engine:
// note resolution, plucked-string synthesis, chord strumming, clicks,
// and the metronome scheduler.
package guitar

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/leandrodaf/strum/internal/metronome"
	"github.com/leandrodaf/strum/internal/synth"
	"github.com/leandrodaf/strum/sdk/contracts"
)

// NewAudioClient creates a new audio client with the specified options.
// When no playback sink is injected, the default output device is
// opened; if that fails, the client degrades to a silent sink and all
// synthesis operations stay fully usable.
func NewAudioClient(opts ...contracts.Option) (contracts.ClientAudio, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &client{
		logger:        options.Logger,
		sink:          resolveSink(&options),
		sampleRate:    options.SampleRate,
		strumDelay:    options.StrumDelay,
		voiceDuration: options.VoiceDuration,
		seed:          options.RandSeed,
	}, nil
}

// NewMetronome creates a stopped metronome that plays its clicks
// through the given client. The initial tempo comes from WithBPM.
func NewMetronome(c contracts.ClientAudio, opts ...contracts.Option) (contracts.Metronome, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}
	return metronome.NewScheduler(c, options.BPM, options.Logger), nil
}

type client struct {
	logger        contracts.Logger
	sink          contracts.PlaybackSink
	sampleRate    int
	strumDelay    time.Duration
	voiceDuration time.Duration
	seed          int64
}

// Frequency resolves a string/fret position to a pitch in Hz.
func (c *client) Frequency(s contracts.GuitarString, fret contracts.Fret) (float64, error) {
	return synth.Frequency(s, fret)
}

// Pluck synthesizes one plucked-string voice at the client sample
// rate. Pure computation; nothing is submitted for playback.
func (c *client) Pluck(freq, duration float64) ([]float64, error) {
	return synth.Pluck(freq, duration, c.sampleRate, c.rng())
}

// PlayChord strums the shape: each non-muted string becomes one voice,
// offset by its index times the strum delay, then all voices are mixed
// and normalized into a single buffer handed to the sink. The call
// returns once the buffer is submitted, not once playback finishes.
func (c *client) PlayChord(frets contracts.Frets) error {
	if frets.AllMuted() {
		c.logger.Debug("all strings muted; nothing to play")
		return nil
	}

	delaySamples := int(c.strumDelay.Seconds() * float64(c.sampleRate))

	voices := make([][]float64, 0, len(frets))
	offsets := make([]int, 0, len(frets))
	for i, fret := range frets {
		if fret == contracts.Muted {
			continue
		}
		freq, err := synth.Frequency(contracts.StandardTuning[i], fret)
		if err != nil {
			return fmt.Errorf("string %s: %w", contracts.StandardTuning[i], err)
		}
		voice, err := synth.Pluck(freq, c.voiceDuration.Seconds(), c.sampleRate, c.rng())
		if err != nil {
			return fmt.Errorf("string %s: %w", contracts.StandardTuning[i], err)
		}
		voices = append(voices, voice)
		offsets = append(offsets, i*delaySamples)
	}

	c.submit(synth.MixStrum(voices, offsets))
	return nil
}

// PlayClick plays a short percussive sine tone.
func (c *client) PlayClick(freq, duration float64) error {
	c.submit(synth.Click(freq, duration, c.sampleRate))
	return nil
}

// Audible reports whether playback reaches a real output device.
func (c *client) Audible() bool {
	return c.sink.Audible()
}

// StopAll halts any in-flight playback.
func (c *client) StopAll() {
	c.sink.StopAll()
}

// Close releases the playback sink.
func (c *client) Close() error {
	return c.sink.Close()
}

// submit hands a finished buffer to the sink. Submission failures are
// logged and swallowed; missed audio feedback is never fatal.
func (c *client) submit(samples []float64) {
	if err := c.sink.Submit(samples); err != nil {
		c.logger.Warn("playback submission failed", c.logger.Field().Error("error", err))
	}
}

// rng returns the noise source for one synthesis call: the configured
// seed when set, otherwise a fresh time-seeded source per call.
func (c *client) rng() *rand.Rand {
	if c.seed != 0 {
		return rand.New(rand.NewSource(c.seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
