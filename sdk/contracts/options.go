package contracts

import "time"

// ClientOptions defines the configuration options for the audio client.
type ClientOptions struct {
	Logger        Logger        // Logger for logging events and errors.
	LogLevel      LogLevel      // Level of logging to use.
	SampleRate    int           // Output sample rate in Hz.
	StrumDelay    time.Duration // Onset offset between adjacent strings in a strum.
	VoiceDuration time.Duration // Length of each synthesized string voice.
	BPM           int           // Initial metronome tempo.
	Sink          PlaybackSink  // Playback sink; resolved automatically when nil.
	RandSeed      int64         // Non-zero seeds the noise source for deterministic output.
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the audio client.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the audio client.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithSampleRate sets the output sample rate in Hz.
func WithSampleRate(rate int) Option {
	return func(opts *ClientOptions) {
		opts.SampleRate = rate
	}
}

// WithStrumDelay sets the time offset between the onsets of adjacent
// strings within a chord.
func WithStrumDelay(d time.Duration) Option {
	return func(opts *ClientOptions) {
		opts.StrumDelay = d
	}
}

// WithVoiceDuration sets the length of each synthesized string voice.
func WithVoiceDuration(d time.Duration) Option {
	return func(opts *ClientOptions) {
		opts.VoiceDuration = d
	}
}

// WithBPM sets the initial metronome tempo.
func WithBPM(bpm int) Option {
	return func(opts *ClientOptions) {
		opts.BPM = bpm
	}
}

// WithPlaybackSink injects a playback sink, bypassing device detection.
func WithPlaybackSink(sink PlaybackSink) Option {
	return func(opts *ClientOptions) {
		opts.Sink = sink
	}
}

// WithRandSeed seeds the synthesizer's noise source so repeated calls
// produce identical buffers. Zero (the default) draws a fresh source
// per call.
func WithRandSeed(seed int64) Option {
	return func(opts *ClientOptions) {
		opts.RandSeed = seed
	}
}
