package contracts

// PlaybackSink accepts finished sample buffers for immediate output.
// Implementations must be safe for concurrent use: the engine submits
// chords from the caller's goroutine while the metronome submits
// clicks from its own.
type PlaybackSink interface {
	// Submit begins playback of the buffer immediately, preempting any
	// buffer still in flight. Samples are mono, in [-1, 1], at the
	// sample rate the sink was created with.
	Submit(samples []float64) error
	// StopAll halts any in-flight playback. Idempotent, never panics.
	StopAll()
	// Audible reports whether a real output device backs this sink.
	// Resolved once at construction, never inferred from call failures.
	Audible() bool
	// Close releases the output device, if any.
	Close() error
}

// ClientAudio defines the operations of the guitar audio engine.
// Synthesis methods are pure computation and remain fully usable when
// no audio device is available; playback methods degrade to silent
// no-ops in that case.
type ClientAudio interface {
	// Frequency resolves a string/fret position to a pitch in Hz.
	Frequency(s GuitarString, fret Fret) (float64, error)
	// Pluck synthesizes a single plucked-string voice of the given
	// frequency (Hz) and duration (seconds) at the client sample rate.
	Pluck(freq, duration float64) ([]float64, error)
	// PlayChord strums the given shape: synthesizes every non-muted
	// string, staggers the voices by the strum delay, mixes and
	// normalizes them, and submits the result. Fire-and-forget; the
	// call returns once the buffer is handed to the sink. A fully
	// muted shape produces no submission at all.
	PlayChord(frets Frets) error
	// PlayClick plays a short percussive sine tone, e.g. a metronome
	// tick. Typical values are 1000 Hz and 0.05 s.
	PlayClick(freq, duration float64) error
	// Audible reports whether playback reaches a real device.
	Audible() bool
	// StopAll halts any in-flight playback.
	StopAll()
	Close() error
}

// BeatFunc is invoked on every metronome beat with the beat index in
// [0, 3]. Index 0 is the accented beat.
type BeatFunc func(beat int)

// Metronome is a periodic background click scheduler.
type Metronome interface {
	// Start launches the background beat loop. Calling Start while the
	// metronome is already running is a no-op; at most one loop exists.
	Start(cb BeatFunc)
	// Stop halts the loop and waits, bounded, for it to exit. Safe to
	// call in any state, never panics.
	Stop()
	// SetBPM stores a new tempo, clamped to the supported range. Takes
	// effect on the next beat, never mid-beat.
	SetBPM(bpm int)
	BPM() int
	IsRunning() bool
}
