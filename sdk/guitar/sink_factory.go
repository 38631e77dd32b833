package guitar

import (
	"github.com/leandrodaf/strum/internal/audio/audionull"
	"github.com/leandrodaf/strum/internal/audio/audiooto"
	"github.com/leandrodaf/strum/sdk/contracts"
)

// resolveSink picks the playback sink once, at construction. An
// injected sink wins; otherwise the default output device is opened,
// falling back to the silent sink when no device is available. The
// choice is final: callers query Audible rather than probing playback
// failures at call time.
func resolveSink(opts *contracts.ClientOptions) contracts.PlaybackSink {
	if opts.Sink != nil {
		return opts.Sink
	}

	sink, err := audiooto.NewSink(opts.SampleRate, opts.Logger)
	if err != nil {
		opts.Logger.Warn("audio device unavailable; playback disabled",
			opts.Logger.Field().Error("error", err))
		return audionull.NewSink(opts.Logger)
	}
	return sink
}
