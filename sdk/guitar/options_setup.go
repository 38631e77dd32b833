package guitar

import (
	"time"

	"github.com/leandrodaf/strum/internal/logger"
	"github.com/leandrodaf/strum/sdk/contracts"
)

// applyDefaultOptions sets default values for ClientOptions if not explicitly provided.
func applyDefaultOptions(opts ...contracts.Option) (contracts.ClientOptions, error) {
	options := &contracts.ClientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Set defaults if options are not provided
	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel
	}
	if options.SampleRate == 0 {
		options.SampleRate = 44100
	}
	if options.StrumDelay == 0 {
		options.StrumDelay = 30 * time.Millisecond
	}
	if options.VoiceDuration == 0 {
		options.VoiceDuration = 2 * time.Second
	}
	if options.BPM == 0 {
		options.BPM = 80
	}

	options.Logger.SetLevel(options.LogLevel)
	return *options, nil
}
