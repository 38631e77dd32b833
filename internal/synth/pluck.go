package synth

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// ErrInvalidFrequency is returned when a synthesis call receives a
// frequency that cannot form a delay line.
var ErrInvalidFrequency = errors.New("frequency must be positive")

// decay is the damping factor of the delay-line low-pass filter. It
// controls how long the string rings before the feedback loop dies out.
const decay = 0.996

// Pluck synthesizes one plucked-string voice with the Karplus-Strong
// algorithm: a delay line of one pitch period is seeded with noise and
// repeatedly smoothed by an averaging low-pass filter, then shaped by
// an exponential decay envelope. Samples stay within [-1, 1].
//
// rng drives the noise burst; nil draws a fresh time-seeded source, so
// two plucks of the same note differ slightly like real strings do.
func Pluck(freq, duration float64, sampleRate int, rng *rand.Rand) ([]float64, error) {
	if freq <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidFrequency, freq)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	period := int(math.Round(float64(sampleRate) / freq))
	if period < 1 {
		period = 1
	}

	delay := make([]float64, period)
	for i := range delay {
		delay[i] = rng.Float64()*2 - 1
	}

	n := int(math.Round(duration * float64(sampleRate)))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		j := i % period
		out[i] = delay[j]
		delay[j] = decay * 0.5 * (delay[j] + delay[(i+1)%period])
	}

	applyDecayEnvelope(out, 3)
	return out, nil
}

// applyDecayEnvelope scales the buffer by exp(-k*t) with t running
// linearly from 0 to 1 across the whole buffer.
func applyDecayEnvelope(buf []float64, k float64) {
	if len(buf) < 2 {
		return
	}
	span := float64(len(buf) - 1)
	for i := range buf {
		buf[i] *= math.Exp(-k * float64(i) / span)
	}
}
