package synth

import "math"

const (
	// targetPeak is the absolute amplitude the loudest sample of a mix
	// is normalized to, leaving headroom below full scale.
	targetPeak = 0.7
	// normEpsilon keeps the normalization divisor away from zero.
	normEpsilon = 0.001
)

// MixStrum sums the given voices at their per-voice sample offsets
// into a single buffer sized to the longest padded voice, then
// normalizes so the peak lands on targetPeak. Relative dynamics
// between voices are preserved. Returns nil when no voices are given.
//
// offsets must be the same length as voices; offsets[i] is the number
// of leading silent samples before voice i starts.
func MixStrum(voices [][]float64, offsets []int) []float64 {
	length := 0
	for i, v := range voices {
		if l := len(v) + offsets[i]; l > length {
			length = l
		}
	}
	if length == 0 {
		return nil
	}

	mixed := make([]float64, length)
	for i, v := range voices {
		off := offsets[i]
		for j, s := range v {
			mixed[off+j] += s
		}
	}

	peak := 0.0
	for _, s := range mixed {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	scale := targetPeak / (peak + normEpsilon)
	for i := range mixed {
		mixed[i] *= scale
	}
	return mixed
}
