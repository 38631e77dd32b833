package synth

import "math"

// Click generates a short percussive sine tone: a raw sine at the
// requested frequency under a fast exponential decay, scaled to half
// amplitude so clicks sit under chord playback.
func Click(freq, duration float64, sampleRate int) []float64 {
	n := int(math.Round(duration * float64(sampleRate)))
	if n < 2 {
		return make([]float64, n)
	}
	out := make([]float64, n)
	span := float64(n - 1)
	for i := range out {
		t := duration * float64(i) / span
		out[i] = math.Sin(2*math.Pi*freq*t) * math.Exp(-30*t) * 0.5
	}
	return out
}
