package synth

import (
	"math"
	"testing"
)

func TestClickLength(t *testing.T) {
	buf := Click(1000, 0.05, 44100)
	if len(buf) != 2205 {
		t.Errorf("length = %d, want 2205", len(buf))
	}
}

func TestClickAmplitudeCeiling(t *testing.T) {
	buf := Click(1200, 0.05, 44100)
	for i, s := range buf {
		if math.Abs(s) > 0.5 {
			t.Fatalf("sample %d = %g exceeds half amplitude", i, s)
		}
	}
}

func TestClickDecays(t *testing.T) {
	buf := Click(800, 0.05, 44100)
	tenth := len(buf) / 10
	if head, tail := meanAbs(buf[:tenth]), meanAbs(buf[len(buf)-tenth:]); tail >= head {
		t.Errorf("tail mean %g not below head mean %g", tail, head)
	}
}
