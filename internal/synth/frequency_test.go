package synth

import (
	"errors"
	"math"
	"testing"

	"github.com/leandrodaf/strum/sdk/contracts"
)

func TestFrequencyIncreasingInFret(t *testing.T) {
	for _, s := range contracts.StandardTuning {
		prev, err := Frequency(s, 0)
		if err != nil {
			t.Fatalf("Frequency(%s, 0): %v", s, err)
		}
		for fret := contracts.Fret(1); fret <= 12; fret++ {
			got, err := Frequency(s, fret)
			if err != nil {
				t.Fatalf("Frequency(%s, %d): %v", s, fret, err)
			}
			if got <= prev {
				t.Errorf("Frequency(%s, %d) = %g, not greater than fret %d = %g", s, fret, got, fret-1, prev)
			}
			prev = got
		}
	}
}

func TestFrequencyOctaveDoubling(t *testing.T) {
	for _, s := range contracts.StandardTuning {
		open, _ := Frequency(s, 0)
		octave, _ := Frequency(s, 12)
		if math.Abs(octave-2*open) > 1e-9*open {
			t.Errorf("Frequency(%s, 12) = %g, want 2x open string %g", s, octave, open)
		}
	}
}

func TestFrequencyKnownPositions(t *testing.T) {
	cases := []struct {
		s    contracts.GuitarString
		fret contracts.Fret
		want float64
	}{
		{contracts.StringLowE, 0, 82.41},
		{contracts.StringLowE, 3, 98.0},
		{contracts.StringA, 2, 123.5},
		{contracts.StringHighE, 3, 392.0},
		{contracts.StringB, 0, 246.94},
	}
	for _, tc := range cases {
		got, err := Frequency(tc.s, tc.fret)
		if err != nil {
			t.Fatalf("Frequency(%s, %d): %v", tc.s, tc.fret, err)
		}
		if math.Abs(got-tc.want) > 0.5 {
			t.Errorf("Frequency(%s, %d) = %g, want about %g", tc.s, tc.fret, got, tc.want)
		}
	}
}

func TestFrequencyUnknownString(t *testing.T) {
	if _, err := Frequency("X", 0); !errors.Is(err, ErrUnknownString) {
		t.Errorf("Frequency(X, 0) error = %v, want ErrUnknownString", err)
	}
}

func TestFrequencyNegativeFret(t *testing.T) {
	if _, err := Frequency(contracts.StringA, -2); !errors.Is(err, ErrInvalidFret) {
		t.Errorf("Frequency(A, -2) error = %v, want ErrInvalidFret", err)
	}
}
