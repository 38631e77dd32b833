package synth

import (
	"errors"
	"fmt"
	"math"

	"github.com/leandrodaf/strum/sdk/contracts"
)

// Error definitions for note resolution issues.
var (
	ErrUnknownString = errors.New("unknown guitar string")
	ErrInvalidFret   = errors.New("fret must not be negative")
)

// Open-string frequencies in Hz for standard tuning, E2 to E4.
var openStringHz = map[contracts.GuitarString]float64{
	contracts.StringLowE:  82.41,
	contracts.StringA:     110.00,
	contracts.StringD:     146.83,
	contracts.StringG:     196.00,
	contracts.StringB:     246.94,
	contracts.StringHighE: 329.63,
}

// Frequency resolves a string/fret position to its equal-tempered
// pitch: one fret raises the open-string frequency by a semitone.
func Frequency(s contracts.GuitarString, fret contracts.Fret) (float64, error) {
	base, ok := openStringHz[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownString, s)
	}
	if fret < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFret, fret)
	}
	return base * math.Exp2(float64(fret)/12.0), nil
}
