package contracts

// GuitarString identifies one of the six strings in standard tuning.
type GuitarString string

const (
	// StringLowE is the lowest-pitched string (E2).
	StringLowE GuitarString = "E"
	StringA    GuitarString = "A"
	StringD    GuitarString = "D"
	StringG    GuitarString = "G"
	StringB    GuitarString = "B"
	// StringHighE is the highest-pitched string (E4).
	StringHighE GuitarString = "e"
)

// StandardTuning lists the six strings from lowest to highest pitch.
// Fret sequences in Frets follow this order, index 0 = low E.
var StandardTuning = [6]GuitarString{StringLowE, StringA, StringD, StringG, StringB, StringHighE}

// Fret is a fret position on one string. 0 denotes the open string.
type Fret int

// Muted marks a string that is not sounded at all.
const Muted Fret = -1

// Frets holds one fret position per string, in StandardTuning order.
type Frets [6]Fret

// AllMuted reports whether no string in the shape is sounded.
func (f Frets) AllMuted() bool {
	for _, fret := range f {
		if fret != Muted {
			return false
		}
	}
	return true
}
