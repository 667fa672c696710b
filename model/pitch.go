package model

import "fmt"

// Pitch is a semitone number in MIDI numbering (middle C = 60). The engine
// only ever reflects and compares pitches, so any consistent integer scheme
// works; fractional-cent material coming from a retuning layer rides on
// Note.Cents instead of widening this type.
type Pitch int

const MiddleC Pitch = 60

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (p Pitch) String() string {
	if p < 0 {
		return fmt.Sprintf("pitch(%d)", int(p))
	}
	octave := int(p)/12 - 1
	return fmt.Sprintf("%s%d", noteNames[int(p)%12], octave)
}

// Reflect mirrors p around axis: the core inversion formula.
func (p Pitch) Reflect(axis Pitch) Pitch {
	return 2*axis - p
}
