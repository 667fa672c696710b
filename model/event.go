package model

import (
	"fmt"
	"sort"
)

// Event is the closed union of the three timed event kinds. The unexported
// marker keeps the set closed so transforms can switch exhaustively.
type Event interface {
	Dur() Duration
	isEvent()
}

// Note is a single pitch sounding for a duration. Cents is a fractional
// detune consumed from retuning collaborators; this engine transforms it but
// never produces a nonzero value itself.
type Note struct {
	Pitch    Pitch
	Cents    float64
	Duration Duration
}

type Rest struct {
	Duration Duration
}

// Chord is a non-empty set of pitches sharing one duration. Pitches is kept
// sorted ascending with no duplicates; only set membership is meaningful.
type Chord struct {
	Pitches  []Pitch
	Duration Duration
}

func (n Note) Dur() Duration  { return n.Duration }
func (r Rest) Dur() Duration  { return r.Duration }
func (c Chord) Dur() Duration { return c.Duration }

func (Note) isEvent()  {}
func (Rest) isEvent()  {}
func (Chord) isEvent() {}

func (n Note) String() string {
	if n.Cents != 0 {
		return fmt.Sprintf("note %v%+gc %v", n.Pitch, n.Cents, n.Duration)
	}
	return fmt.Sprintf("note %v %v", n.Pitch, n.Duration)
}

func (r Rest) String() string { return fmt.Sprintf("rest %v", r.Duration) }

func (c Chord) String() string { return fmt.Sprintf("chord %v %v", c.Pitches, c.Duration) }

func checkDuration(d Duration) error {
	if d.Sign() <= 0 {
		return fmt.Errorf("%w: event duration %v is not positive", ErrInvalidDuration, d)
	}
	return nil
}

func NewNote(p Pitch, d Duration) (Note, error) {
	if err := checkDuration(d); err != nil {
		return Note{}, err
	}
	return Note{Pitch: p, Duration: d}, nil
}

func NewRest(d Duration) (Rest, error) {
	if err := checkDuration(d); err != nil {
		return Rest{}, err
	}
	return Rest{Duration: d}, nil
}

func NewChord(pitches []Pitch, d Duration) (Chord, error) {
	if err := checkDuration(d); err != nil {
		return Chord{}, err
	}
	if len(pitches) == 0 {
		return Chord{}, fmt.Errorf("%w: chord needs at least one pitch", ErrInvalidEvent)
	}
	return Chord{Pitches: NormalizePitches(pitches), Duration: d}, nil
}

func MustNote(p Pitch, d Duration) Note {
	n, err := NewNote(p, d)
	if err != nil {
		panic(err)
	}
	return n
}

func MustRest(d Duration) Rest {
	r, err := NewRest(d)
	if err != nil {
		panic(err)
	}
	return r
}

func MustChord(pitches []Pitch, d Duration) Chord {
	c, err := NewChord(pitches, d)
	if err != nil {
		panic(err)
	}
	return c
}

// NormalizePitches returns a sorted, deduplicated copy.
func NormalizePitches(pitches []Pitch) []Pitch {
	out := make([]Pitch, len(pitches))
	copy(out, pitches)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	dedup := out[:0]
	for i, p := range out {
		if i == 0 || p != out[i-1] {
			dedup = append(dedup, p)
		}
	}
	return dedup
}

// EventsEqual is structural equality: same variant, equal duration, and for
// pitched events identical pitch content regardless of insertion order.
func EventsEqual(a, b Event) bool {
	switch ea := a.(type) {
	case Note:
		eb, ok := b.(Note)
		return ok && ea.Pitch == eb.Pitch && ea.Cents == eb.Cents && ea.Duration.Equal(eb.Duration)
	case Rest:
		eb, ok := b.(Rest)
		return ok && ea.Duration.Equal(eb.Duration)
	case Chord:
		eb, ok := b.(Chord)
		if !ok || !ea.Duration.Equal(eb.Duration) || len(ea.Pitches) != len(eb.Pitches) {
			return false
		}
		for i := range ea.Pitches {
			if ea.Pitches[i] != eb.Pitches[i] {
				return false
			}
		}
		return true
	}
	return false
}
