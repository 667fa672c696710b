// Package transform holds the pure Voice -> Voice transformations:
// retrograde, inversion, augmentation/diminution and their compositions.
// Nothing here mutates its input; every function returns a fresh Voice.
package transform

import (
	"fmt"
	"math/big"

	"github.com/jsphweid/cancrizans/model"
)

// Retrograde reverses the event order. Onsets recompute implicitly since
// they are derived from durations. Retrograde is its own inverse.
func Retrograde(v model.Voice) model.Voice {
	events := make([]model.Event, len(v.Events))
	for i, ev := range v.Events {
		events[len(v.Events)-1-i] = ev
	}
	return model.Voice{Name: v.Name, Events: events}
}

// Invert reflects every pitch around axis: p -> 2*axis - p. Rests pass
// through untouched, chord sets reflect element-wise, and a cents detune
// flips sign so the reflection stays exact for fractional pitches. No range
// clamping happens here.
func Invert(v model.Voice, axis model.Pitch) model.Voice {
	events := make([]model.Event, len(v.Events))
	for i, ev := range v.Events {
		switch e := ev.(type) {
		case model.Note:
			events[i] = model.Note{Pitch: e.Pitch.Reflect(axis), Cents: -e.Cents, Duration: e.Duration}
		case model.Rest:
			events[i] = e
		case model.Chord:
			pitches := make([]model.Pitch, len(e.Pitches))
			for j, p := range e.Pitches {
				pitches[j] = p.Reflect(axis)
			}
			events[i] = model.MustChord(pitches, e.Duration)
		}
	}
	return model.Voice{Name: v.Name, Events: events}
}

func checkFactor(factor *big.Rat) error {
	if factor == nil || factor.Sign() <= 0 {
		return fmt.Errorf("%w: factor must be a positive rational, got %v", model.ErrInvalidFactor, factor)
	}
	return nil
}

// Augment scales every duration by factor, order unchanged. The factor is an
// exact rational so augment/diminish round trips reproduce the input
// bit-for-bit. Fails before any allocation on factor <= 0.
func Augment(v model.Voice, factor *big.Rat) (model.Voice, error) {
	if err := checkFactor(factor); err != nil {
		return model.Voice{}, err
	}
	events := make([]model.Event, len(v.Events))
	for i, ev := range v.Events {
		switch e := ev.(type) {
		case model.Note:
			e.Duration = e.Duration.Scale(factor)
			events[i] = e
		case model.Rest:
			e.Duration = e.Duration.Scale(factor)
			events[i] = e
		case model.Chord:
			scaled := model.Chord{Pitches: e.Pitches, Duration: e.Duration.Scale(factor)}
			events[i] = scaled
		}
	}
	return model.Voice{Name: v.Name, Events: events}, nil
}

// Diminish is Augment with the reciprocal factor.
func Diminish(v model.Voice, factor *big.Rat) (model.Voice, error) {
	if err := checkFactor(factor); err != nil {
		return model.Voice{}, err
	}
	return Augment(v, new(big.Rat).Inv(factor))
}

// ParseFactor reads "3/2"-style input into the exact rational factor the
// scaling transforms take. Validity (> 0) is still checked by the transform.
func ParseFactor(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: cannot parse factor %q", model.ErrInvalidFactor, s)
	}
	return r, nil
}

// MirrorCanon is inversion of the retrograde. Reversal acts on the time axis
// and inversion on the pitch axis, so the two commute; Invert(Retrograde(v))
// and Retrograde(Invert(v)) are the same voice.
func MirrorCanon(v model.Voice, axis model.Pitch) model.Voice {
	return Invert(Retrograde(v), axis)
}
