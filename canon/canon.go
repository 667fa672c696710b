// Package canon combines a theme and its transforms into multi-voice scores.
package canon

import (
	"fmt"

	"github.com/jsphweid/cancrizans/model"
	"github.com/jsphweid/cancrizans/transform"
)

// TimeAlign builds a two-voice score where voice 2 starts at offset. A
// positive offset becomes a synthetic leading rest on voice 2; a negative
// offset is rejected. Total score duration works out to
// max(dur(v1), offset+dur(v2)).
func TimeAlign(v1, v2 model.Voice, offset model.Duration) (model.Score, error) {
	if offset.Sign() < 0 {
		return model.Score{}, fmt.Errorf("%w: offset %v is negative", model.ErrInvalidOffset, offset)
	}

	aligned := model.Voice{Name: v2.Name, Events: make([]model.Event, 0, len(v2.Events)+1)}
	if offset.Sign() > 0 {
		aligned.Events = append(aligned.Events, model.MustRest(offset))
	}
	aligned.Events = append(aligned.Events, v2.Events...)

	if v1.Name == "" {
		v1.Name = "voice 1"
	}
	if aligned.Name == "" {
		aligned.Name = "voice 2"
	}
	return model.NewScore(v1, aligned), nil
}

// AssembleCrab pairs a theme with its own retrograde at offset zero: the
// canonical crab-canon construction. Voice 2 is the exact temporal mirror of
// voice 1 by construction.
func AssembleCrab(theme model.Voice) model.Score {
	crab := transform.Retrograde(theme)
	if theme.Name == "" {
		theme.Name = "thema"
	}
	crab.Name = theme.Name + " cancrizans"
	score, err := TimeAlign(theme, crab, model.Duration{})
	if err != nil {
		// offset zero can't be negative
		panic(err)
	}
	return score
}

// AssembleMirror pairs a theme with its inversion around axis (an inversion
// canon at the unison offset).
func AssembleMirror(theme model.Voice, axis model.Pitch) model.Score {
	mirror := transform.Invert(theme, axis)
	if theme.Name == "" {
		theme.Name = "thema"
	}
	mirror.Name = theme.Name + " inversus"
	score, err := TimeAlign(theme, mirror, model.Duration{})
	if err != nil {
		panic(err)
	}
	return score
}

// AssembleTable pairs a theme with its retrograde inversion: both players
// read the same page from opposite sides of the table.
func AssembleTable(theme model.Voice, axis model.Pitch) model.Score {
	table := transform.MirrorCanon(theme, axis)
	if theme.Name == "" {
		theme.Name = "thema"
	}
	table.Name = theme.Name + " a tavola"
	score, err := TimeAlign(theme, table, model.Duration{})
	if err != nil {
		panic(err)
	}
	return score
}
