package transform

import (
	"math/big"
	"testing"

	"github.com/jsphweid/cancrizans/model"
	"github.com/stretchr/testify/assert"
)

func scenarioTheme() model.Voice {
	return model.NewVoice("thema",
		model.MustNote(60, model.Beats(1)),
		model.MustNote(64, model.Beats(1)),
		model.MustNote(67, model.Beats(2)),
	)
}

func mixedVoice() model.Voice {
	return model.NewVoice("mixed",
		model.MustNote(62, model.MustDuration(1, 2)),
		model.MustRest(model.MustDuration(1, 4)),
		model.MustChord([]model.Pitch{60, 64, 67}, model.MustDuration(3, 2)),
		model.Note{Pitch: 66, Cents: 14.5, Duration: model.Beats(1)},
		model.MustNote(59, model.MustDuration(2, 3)),
	)
}

func TestRetrogradeReversesOrder(t *testing.T) {
	rev := Retrograde(scenarioTheme())

	expected := model.NewVoice("thema",
		model.MustNote(67, model.Beats(2)),
		model.MustNote(64, model.Beats(1)),
		model.MustNote(60, model.Beats(1)),
	)
	assert.True(t, rev.Equal(expected))
}

func TestRetrogradeIsInvolution(t *testing.T) {
	for _, v := range []model.Voice{scenarioTheme(), mixedVoice(), {Name: "empty"}} {
		assert.True(t, Retrograde(Retrograde(v)).Equal(v), "double retrograde changed %q", v.Name)
	}
}

func TestRetrogradeDoesNotMutateInput(t *testing.T) {
	v := scenarioTheme()
	Retrograde(v)
	assert.True(t, v.Equal(scenarioTheme()))
}

func TestInvertAxisNoteIsFixedPoint(t *testing.T) {
	v := model.NewVoice("", model.MustNote(60, model.Beats(1)))
	assert.True(t, Invert(v, 60).Equal(v))
}

func TestInvertReflectsNotesAndChords(t *testing.T) {
	assert := assert.New(t)

	inv := Invert(mixedVoice(), 62)

	n := inv.Events[0].(model.Note)
	assert.Equal(model.Pitch(62), n.Pitch)

	_, isRest := inv.Events[1].(model.Rest)
	assert.True(isRest)

	c := inv.Events[2].(model.Chord)
	assert.Equal([]model.Pitch{57, 60, 64}, c.Pitches)

	detuned := inv.Events[3].(model.Note)
	assert.Equal(model.Pitch(58), detuned.Pitch)
	assert.Equal(-14.5, detuned.Cents)
}

func TestInvertIsInvolution(t *testing.T) {
	for _, axis := range []model.Pitch{48, 60, 62, 71} {
		v := mixedVoice()
		assert.True(t, Invert(Invert(v, axis), axis).Equal(v), "axis %v", axis)
	}
}

func TestRetrogradeAndInvertCommute(t *testing.T) {
	v := mixedVoice()
	for _, axis := range []model.Pitch{55, 60, 66} {
		a := Invert(Retrograde(v), axis)
		b := Retrograde(Invert(v, axis))
		assert.True(t, a.Equal(b), "axis %v", axis)
		assert.True(t, MirrorCanon(v, axis).Equal(a))
	}
}

func TestAugmentScalesDurations(t *testing.T) {
	assert := assert.New(t)

	v := model.NewVoice("", model.MustNote(60, model.Beats(1)))
	doubled, err := Augment(v, big.NewRat(2, 1))
	assert.NoError(err)
	assert.True(doubled.Events[0].Dur().Equal(model.Beats(2)))

	back, err := Diminish(doubled, big.NewRat(2, 1))
	assert.NoError(err)
	assert.True(back.Equal(v))
}

func TestAugmentDiminishRoundTripIsExact(t *testing.T) {
	v := mixedVoice()
	for _, factor := range []*big.Rat{big.NewRat(3, 2), big.NewRat(7, 5), big.NewRat(1, 3)} {
		aug, err := Augment(v, factor)
		assert.NoError(t, err)
		back, err := Diminish(aug, factor)
		assert.NoError(t, err)
		assert.True(t, back.Equal(v), "factor %v", factor)
	}
}

func TestScalingRejectsBadFactors(t *testing.T) {
	assert := assert.New(t)

	v := scenarioTheme()
	for _, factor := range []*big.Rat{nil, big.NewRat(0, 1), big.NewRat(-2, 1)} {
		_, err := Augment(v, factor)
		assert.ErrorIs(err, model.ErrInvalidFactor)
		_, err = Diminish(v, factor)
		assert.ErrorIs(err, model.ErrInvalidFactor)
	}
}

func TestTransformsPreserveEmptyVoice(t *testing.T) {
	assert := assert.New(t)

	empty := model.Voice{Name: "empty"}
	assert.Equal(0, Retrograde(empty).Len())
	assert.Equal(0, Invert(empty, 60).Len())
	aug, err := Augment(empty, big.NewRat(2, 1))
	assert.NoError(err)
	assert.Equal(0, aug.Len())
}

func TestParseFactor(t *testing.T) {
	assert := assert.New(t)

	f, err := ParseFactor("3/2")
	assert.NoError(err)
	assert.Equal(0, f.Cmp(big.NewRat(3, 2)))

	_, err = ParseFactor("banana")
	assert.ErrorIs(err, model.ErrInvalidFactor)
}
