package canon

import (
	"math/big"
	"testing"

	"github.com/jsphweid/cancrizans/model"
	"github.com/jsphweid/cancrizans/transform"
	"github.com/jsphweid/cancrizans/verify"
	"github.com/stretchr/testify/assert"
)

func theme() model.Voice {
	return model.NewVoice("thema",
		model.MustNote(60, model.Beats(1)),
		model.MustNote(64, model.Beats(1)),
		model.MustNote(67, model.Beats(2)),
	)
}

func TestTimeAlignZeroOffset(t *testing.T) {
	assert := assert.New(t)

	v1 := theme()
	v2 := model.NewVoice("other", model.MustNote(55, model.Beats(3)))
	score, err := TimeAlign(v1, v2, model.Duration{})
	assert.NoError(err)
	assert.Len(score.Voices, 2)
	assert.Equal(1, score.Voices[1].Len(), "no synthetic rest at offset zero")
	assert.Equal("4", score.TotalDuration().String(), "max(dur(v1), dur(v2))")
}

func TestTimeAlignPositiveOffsetPrefixesRest(t *testing.T) {
	assert := assert.New(t)

	offset := model.MustDuration(3, 2)
	score, err := TimeAlign(theme(), theme(), offset)
	assert.NoError(err)

	voice2 := score.Voices[1]
	rest, ok := voice2.Events[0].(model.Rest)
	assert.True(ok, "voice 2 should start with a synthetic rest")
	assert.True(rest.Duration.Equal(offset))
	assert.True(voice2.Onsets()[1].Equal(offset), "first real event starts at offset")
	// max(4, 3/2 + 4)
	assert.Equal("11/2", score.TotalDuration().String())
}

func TestTimeAlignRejectsNegativeOffset(t *testing.T) {
	negative := model.DurationFromRat(big.NewRat(-1, 2))
	_, err := TimeAlign(theme(), theme(), negative)
	assert.ErrorIs(t, err, model.ErrInvalidOffset)
}

func TestAssembleCrabIsPalindromic(t *testing.T) {
	assert := assert.New(t)

	score := AssembleCrab(theme())
	assert.Len(score.Voices, 2)

	report := verify.Score(score)
	assert.True(report.IsPalindrome)
	assert.Empty(report.Unmatched)
}

func TestAssembleCrabVoiceTwoIsRetrograde(t *testing.T) {
	score := AssembleCrab(theme())
	expected := transform.Retrograde(theme())
	for i := range expected.Events {
		assert.True(t, model.EventsEqual(expected.Events[i], score.Voices[1].Events[i]))
	}
}

func TestAssembleMirrorAndTable(t *testing.T) {
	assert := assert.New(t)

	mirror := AssembleMirror(theme(), 60)
	assert.Len(mirror.Voices, 2)
	first := mirror.Voices[1].Events[0].(model.Note)
	assert.Equal(model.Pitch(60), first.Pitch)

	table := AssembleTable(theme(), 60)
	assert.Len(table.Voices, 2)
	// retrograde inversion: last theme note (67) reflected to 53, first in time
	firstTable := table.Voices[1].Events[0].(model.Note)
	assert.Equal(model.Pitch(53), firstTable.Pitch)
}

func TestAssembleCrabSingleEventTheme(t *testing.T) {
	single := model.NewVoice("", model.MustNote(72, model.Beats(1)))
	report := verify.Score(AssembleCrab(single))
	assert.True(t, report.IsPalindrome)
}
