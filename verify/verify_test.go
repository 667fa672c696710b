package verify

import (
	"testing"

	"github.com/jsphweid/cancrizans/model"
	"github.com/stretchr/testify/assert"
)

func note(p model.Pitch, num, den int64) model.Note {
	return model.MustNote(p, model.MustDuration(num, den))
}

func TestSelfCheckPalindromicVoice(t *testing.T) {
	assert := assert.New(t)

	v := model.NewVoice("",
		note(60, 1, 1),
		note(64, 1, 2),
		note(67, 2, 1),
		note(64, 1, 2),
		note(60, 1, 1),
	)
	r := SelfCheck(v)
	assert.Equal(ModeSelf, r.Mode)
	assert.Equal(3, r.TotalPairs, "two compared pairs plus the middle")
	assert.Equal(3, r.MatchedPairs)
	assert.True(r.IsPalindrome)
	assert.Empty(r.Unmatched)
}

func TestSelfCheckMiddleAlwaysMatches(t *testing.T) {
	v := model.NewVoice("", note(60, 1, 1), note(99, 7, 3), note(60, 1, 1))
	r := SelfCheck(v)
	assert.True(t, r.IsPalindrome, "odd middle is self-paired regardless of content")
}

func TestSelfCheckReportsReasons(t *testing.T) {
	assert := assert.New(t)

	v := model.NewVoice("",
		note(60, 1, 1),
		model.MustRest(model.Beats(1)),
		note(64, 1, 2),
		note(62, 1, 1),
	)
	// pair (0,3): pitch 60 vs 62 -> pitch mismatch
	// pair (1,2): rest vs note -> variant mismatch
	r := SelfCheck(v)
	assert.False(r.IsPalindrome)
	assert.Equal(2, r.TotalPairs)
	assert.Equal(0, r.MatchedPairs)
	assert.Equal(ReasonPitch, r.Pairs[0].Reason)
	assert.Equal(ReasonVariant, r.Pairs[1].Reason)
	assert.Equal([]int{0, 1}, r.Unmatched)
}

func TestSelfCheckDurationMismatch(t *testing.T) {
	v := model.NewVoice("", note(60, 1, 1), note(60, 1, 2))
	r := SelfCheck(v)
	assert.Equal(t, ReasonDuration, r.Pairs[0].Reason)
}

func TestSelfCheckEdgeSizes(t *testing.T) {
	assert := assert.New(t)

	empty := SelfCheck(model.Voice{})
	assert.True(empty.IsPalindrome)
	assert.Equal(0, empty.TotalPairs)

	single := SelfCheck(model.NewVoice("", note(60, 1, 1)))
	assert.True(single.IsPalindrome, "single event is trivially self-palindromic")
	assert.Equal(1, single.TotalPairs)
}

func TestCrossVoiceCrabCanon(t *testing.T) {
	assert := assert.New(t)

	v1 := model.NewVoice("a",
		note(60, 1, 1),
		note(64, 1, 1),
		note(67, 2, 1),
	)
	v2 := model.NewVoice("b",
		note(67, 2, 1),
		note(64, 1, 1),
		note(60, 1, 1),
	)
	r := CrossVoice(v1, v2)
	assert.Equal(ModeCross, r.Mode)
	assert.True(r.IsPalindrome)
	assert.Equal(2, r.TotalPairs)
	assert.Equal(6, r.TotalEvents)
}

func TestCrossVoiceMiddleIsCompared(t *testing.T) {
	assert := assert.New(t)

	v1 := model.NewVoice("a", note(60, 1, 1), note(64, 1, 1), note(67, 1, 1))
	v2 := model.NewVoice("b", note(67, 1, 1), note(65, 1, 1), note(60, 1, 1))
	r := CrossVoice(v1, v2)
	assert.False(r.IsPalindrome, "v2[1] != v1[1], middle must not auto-match")
	assert.Equal(ReasonPitch, r.Pairs[len(r.Pairs)-1].Reason)
}

func TestCrossVoiceDetectsAsymmetry(t *testing.T) {
	assert := assert.New(t)

	v1 := model.NewVoice("a", note(60, 1, 1), note(64, 1, 1))
	v2 := model.NewVoice("b", note(64, 1, 1), note(62, 1, 1))
	// forward direction matches (v2[0]==v1[1]) but the mirrored direction
	// fails (v2[1]=62 vs v1[0]=60), so the pair is unmatched
	r := CrossVoice(v1, v2)
	assert.False(r.IsPalindrome)
	assert.Equal(1, r.TotalPairs)
	assert.Equal(0, r.MatchedPairs)
}

func TestCrossVoiceLengthMismatch(t *testing.T) {
	assert := assert.New(t)

	v1 := model.NewVoice("a", note(60, 1, 1), note(64, 1, 1))
	v2 := model.NewVoice("b", note(64, 1, 1))
	r := CrossVoice(v1, v2)
	assert.False(r.IsPalindrome)
	for _, p := range r.Pairs {
		assert.Equal(ReasonLength, p.Reason)
	}
}

func TestCrossVoiceChordsCompareAsSets(t *testing.T) {
	c1 := model.MustChord([]model.Pitch{67, 60, 64}, model.Beats(1))
	c2 := model.MustChord([]model.Pitch{60, 64, 67}, model.Beats(1))
	r := CrossVoice(model.NewVoice("", c1), model.NewVoice("", c2))
	assert.True(t, r.IsPalindrome)
}

func TestCentsComparedWithinEpsilon(t *testing.T) {
	assert := assert.New(t)

	a := model.Note{Pitch: 60, Cents: 12.5, Duration: model.Beats(1)}
	b := model.Note{Pitch: 60, Cents: 12.5 + 1e-9, Duration: model.Beats(1)}
	c := model.Note{Pitch: 60, Cents: 13.5, Duration: model.Beats(1)}

	assert.True(CrossVoice(model.NewVoice("", a), model.NewVoice("", b)).IsPalindrome)
	r := CrossVoice(model.NewVoice("", a), model.NewVoice("", c))
	assert.False(r.IsPalindrome)
	assert.Equal(ReasonPitch, r.Pairs[0].Reason)
}

func TestScoreDefaultsToCrossVoice(t *testing.T) {
	assert := assert.New(t)

	v1 := model.NewVoice("a", note(60, 1, 1), note(64, 1, 1))
	v2 := model.NewVoice("b", note(64, 1, 1), note(60, 1, 1))
	r := Score(model.NewScore(v1, v2))
	assert.Equal(ModeCross, r.Mode)
	assert.True(r.IsPalindrome)

	solo := Score(model.NewScore(model.NewVoice("a", note(60, 1, 1))))
	assert.Equal(ModeSelf, solo.Mode)
}

func TestReportIsFreshPerCall(t *testing.T) {
	v := model.NewVoice("", note(60, 1, 1), note(60, 1, 1))
	r1 := SelfCheck(v)
	r2 := SelfCheck(v)
	r1.Pairs[0].Matched = false
	assert.True(t, r2.Pairs[0].Matched, "reports must not share state")
}
