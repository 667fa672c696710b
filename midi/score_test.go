package midi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/cancrizans/model"
	"github.com/stretchr/testify/assert"
)

func testScore() model.Score {
	return model.NewScore(
		model.NewVoice("thema",
			model.MustNote(60, model.Beats(1)),
			model.MustRest(model.MustDuration(1, 2)),
			model.MustChord([]model.Pitch{60, 64, 67}, model.MustDuration(3, 2)),
			model.MustNote(67, model.MustDuration(1, 4)),
		),
		model.NewVoice("comes",
			model.MustNote(55, model.Beats(2)),
			model.MustNote(57, model.Beats(1)),
		),
	)
}

func TestScoreSMFRoundTrip(t *testing.T) {
	assert := assert.New(t)

	original := testScore()
	mf, err := ScoreToSMF(original)
	assert.NoError(err)
	assert.Len(mf.Tracks, 2)

	back, err := ScoreFromSMF(mf)
	assert.NoError(err)
	assert.True(back.Equal(original), "SMF round trip changed the score")
	assert.Equal("thema", back.Voices[0].Name)
	assert.Equal(4, back.BeatsPerMeasure)
}

func TestScoreFileRoundTrip(t *testing.T) {
	assert := assert.New(t)

	original := testScore()
	path := filepath.Join(t.TempDir(), "roundtrip.mid")
	assert.NoError(WriteScoreFile(original, path))

	back, err := ReadScoreFile(path)
	assert.NoError(err)
	assert.True(back.Equal(original))
}

func TestExportRejectsNonTickDurations(t *testing.T) {
	score := model.NewScore(model.NewVoice("v", model.MustNote(60, model.MustDuration(1, 7))))
	_, err := ScoreToSMF(score)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "whole tick")
}

// An unclamped inversion can push pitches past the MIDI key range; the
// exporter must refuse rather than truncate them into different notes.
func TestExportRejectsOutOfRangePitches(t *testing.T) {
	for _, p := range []model.Pitch{-4, 150} {
		score := model.NewScore(model.NewVoice("v", model.MustNote(p, model.Beats(1))))
		_, err := ScoreToSMF(score)
		assert.Error(t, err, "pitch %d", p)
		assert.Contains(t, err.Error(), "0..127")
	}

	chorded := model.NewScore(model.NewVoice("v",
		model.MustChord([]model.Pitch{60, 130}, model.Beats(1)),
	))
	_, err := ScoreToSMF(chorded)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "0..127")
}

func TestImportFoldsSharedSpansIntoChords(t *testing.T) {
	assert := assert.New(t)

	score := model.NewScore(model.NewVoice("v",
		model.MustChord([]model.Pitch{48, 55}, model.Beats(1)),
		model.MustNote(52, model.Beats(1)),
	))
	mf, err := ScoreToSMF(score)
	assert.NoError(err)

	back, err := ScoreFromSMF(mf)
	assert.NoError(err)
	chord, ok := back.Voices[0].Events[0].(model.Chord)
	assert.True(ok)
	assert.Equal([]model.Pitch{48, 55}, chord.Pitches)
}

func TestLeadingRestSurvivesRoundTrip(t *testing.T) {
	assert := assert.New(t)

	score := model.NewScore(model.NewVoice("v",
		model.MustRest(model.Beats(2)),
		model.MustNote(60, model.Beats(1)),
	))
	mf, err := ScoreToSMF(score)
	assert.NoError(err)
	back, err := ScoreFromSMF(mf)
	assert.NoError(err)
	assert.True(back.Equal(score))
}

// A trailing rest has no note-off to anchor it; it rides on the
// end-of-track delta and must come back with the total duration intact.
func TestTrailingRestSurvivesRoundTrip(t *testing.T) {
	assert := assert.New(t)

	score := model.NewScore(model.NewVoice("v",
		model.MustNote(60, model.Beats(1)),
		model.MustRest(model.Beats(2)),
	))
	mf, err := ScoreToSMF(score)
	assert.NoError(err)
	back, err := ScoreFromSMF(mf)
	assert.NoError(err)
	assert.True(back.Equal(score))
	assert.Equal("3", back.Voices[0].TotalDuration().String())
}

func TestReadSMFFileErrors(t *testing.T) {
	assert := assert.New(t)

	junk := filepath.Join(t.TempDir(), "junk.mid")
	assert.NoError(os.WriteFile(junk, []byte("not a midi file"), 0666))
	_, err := ReadSMFFile(junk)
	assert.Error(err)

	_, err = ReadSMFFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(err)
}
