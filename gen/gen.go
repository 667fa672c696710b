// Package gen produces candidate crab-canon material: a seeded random-walk
// theme, assembled into a two-voice score and certified by the verifier.
// Quality scoring lives with external consumers; generation only promises
// structural correctness.
package gen

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/jsphweid/cancrizans/canon"
	"github.com/jsphweid/cancrizans/model"
	"github.com/jsphweid/cancrizans/verify"
)

type Params struct {
	Length    int
	Low, High model.Pitch
	Start     model.Pitch
	Durations []model.Duration
	RestProb  float64
	Seed      int64
}

func DefaultParams() Params {
	return Params{
		Length:   16,
		Low:      48,
		High:     79,
		Start:    model.MiddleC,
		RestProb: 0.08,
		Durations: []model.Duration{
			model.MustDuration(1, 2),
			model.MustDuration(1, 2),
			model.Beats(1),
			model.Beats(1),
			model.MustDuration(3, 2),
			model.Beats(2),
		},
	}
}

type Candidate struct {
	ID     uuid.UUID
	Theme  model.Voice
	Score  model.Score
	Report verify.Report
}

var steps = []int{-5, -4, -3, -2, -2, -1, -1, 1, 1, 2, 2, 3, 4, 5, 7, -7}

// Generate builds one candidate. The same seed always yields the same
// candidate apart from its ID.
func Generate(p Params) (Candidate, error) {
	if p.Length <= 0 {
		return Candidate{}, fmt.Errorf("theme length must be positive, got %d", p.Length)
	}
	if p.Low > p.High {
		return Candidate{}, fmt.Errorf("pitch range %v..%v is empty", p.Low, p.High)
	}
	if p.High-p.Low < 11 {
		// octave folding below needs at least an octave to land in
		return Candidate{}, fmt.Errorf("pitch range %v..%v is narrower than an octave", p.Low, p.High)
	}
	if len(p.Durations) == 0 {
		return Candidate{}, fmt.Errorf("duration palette is empty")
	}

	rng := rand.New(rand.NewSource(p.Seed))
	pitch := p.Start
	if pitch < p.Low || pitch > p.High {
		pitch = (p.Low + p.High) / 2
	}

	theme := model.Voice{Name: "thema"}
	for i := 0; i < p.Length; i++ {
		dur := p.Durations[rng.Intn(len(p.Durations))]
		if i > 0 && i < p.Length-1 && rng.Float64() < p.RestProb {
			// adjacent rests would fold into one on SMF import
			if _, wasRest := theme.Events[i-1].(model.Rest); !wasRest {
				theme.Events = append(theme.Events, model.MustRest(dur))
				continue
			}
		}
		if i > 0 {
			pitch += model.Pitch(steps[rng.Intn(len(steps))])
			for pitch < p.Low {
				pitch += 12
			}
			for pitch > p.High {
				pitch -= 12
			}
		}
		theme.Events = append(theme.Events, model.MustNote(pitch, dur))
	}

	score := canon.AssembleCrab(theme)
	report := verify.Score(score)
	if !report.IsPalindrome {
		// AssembleCrab guarantees this; a miss means the engine is broken
		return Candidate{}, fmt.Errorf("generated canon failed verification: %d unmatched pairs", len(report.Unmatched))
	}

	return Candidate{ID: uuid.New(), Theme: theme, Score: score, Report: report}, nil
}

// GenerateBatch derives per-candidate seeds from the base seed so batches
// are reproducible too.
func GenerateBatch(p Params, count int) ([]Candidate, error) {
	candidates := make([]Candidate, 0, count)
	for i := 0; i < count; i++ {
		cp := p
		cp.Seed = p.Seed + int64(i)*7919
		c, err := Generate(cp)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}
