// Package analyze computes read-only interval, harmonic and rhythmic
// statistics over voices and scores. Consumers (scoring, reporting) treat
// the outputs as plain data.
package analyze

import (
	"fmt"
	"strings"

	"github.com/jsphweid/cancrizans/model"
	"github.com/jsphweid/cancrizans/util"
)

type IntervalReport struct {
	// Counts is the multiset of signed semitone differences between
	// consecutive notes. Rests and chords break the melodic line.
	Counts     map[int]int `json:"counts"`
	Total      int         `json:"total"`
	MostCommon int         `json:"most_common"`
	Diversity  float64     `json:"diversity"`
	MeanAbs    float64     `json:"mean_abs"`
}

type RhythmReport struct {
	// Counts keys are exact rational strings ("1/2"), values occurrence
	// counts across all events.
	Counts     map[string]int `json:"counts"`
	Total      string         `json:"total_duration"`
	MostCommon string         `json:"most_common"`
	Diversity  float64        `json:"diversity"`
}

type HarmonicReport struct {
	// Counts keys are sonority keys: sounding pitches at an onset, sorted
	// and joined by "-" (e.g. "60-64-67").
	Counts     map[string]int `json:"counts"`
	Total      int            `json:"total"`
	MostCommon string         `json:"most_common"`
	Distinct   int            `json:"distinct"`
}

// Intervals reports on the melodic motion of a single voice.
func Intervals(v model.Voice) IntervalReport {
	r := IntervalReport{Counts: make(map[int]int)}
	var prev *model.Note
	var absSum int
	for _, ev := range v.Events {
		n, ok := ev.(model.Note)
		if !ok {
			prev = nil
			continue
		}
		if prev != nil {
			iv := int(n.Pitch) - int(prev.Pitch)
			r.Counts[iv]++
			r.Total++
			if iv < 0 {
				absSum -= iv
			} else {
				absSum += iv
			}
		}
		cur := n
		prev = &cur
	}
	if r.Total > 0 {
		r.MostCommon, _ = util.MostCommon(r.Counts)
		r.Diversity = float64(len(r.Counts)) / float64(r.Total)
		r.MeanAbs = float64(absSum) / float64(r.Total)
	}
	return r
}

// Rhythm reports on the duration multiset of a single voice.
func Rhythm(v model.Voice) RhythmReport {
	r := RhythmReport{Counts: make(map[string]int)}
	for _, ev := range v.Events {
		r.Counts[ev.Dur().String()]++
	}
	r.Total = v.TotalDuration().String()
	if len(r.Counts) > 0 {
		r.MostCommon, _ = util.MostCommon(r.Counts)
		r.Diversity = float64(len(r.Counts)) / float64(v.Len())
	}
	return r
}

// SonorityKey renders a pitch set the way the index keys chords: sorted and
// dash-joined, so identical sonorities collide regardless of voicing order.
func SonorityKey(pitches []model.Pitch) string {
	normalized := model.NormalizePitches(pitches)
	parts := make([]string, len(normalized))
	for i, p := range normalized {
		parts[i] = fmt.Sprintf("%v", int(p))
	}
	return strings.Join(parts, "-")
}

// Harmonies reports the vertical sonorities of a score: at each distinct
// onset, the set of pitches sounding across all voices at that moment.
// Key inference from the sonority table is left to external consumers.
func Harmonies(s model.Score) HarmonicReport {
	r := HarmonicReport{Counts: make(map[string]int)}

	type span struct {
		start, end model.Duration
		pitches    []model.Pitch
	}
	var spans []span
	onsetSet := make(map[string]model.Duration)

	for _, v := range s.Voices {
		onsets := v.Onsets()
		for i, ev := range v.Events {
			onsetSet[onsets[i].String()] = onsets[i]
			switch e := ev.(type) {
			case model.Note:
				spans = append(spans, span{start: onsets[i], end: onsets[i].Add(e.Duration), pitches: []model.Pitch{e.Pitch}})
			case model.Chord:
				spans = append(spans, span{start: onsets[i], end: onsets[i].Add(e.Duration), pitches: e.Pitches})
			}
		}
	}

	for _, key := range util.SortedKeys(onsetSet) {
		at := onsetSet[key]
		var sounding []model.Pitch
		for _, sp := range spans {
			if sp.start.Cmp(at) <= 0 && sp.end.Cmp(at) > 0 {
				sounding = append(sounding, sp.pitches...)
			}
		}
		if len(sounding) == 0 {
			continue
		}
		r.Counts[SonorityKey(sounding)]++
		r.Total++
	}

	r.Distinct = len(r.Counts)
	if r.Total > 0 {
		r.MostCommon, _ = util.MostCommon(r.Counts)
	}
	return r
}
