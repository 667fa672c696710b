// Package verify certifies palindromic structure with a pairwise symmetric
// mapping: index i pairs with index n-1-i and the two events must agree
// structurally. "Not a palindrome" is a reported outcome, never an error.
package verify

import (
	"math"

	"github.com/jsphweid/cancrizans/model"
)

type Mode string

const (
	// ModeSelf checks a single voice against its own mirror image: the
	// strong claim that the voice reads the same forwards and backwards.
	ModeSelf Mode = "self"
	// ModeCross checks that voice 2 is the exact temporal mirror of
	// voice 1 (the literal crab-canon claim). Voice 1 need not be
	// internally symmetric.
	ModeCross Mode = "cross"
)

// Mismatch reasons, in the order they are detected.
const (
	ReasonVariant  = "variant mismatch"
	ReasonDuration = "duration mismatch"
	ReasonPitch    = "pitch mismatch"
	ReasonLength   = "length mismatch"
)

// centEpsilon bounds the fractional-cent comparison. Durations are exact
// rationals and never need it.
const centEpsilon = 1e-6

type Pair struct {
	IndexA  int    `json:"index_a"`
	IndexB  int    `json:"index_b"`
	Matched bool   `json:"matched"`
	Reason  string `json:"reason,omitempty"`
}

// Report is a fresh value describing one verification run.
type Report struct {
	Mode         Mode   `json:"mode"`
	TotalEvents  int    `json:"total_events"`
	TotalPairs   int    `json:"total_pairs"`
	MatchedPairs int    `json:"matched_pairs"`
	Pairs        []Pair `json:"pairs"`
	Unmatched    []int  `json:"unmatched,omitempty"`
	IsPalindrome bool   `json:"is_palindrome"`
}

// compare reports whether a and b agree, and if not, why. Variant is checked
// first, then duration, then pitch content, so a pair gets the most
// structural reason available.
func compare(a, b model.Event) (bool, string) {
	switch ea := a.(type) {
	case model.Note:
		eb, ok := b.(model.Note)
		if !ok {
			return false, ReasonVariant
		}
		if !ea.Duration.Equal(eb.Duration) {
			return false, ReasonDuration
		}
		if ea.Pitch != eb.Pitch || math.Abs(ea.Cents-eb.Cents) > centEpsilon {
			return false, ReasonPitch
		}
		return true, ""
	case model.Rest:
		eb, ok := b.(model.Rest)
		if !ok {
			return false, ReasonVariant
		}
		if !ea.Duration.Equal(eb.Duration) {
			return false, ReasonDuration
		}
		return true, ""
	case model.Chord:
		eb, ok := b.(model.Chord)
		if !ok {
			return false, ReasonVariant
		}
		if !ea.Duration.Equal(eb.Duration) {
			return false, ReasonDuration
		}
		if len(ea.Pitches) != len(eb.Pitches) {
			return false, ReasonPitch
		}
		for i := range ea.Pitches {
			if ea.Pitches[i] != eb.Pitches[i] {
				return false, ReasonPitch
			}
		}
		return true, ""
	}
	return false, ReasonVariant
}

func finish(r Report) Report {
	for _, p := range r.Pairs {
		if p.Matched {
			r.MatchedPairs++
		} else {
			r.Unmatched = append(r.Unmatched, p.IndexA)
		}
	}
	r.IsPalindrome = r.MatchedPairs == r.TotalPairs
	return r
}

// SelfCheck certifies that a single voice is its own palindrome. The middle
// event of an odd-length voice pairs with itself and always matches. An
// empty voice is trivially palindromic.
func SelfCheck(v model.Voice) Report {
	n := v.Len()
	r := Report{Mode: ModeSelf, TotalEvents: n, TotalPairs: (n + 1) / 2}
	r.Pairs = make([]Pair, 0, r.TotalPairs)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		matched, reason := compare(v.Events[i], v.Events[j])
		r.Pairs = append(r.Pairs, Pair{IndexA: i, IndexB: j, Matched: matched, Reason: reason})
	}
	if n%2 == 1 {
		mid := n / 2
		r.Pairs = append(r.Pairs, Pair{IndexA: mid, IndexB: mid, Matched: true})
	}
	return finish(r)
}

// CrossVoice certifies that v2 is the exact temporal mirror of v1:
// v2[i] must equal v1[n-1-i] at every position. Each symmetric pair is
// checked in both directions; the middle event of an odd-length pair of
// voices is genuinely compared (v2[m] against v1[m]), since the two events
// are distinct. Voices of unequal length cannot be mirrors and yield a fully
// unmatched report.
func CrossVoice(v1, v2 model.Voice) Report {
	n := v1.Len()
	r := Report{Mode: ModeCross, TotalEvents: n + v2.Len()}

	if v2.Len() != n {
		r.TotalPairs = (max(n, v2.Len()) + 1) / 2
		r.Pairs = make([]Pair, 0, r.TotalPairs)
		for i := 0; i < r.TotalPairs; i++ {
			r.Pairs = append(r.Pairs, Pair{IndexA: i, IndexB: max(n, v2.Len()) - 1 - i, Reason: ReasonLength})
		}
		return finish(r)
	}

	r.TotalPairs = (n + 1) / 2
	r.Pairs = make([]Pair, 0, r.TotalPairs)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		matched, reason := compare(v2.Events[i], v1.Events[j])
		if matched {
			matched, reason = compare(v2.Events[j], v1.Events[i])
		}
		r.Pairs = append(r.Pairs, Pair{IndexA: i, IndexB: j, Matched: matched, Reason: reason})
	}
	if n%2 == 1 {
		mid := n / 2
		matched, reason := compare(v2.Events[mid], v1.Events[mid])
		r.Pairs = append(r.Pairs, Pair{IndexA: mid, IndexB: mid, Matched: matched, Reason: reason})
	}
	return finish(r)
}

// Score runs the default certification on a score: cross-voice mode over the
// first two voices. Scores with fewer than two voices fall back to a
// self-check of what is there.
func Score(s model.Score) Report {
	switch len(s.Voices) {
	case 0:
		return SelfCheck(model.Voice{})
	case 1:
		return SelfCheck(s.Voices[0])
	default:
		return CrossVoice(s.Voices[0], s.Voices[1])
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
