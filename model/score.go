package model

// Score is an ordered collection of named voices on one shared timeline.
// BeatsPerMeasure/BeatUnit are optional display metadata; 0 means unset.
type Score struct {
	Voices          []Voice
	BeatsPerMeasure int
	BeatUnit        int
}

func NewScore(voices ...Voice) Score {
	s := Score{Voices: make([]Voice, len(voices))}
	copy(s.Voices, voices)
	return s
}

// TotalDuration is the duration of the longest voice.
func (s Score) TotalDuration() Duration {
	var total Duration
	for _, v := range s.Voices {
		total = maxDuration(total, v.TotalDuration())
	}
	return total
}

func (s Score) NumEvents() int {
	var n int
	for _, v := range s.Voices {
		n += len(v.Events)
	}
	return n
}

func (s Score) Equal(other Score) bool {
	if len(s.Voices) != len(other.Voices) {
		return false
	}
	for i := range s.Voices {
		if !s.Voices[i].Equal(other.Voices[i]) {
			return false
		}
	}
	return true
}
