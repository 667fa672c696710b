package model

// Voice is an ordered event sequence. Onsets are always derived from the
// durations, never stored, so position and duration can't drift apart.
// Voices are treated as immutable values: transforms return fresh copies.
type Voice struct {
	Name   string
	Events []Event
}

func NewVoice(name string, events ...Event) Voice {
	v := Voice{Name: name, Events: make([]Event, len(events))}
	copy(v.Events, events)
	return v
}

func (v Voice) Len() int {
	return len(v.Events)
}

// Onsets returns the start time of each event: the running sum of all
// preceding durations. Monotonically non-decreasing by construction.
func (v Voice) Onsets() []Duration {
	onsets := make([]Duration, len(v.Events))
	var at Duration
	for i, ev := range v.Events {
		onsets[i] = at
		at = at.Add(ev.Dur())
	}
	return onsets
}

func (v Voice) TotalDuration() Duration {
	var total Duration
	for _, ev := range v.Events {
		total = total.Add(ev.Dur())
	}
	return total
}

func (v Voice) Equal(other Voice) bool {
	if v.Name != other.Name || len(v.Events) != len(other.Events) {
		return false
	}
	for i := range v.Events {
		if !EventsEqual(v.Events[i], other.Events[i]) {
			return false
		}
	}
	return true
}
