package model

import "fmt"

// JSON shapes for the HTTP API. Durations travel as exact rational strings
// ("3/2") so nothing is lost crossing the wire.

type EventDTO struct {
	Kind     string  `json:"kind"` // note | rest | chord
	Pitch    int     `json:"pitch,omitempty"`
	Cents    float64 `json:"cents,omitempty"`
	Pitches  []int   `json:"pitches,omitempty"`
	Duration string  `json:"duration"`
}

type VoiceDTO struct {
	Name   string     `json:"name,omitempty"`
	Events []EventDTO `json:"events"`
}

type VerifyRequestBody struct {
	Mode   string     `json:"mode,omitempty"` // "cross" (default) or "self"
	Voices []VoiceDTO `json:"voices"`
}

type AnalyzeRequestBody struct {
	Voices []VoiceDTO `json:"voices"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

func (d EventDTO) ToEvent() (Event, error) {
	dur, err := ParseDuration(d.Duration)
	if err != nil {
		return nil, err
	}
	switch d.Kind {
	case "note":
		n, err := NewNote(Pitch(d.Pitch), dur)
		if err != nil {
			return nil, err
		}
		n.Cents = d.Cents
		return n, nil
	case "rest":
		return NewRest(dur)
	case "chord":
		pitches := make([]Pitch, len(d.Pitches))
		for i, p := range d.Pitches {
			pitches[i] = Pitch(p)
		}
		return NewChord(pitches, dur)
	}
	return nil, fmt.Errorf("%w: unknown event kind %q", ErrInvalidEvent, d.Kind)
}

func EventToDTO(ev Event) EventDTO {
	switch e := ev.(type) {
	case Note:
		return EventDTO{Kind: "note", Pitch: int(e.Pitch), Cents: e.Cents, Duration: e.Duration.String()}
	case Rest:
		return EventDTO{Kind: "rest", Duration: e.Duration.String()}
	case Chord:
		pitches := make([]int, len(e.Pitches))
		for i, p := range e.Pitches {
			pitches[i] = int(p)
		}
		return EventDTO{Kind: "chord", Pitches: pitches, Duration: e.Duration.String()}
	}
	return EventDTO{}
}

func (d VoiceDTO) ToVoice() (Voice, error) {
	events := make([]Event, 0, len(d.Events))
	for i, e := range d.Events {
		ev, err := e.ToEvent()
		if err != nil {
			return Voice{}, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return Voice{Name: d.Name, Events: events}, nil
}

func VoiceToDTO(v Voice) VoiceDTO {
	events := make([]EventDTO, len(v.Events))
	for i, ev := range v.Events {
		events[i] = EventToDTO(ev)
	}
	return VoiceDTO{Name: v.Name, Events: events}
}
