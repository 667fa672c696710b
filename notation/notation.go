// Package notation reads and writes the line-oriented text form of a score:
//
//	voice thema
//	note 60 1
//	rest 1/2
//	chord 60,64,67 3/2
//
// One event per line, durations as exact rationals, '#' starts a comment.
// It exists so fixtures and CLI input stay human-editable; MIDI remains the
// interchange format for everything else.
package notation

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jsphweid/cancrizans/model"
)

// ParseScore reads any number of voice blocks. Events before the first
// "voice" header go into an unnamed voice.
func ParseScore(r io.Reader) (model.Score, error) {
	var score model.Score
	var current *model.Voice

	ensure := func(name string) {
		score.Voices = append(score.Voices, model.Voice{Name: name})
		current = &score.Voices[len(score.Voices)-1]
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "voice" {
			name := ""
			if len(fields) > 1 {
				name = strings.Join(fields[1:], " ")
			}
			ensure(name)
			continue
		}

		ev, err := parseEvent(fields)
		if err != nil {
			return model.Score{}, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if current == nil {
			ensure("")
		}
		current.Events = append(current.Events, ev)
	}
	if err := scanner.Err(); err != nil {
		return model.Score{}, err
	}
	return score, nil
}

// ParseVoice reads a single voice; extra voice headers are an error.
func ParseVoice(r io.Reader) (model.Voice, error) {
	score, err := ParseScore(r)
	if err != nil {
		return model.Voice{}, err
	}
	if len(score.Voices) == 0 {
		return model.Voice{}, nil
	}
	if len(score.Voices) > 1 {
		return model.Voice{}, fmt.Errorf("expected a single voice, found %d", len(score.Voices))
	}
	return score.Voices[0], nil
}

func parseEvent(fields []string) (model.Event, error) {
	switch fields[0] {
	case "note":
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: note wants <pitch> <duration>", model.ErrInvalidEvent)
		}
		pitch, cents, err := parsePitch(fields[1])
		if err != nil {
			return nil, err
		}
		dur, err := model.ParseDuration(fields[2])
		if err != nil {
			return nil, err
		}
		n, err := model.NewNote(pitch, dur)
		if err != nil {
			return nil, err
		}
		n.Cents = cents
		return n, nil
	case "rest":
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: rest wants <duration>", model.ErrInvalidEvent)
		}
		dur, err := model.ParseDuration(fields[1])
		if err != nil {
			return nil, err
		}
		return model.NewRest(dur)
	case "chord":
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: chord wants <p,p,...> <duration>", model.ErrInvalidEvent)
		}
		var pitches []model.Pitch
		for _, part := range strings.Split(fields[1], ",") {
			p, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%w: bad chord pitch %q", model.ErrInvalidEvent, part)
			}
			pitches = append(pitches, model.Pitch(p))
		}
		dur, err := model.ParseDuration(fields[2])
		if err != nil {
			return nil, err
		}
		return model.NewChord(pitches, dur)
	}
	return nil, fmt.Errorf("%w: unknown event %q", model.ErrInvalidEvent, fields[0])
}

// parsePitch accepts "60" or "60+14.2c" for fractional-cent material.
func parsePitch(s string) (model.Pitch, float64, error) {
	if i := strings.IndexAny(s, "+-"); i > 0 && strings.HasSuffix(s, "c") {
		base, err := strconv.Atoi(s[:i])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: bad pitch %q", model.ErrInvalidEvent, s)
		}
		cents, err := strconv.ParseFloat(strings.TrimSuffix(s[i:], "c"), 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: bad cents in %q", model.ErrInvalidEvent, s)
		}
		return model.Pitch(base), cents, nil
	}
	p, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad pitch %q", model.ErrInvalidEvent, s)
	}
	return model.Pitch(p), 0, nil
}

// WriteScore renders a score back into the text form ParseScore reads.
func WriteScore(w io.Writer, s model.Score) error {
	for i, v := range s.Voices {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "voice %s\n", v.Name); err != nil {
			return err
		}
		if err := writeEvents(w, v.Events); err != nil {
			return err
		}
	}
	return nil
}

func writeEvents(w io.Writer, events []model.Event) error {
	for _, ev := range events {
		var line string
		switch e := ev.(type) {
		case model.Note:
			if e.Cents != 0 {
				line = fmt.Sprintf("note %d%+gc %s", int(e.Pitch), e.Cents, e.Duration)
			} else {
				line = fmt.Sprintf("note %d %s", int(e.Pitch), e.Duration)
			}
		case model.Rest:
			line = fmt.Sprintf("rest %s", e.Duration)
		case model.Chord:
			parts := make([]string, len(e.Pitches))
			for i, p := range e.Pitches {
				parts[i] = strconv.Itoa(int(p))
			}
			line = fmt.Sprintf("chord %s %s", strings.Join(parts, ","), e.Duration)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
