package midi

import (
	"bytes"
	"fmt"
	"math/big"
	"os"
	"sort"

	"github.com/jsphweid/cancrizans/constants"
	"github.com/jsphweid/cancrizans/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const exportVelocity = 80

// ScoreToSMF renders a score as a type-1 SMF, one track per voice, at the
// configured tick resolution. Durations must land on whole ticks and pitches
// in 0..127; anything else is rejected instead of silently quantized or
// truncated. A cents detune is dropped (documented loss: plain SMF has no
// per-note detune). A trailing rest is carried on the end-of-track delta.
func ScoreToSMF(score model.Score) (*smf.SMF, error) {
	var out smf.SMF
	out.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	for trackNum, voice := range score.Voices {
		var track smf.Track
		var pendingDelta uint32

		if voice.Name != "" {
			track.Add(0, smf.MetaTrackSequenceName(voice.Name))
		}
		if trackNum == 0 {
			num, den := score.BeatsPerMeasure, score.BeatUnit
			if num == 0 {
				num = constants.DefaultBeatsPerMeasure
			}
			if den == 0 {
				den = constants.DefaultBeatUnit
			}
			track.Add(0, smf.MetaMeter(uint8(num), uint8(den)))
			track.Add(0, smf.MetaTempo(120))
		}

		for i, ev := range voice.Events {
			ticks, err := durationTicks(ev.Dur())
			if err != nil {
				return nil, fmt.Errorf("voice %q event %d: %w", voice.Name, i, err)
			}
			switch e := ev.(type) {
			case model.Note:
				key, err := pitchKey(e.Pitch)
				if err != nil {
					return nil, fmt.Errorf("voice %q event %d: %w", voice.Name, i, err)
				}
				track.Add(pendingDelta, midi.NoteOn(0, key, exportVelocity))
				track.Add(ticks, midi.NoteOff(0, key))
				pendingDelta = 0
			case model.Rest:
				pendingDelta += ticks
			case model.Chord:
				keys := make([]uint8, len(e.Pitches))
				for j, p := range e.Pitches {
					key, err := pitchKey(p)
					if err != nil {
						return nil, fmt.Errorf("voice %q event %d: %w", voice.Name, i, err)
					}
					keys[j] = key
				}
				for j, key := range keys {
					delta := pendingDelta
					if j > 0 {
						delta = 0
					}
					track.Add(delta, midi.NoteOn(0, key, exportVelocity))
				}
				for j, key := range keys {
					delta := ticks
					if j > 0 {
						delta = 0
					}
					track.Add(delta, midi.NoteOff(0, key))
				}
				pendingDelta = 0
			}
		}
		track.Close(pendingDelta)
		out.Tracks = append(out.Tracks, track)
	}
	return &out, nil
}

// WriteScoreFile is ScoreToSMF straight to disk.
func WriteScoreFile(score model.Score, path string) error {
	s, err := ScoreToSMF(score)
	if err != nil {
		return err
	}
	return s.WriteFile(path)
}

func pitchKey(p model.Pitch) (uint8, error) {
	if p < 0 || p > 127 {
		return 0, fmt.Errorf("pitch %d is outside the MIDI range 0..127", int(p))
	}
	return uint8(p), nil
}

func durationTicks(d model.Duration) (uint32, error) {
	scaled := d.Rat()
	scaled.Mul(scaled, big.NewRat(constants.TicksPerQuarter, 1))
	if !scaled.IsInt() {
		return 0, fmt.Errorf("duration %v does not land on a whole tick at %d ticks/quarter", d, constants.TicksPerQuarter)
	}
	if !scaled.Num().IsUint64() || scaled.Num().Uint64() > 1<<31 {
		return 0, fmt.Errorf("duration %v is out of tick range", d)
	}
	return uint32(scaled.Num().Uint64()), nil
}

type notedSpan struct {
	start, end int64
	key        uint8
}

// ScoreFromSMF converts an SMF back into the event model, one voice per
// track. Notes sharing exact on/off ticks fold into a chord, gaps become
// rests, and silence between the last note-off and the end-of-track event
// becomes a trailing rest. A track whose notes overlap any other way is not
// expressible as a single voice and is rejected with the offending tick.
func ScoreFromSMF(s *smf.SMF) (model.Score, error) {
	metric, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return model.Score{}, fmt.Errorf("unsupported time format %v", s.TimeFormat)
	}
	res := int64(metric.Resolution())

	var score model.Score
	for trackNum, track := range s.Tracks {
		var name string
		var spans []notedSpan
		pending := make(map[uint8]int64)
		var absTicks int64

		for _, event := range track {
			absTicks += int64(event.Delta)
			var trackName string
			var channel, key, velocity, meterNum, meterDen uint8
			switch {
			case event.Message.GetMetaTrackName(&trackName):
				name = trackName
			case event.Message.GetMetaMeter(&meterNum, &meterDen):
				score.BeatsPerMeasure = int(meterNum)
				score.BeatUnit = int(meterDen)
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				pending[key] = absTicks
			case event.Message.GetNoteEnd(&channel, &key):
				start, ok := pending[key]
				if !ok {
					continue
				}
				delete(pending, key)
				if absTicks > start {
					spans = append(spans, notedSpan{start: start, end: absTicks, key: key})
				}
			}
		}

		voice, err := spansToVoice(spans, absTicks, res)
		if err != nil {
			return model.Score{}, fmt.Errorf("track %d: %w", trackNum, err)
		}
		if len(voice.Events) == 0 {
			continue
		}
		if name == "" {
			name = fmt.Sprintf("voice %d", len(score.Voices)+1)
		}
		voice.Name = name
		score.Voices = append(score.Voices, voice)
	}
	return score, nil
}

func spansToVoice(spans []notedSpan, trackEnd, res int64) (model.Voice, error) {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].key < spans[j].key
	})

	var voice model.Voice
	var cursor int64
	for i := 0; i < len(spans); {
		sp := spans[i]
		if sp.start < cursor {
			return model.Voice{}, fmt.Errorf("overlapping notes at tick %d", sp.start)
		}
		if sp.start > cursor {
			voice.Events = append(voice.Events, model.MustRest(ticksToDuration(sp.start-cursor, res)))
		}

		// pull in every span with the identical on/off ticks: a chord
		j := i
		var pitches []model.Pitch
		for ; j < len(spans) && spans[j].start == sp.start && spans[j].end == sp.end; j++ {
			pitches = append(pitches, model.Pitch(spans[j].key))
		}
		if j < len(spans) && spans[j].start == sp.start {
			return model.Voice{}, fmt.Errorf("overlapping notes at tick %d", sp.start)
		}

		dur := ticksToDuration(sp.end-sp.start, res)
		if len(pitches) == 1 {
			voice.Events = append(voice.Events, model.MustNote(pitches[0], dur))
		} else {
			voice.Events = append(voice.Events, model.MustChord(pitches, dur))
		}
		cursor = sp.end
		i = j
	}
	if trackEnd > cursor {
		voice.Events = append(voice.Events, model.MustRest(ticksToDuration(trackEnd-cursor, res)))
	}
	return voice, nil
}

func ticksToDuration(ticks, res int64) model.Duration {
	return model.DurationFromRat(big.NewRat(ticks, res))
}

// ReadSMFFile parses a standard MIDI file. smf.ReadFrom panics on some
// malformed inputs (https://github.com/gomidi/midi/issues/20), so the
// recover converts that into an ordinary error.
func ReadSMFFile(path string) (s *smf.SMF, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("parsing midi file %s: %v", path, r)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	s, err = smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing midi file %s: %w", path, err)
	}
	return s, nil
}

// ReadScoreFile reads and converts in one step.
func ReadScoreFile(path string) (model.Score, error) {
	s, err := ReadSMFFile(path)
	if err != nil {
		return model.Score{}, err
	}
	return ScoreFromSMF(s)
}
