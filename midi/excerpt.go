package midi

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func min(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

// Excerpt trims an SMF to roughly the first maxNoteEvents note on/offs per
// track, keeping non-note events with collapsed deltas. Used to produce
// small preview files for inspection.
func Excerpt(mf *smf.SMF, maxNoteEvents int) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var numNoteOnOff int
	TrackEventLoop:
		for _, evt := range track {
			switch {
			case evt.Message.Is(midi.NoteOnMsg),
				evt.Message.Is(midi.NoteOffMsg):
				newTrack = append(newTrack, evt)
				numNoteOnOff += 1
				if numNoteOnOff >= maxNoteEvents {
					newTrack.Close(0)
					break TrackEventLoop
				}
			default:
				evt.Delta = min(evt.Delta, 1)
				newTrack = append(newTrack, evt)
			}
		}

		res.Tracks = append(res.Tracks, newTrack)
	}

	return &res
}
