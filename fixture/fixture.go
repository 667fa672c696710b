// Package fixture embeds the ground-truth two-voice crab canon used to
// validate the verifier: 184 events per voice, 368 total, with voice 2
// stored literally (not derived at load time) so the fixture exercises the
// verifier rather than the retrograde function.
package fixture

import (
	_ "embed"
	"strings"

	"github.com/jsphweid/cancrizans/model"
	"github.com/jsphweid/cancrizans/notation"
)

//go:embed data/crab_canon.txt
var crabCanonData string

// EventsPerVoice is what each fixture voice holds; kept as a named constant
// because several tests assert against it.
const EventsPerVoice = 184

func CrabCanon() model.Score {
	score, err := notation.ParseScore(strings.NewReader(crabCanonData))
	if err != nil {
		panic("embedded crab canon fixture is corrupt: " + err.Error())
	}
	return score
}
