package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jsphweid/cancrizans/midi"
	"github.com/jsphweid/cancrizans/model"
	"github.com/jsphweid/cancrizans/notation"
)

// loadScore reads either the text notation (.txt) or an SMF (.mid/.midi).
func loadScore(path string) (model.Score, error) {
	if strings.HasSuffix(path, ".mid") || strings.HasSuffix(path, ".midi") {
		return midi.ReadScoreFile(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return model.Score{}, err
	}
	defer f.Close()
	return notation.ParseScore(f)
}

func loadVoice(path string, index int) (model.Voice, error) {
	score, err := loadScore(path)
	if err != nil {
		return model.Voice{}, err
	}
	if index < 0 || index >= len(score.Voices) {
		return model.Voice{}, fmt.Errorf("score has %d voices, no voice %d", len(score.Voices), index)
	}
	return score.Voices[index], nil
}
