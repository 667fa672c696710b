package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/jsphweid/cancrizans/constants"
	"github.com/jsphweid/cancrizans/db"
	"github.com/jsphweid/cancrizans/midi"
	"github.com/jsphweid/cancrizans/model"
	"github.com/jsphweid/cancrizans/util"
	"github.com/jsphweid/cancrizans/verify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var corpusDir string
var corpusMetadata bool

func init() {
	corpusCmd.Flags().StringVar(&corpusDir, "dir", "", "corpus directory (defaults to MEDIA_PATH)")
	corpusCmd.Flags().BoolVar(&corpusMetadata, "metadata", false, "join composition metadata from DynamoDB")
	rootCmd.AddCommand(corpusCmd)
}

var corpusCmd = &cobra.Command{
	Use:   "corpus [maxFiles]",
	Short: "Verifies every MIDI file in a corpus",
	Long:  `Verifies every MIDI file in a corpus and reports which ones are crab canons`,
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			maxNum = arg1
		}

		runCorpus(maxNum)
	},
}

type corpusReport struct {
	numFiles      int
	numSkipped    int
	numPalindrome int
	eventCounts   []int
}

func runCorpus(maxNum int) {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	dir := corpusDir
	if dir == "" {
		dir = constants.GetMediaDir()
	}
	paths := util.GatherAllMidiPaths(dir, maxNum)
	logger.Info("scanning corpus", zap.String("dir", dir), zap.Int("files", len(paths)))

	metadatas := make(map[string]model.CompositionMetadata)
	if corpusMetadata {
		// DynamoDB batch lookups take at most 10 keys
		for i := 0; i < len(paths); i += 10 {
			var names []string
			for _, p := range paths[i:util.Min(i+10, len(paths))] {
				names = append(names, filepath.Base(p))
			}
			for k, v := range db.GetMetadatas(names) {
				metadatas[k] = v
			}
		}
	}

	var report corpusReport
	for _, path := range paths {
		score, err := midi.ReadScoreFile(path)
		if err != nil {
			logger.Warn("skipping file", zap.String("path", path), zap.Error(err))
			report.numSkipped++
			continue
		}
		report.numFiles++
		report.eventCounts = append(report.eventCounts, score.NumEvents())

		r := verify.Score(score)
		if r.IsPalindrome {
			report.numPalindrome++
		}

		name := filepath.Base(path)
		if m, ok := metadatas[name]; ok {
			fmt.Printf("%v (%s, %s, %d): palindrome=%v unmatched=%d\n",
				name, m.Composer, m.Title, m.Year, r.IsPalindrome, len(r.Unmatched))
		} else {
			fmt.Printf("%v: palindrome=%v unmatched=%d\n", name, r.IsPalindrome, len(r.Unmatched))
		}
	}

	fmt.Printf("\nfiles: %v skipped: %v palindromic: %v events: %v\n",
		report.numFiles, report.numSkipped, report.numPalindrome, util.Sum(report.eventCounts))
}
