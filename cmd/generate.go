package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jsphweid/cancrizans/gen"
	"github.com/jsphweid/cancrizans/midi"
	"github.com/spf13/cobra"
)

var genCount int
var genLength int
var genSeed int64
var genOutDir string

func init() {
	generateCmd.Flags().IntVar(&genCount, "count", 1, "number of candidates")
	generateCmd.Flags().IntVar(&genLength, "length", 16, "theme length in events")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 1, "generation seed")
	generateCmd.Flags().StringVar(&genOutDir, "out", "", "write candidate MIDI files into this directory")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates certified crab-canon candidates",
	Long:  `Generates certified crab-canon candidates`,
	Run: func(cmd *cobra.Command, args []string) {
		// positional seed wins over the flag
		if len(args) == 1 {
			arg1, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				panic(err)
			}
			genSeed = arg1
		}
		runGenerate()
	},
}

func runGenerate() {
	params := gen.DefaultParams()
	params.Length = genLength
	params.Seed = genSeed

	candidates, err := gen.GenerateBatch(params, genCount)
	if err != nil {
		panic("Generation failed: " + err.Error())
	}

	for _, c := range candidates {
		fmt.Printf("candidate %v: %d theme events, %d pairs matched, palindrome=%v\n",
			c.ID, c.Theme.Len(), c.Report.MatchedPairs, c.Report.IsPalindrome)
		if genOutDir == "" {
			continue
		}
		if err := os.MkdirAll(genOutDir, 0777); err != nil {
			panic("Could not create out dir: " + err.Error())
		}
		path := filepath.Join(genOutDir, c.ID.String()+".mid")
		if err := midi.WriteScoreFile(c.Score, path); err != nil {
			panic("Could not write " + path + ": " + err.Error())
		}
		fmt.Printf("  wrote %v\n", path)
	}
}
