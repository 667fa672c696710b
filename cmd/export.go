package cmd

import (
	"fmt"

	"github.com/jsphweid/cancrizans/canon"
	"github.com/jsphweid/cancrizans/midi"
	"github.com/jsphweid/cancrizans/model"
	"github.com/jsphweid/cancrizans/transform"
	"github.com/jsphweid/cancrizans/verify"
	"github.com/spf13/cobra"
)

var exportKind string
var exportAxis int
var exportFactor string

func init() {
	exportCmd.Flags().StringVar(&exportKind, "kind", "crab", "crab | mirror | table")
	exportCmd.Flags().IntVar(&exportAxis, "axis", int(model.MiddleC), "inversion axis for mirror/table")
	exportCmd.Flags().StringVar(&exportFactor, "augment", "", "optionally augment the theme first, e.g. 2 or 3/2")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <theme.txt|theme.mid> <out.mid>",
	Short: "Assembles a canon from a theme and writes it as MIDI",
	Long:  `Assembles a canon from a theme and writes it as MIDI`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		runExport(args[0], args[1])
	},
}

func runExport(themePath, outPath string) {
	theme, err := loadVoice(themePath, 0)
	if err != nil {
		panic("Could not load theme: " + err.Error())
	}

	if exportFactor != "" {
		factor, err := transform.ParseFactor(exportFactor)
		if err != nil {
			panic(err)
		}
		theme, err = transform.Augment(theme, factor)
		if err != nil {
			panic(err)
		}
	}

	var score model.Score
	switch exportKind {
	case "crab":
		score = canon.AssembleCrab(theme)
	case "mirror":
		score = canon.AssembleMirror(theme, model.Pitch(exportAxis))
	case "table":
		score = canon.AssembleTable(theme, model.Pitch(exportAxis))
	default:
		panic("Unknown canon kind: " + exportKind)
	}

	if err := midi.WriteScoreFile(score, outPath); err != nil {
		panic("Could not write midi: " + err.Error())
	}

	report := verify.Score(score)
	fmt.Printf("wrote %v (%d events, palindrome=%v)\n", outPath, score.NumEvents(), report.IsPalindrome)
}
