package cmd

import (
	"fmt"

	"github.com/jsphweid/cancrizans/analyze"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <score.txt|score.mid>",
	Short: "Prints interval/harmonic/rhythm statistics",
	Long:  `Prints interval/harmonic/rhythm statistics`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		runAnalyze(args[0])
	},
}

func runAnalyze(path string) {
	score, err := loadScore(path)
	if err != nil {
		panic("Could not load score: " + err.Error())
	}

	for _, v := range score.Voices {
		fmt.Printf("voice %q (%d events)\n", v.Name, v.Len())
		iv := analyze.Intervals(v)
		fmt.Printf("  intervals: %d, most common %+d, diversity %.2f, mean abs %.2f\n",
			iv.Total, iv.MostCommon, iv.Diversity, iv.MeanAbs)
		rh := analyze.Rhythm(v)
		fmt.Printf("  total duration %s, most common duration %s, diversity %.2f\n",
			rh.Total, rh.MostCommon, rh.Diversity)
	}

	h := analyze.Harmonies(score)
	fmt.Printf("sonorities: %d (%d distinct), most common %s\n", h.Total, h.Distinct, h.MostCommon)
}
