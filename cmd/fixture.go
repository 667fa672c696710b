package cmd

import (
	"fmt"

	"github.com/jsphweid/cancrizans/fixture"
	"github.com/jsphweid/cancrizans/verify"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fixtureCmd)
}

var fixtureCmd = &cobra.Command{
	Use:   "fixture",
	Short: "Verifies the embedded ground-truth crab canon",
	Long:  `Verifies the embedded ground-truth crab canon under both modes`,
	Run: func(cmd *cobra.Command, args []string) {
		score := fixture.CrabCanon()
		fmt.Printf("fixture: %d voices, %d events\n", len(score.Voices), score.NumEvents())

		fmt.Println("\ncross-voice:")
		printReport(verify.Score(score))

		for i, v := range score.Voices {
			fmt.Printf("\nself-check voice %d (%q):\n", i, v.Name)
			printReport(verify.SelfCheck(v))
		}
	},
}
