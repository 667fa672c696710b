package cmd

import (
	"fmt"

	"github.com/jsphweid/cancrizans/midi"
	"github.com/spf13/cobra"
)

var inspectExcerpt string

func init() {
	inspectCmd.Flags().StringVar(&inspectExcerpt, "excerpt", "", "also write a trimmed preview SMF to this path")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a MIDI file as event voices",
	Long:  `Inspects a MIDI file as event voices`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	mf, err := midi.ReadSMFFile(path)
	if err != nil {
		panic("Could not read midi: " + err.Error())
	}

	score, err := midi.ScoreFromSMF(mf)
	if err != nil {
		panic("Could not convert midi: " + err.Error())
	}

	for i, v := range score.Voices {
		fmt.Printf("voice %d %q: %d events, total %s beats\n", i, v.Name, v.Len(), v.TotalDuration())
		onsets := v.Onsets()
		for j, ev := range v.Events {
			fmt.Printf("  [%s] %v\n", onsets[j], ev)
			if j >= 9 && v.Len() > 12 {
				fmt.Printf("  ... %d more\n", v.Len()-j-1)
				break
			}
		}
	}

	if inspectExcerpt != "" {
		trimmed := midi.Excerpt(mf, 10)
		if err := trimmed.WriteFile(inspectExcerpt); err != nil {
			panic("Could not write excerpt: " + err.Error())
		}
		fmt.Printf("wrote excerpt %v\n", inspectExcerpt)
	}
}
