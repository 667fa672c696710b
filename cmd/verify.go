package cmd

import (
	"fmt"

	"github.com/jsphweid/cancrizans/verify"
	"github.com/spf13/cobra"
)

var verifySelf bool
var verifyVoiceIdx int

func init() {
	verifyCmd.Flags().BoolVar(&verifySelf, "self", false, "self-check a single voice instead of cross-voice mode")
	verifyCmd.Flags().IntVar(&verifyVoiceIdx, "voice", 0, "voice index for --self")
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify <score.txt|score.mid>",
	Short: "Certifies palindromic structure",
	Long:  `Certifies palindromic structure of a score (cross-voice by default).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		runVerify(args[0])
	},
}

func runVerify(path string) {
	score, err := loadScore(path)
	if err != nil {
		panic("Could not load score: " + err.Error())
	}

	var report verify.Report
	if verifySelf {
		if verifyVoiceIdx < 0 || verifyVoiceIdx >= len(score.Voices) {
			panic(fmt.Sprintf("no voice %d in score", verifyVoiceIdx))
		}
		report = verify.SelfCheck(score.Voices[verifyVoiceIdx])
	} else {
		report = verify.Score(score)
	}

	printReport(report)
}

func printReport(report verify.Report) {
	fmt.Printf("mode: %v\n", report.Mode)
	fmt.Printf("events: %v\n", report.TotalEvents)
	fmt.Printf("pairs: %v matched: %v\n", report.TotalPairs, report.MatchedPairs)
	for _, p := range report.Pairs {
		if !p.Matched {
			fmt.Printf("  pair (%d, %d): %s\n", p.IndexA, p.IndexB, p.Reason)
		}
	}
	if report.IsPalindrome {
		fmt.Println("palindrome: yes")
	} else {
		fmt.Println("palindrome: no")
	}
}
