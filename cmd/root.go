package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cancrizans",
	Short: "Crab-canon transformation and verification engine",
	Long:  `Transforms event sequences (retrograde, inversion, augmentation) and certifies palindromic structure.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
