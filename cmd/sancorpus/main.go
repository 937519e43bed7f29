// Package main implements the sancorpus CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"sancorpus/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sancorpus",
	Short: "Generator for the complete set of syntactically valid SAN strings",
	Long: `sancorpus enumerates every standard algebraic notation string a chess
move can produce, including exactly the disambiguation forms that board
geometry can force, and writes the result as sorted text corpora.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
