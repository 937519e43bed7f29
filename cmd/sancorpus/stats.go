package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sancorpus/sangen"
	"sancorpus/verify"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print per-family corpus sizes",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	total := 0
	for _, fc := range verify.FamilyCounts() {
		fmt.Fprintf(w, "%s\t%d\n", fc.Name, fc.Got)
		total += fc.Got
	}
	fmt.Fprintf(w, "total\t%d\n", total)
	fmt.Fprintf(w, "annotated\t%d\n", 3*total)
	if err := w.Flush(); err != nil {
		return err
	}
	if total != sangen.CorpusSize {
		return fmt.Errorf("family sizes sum to %d, want %d", total, sangen.CorpusSize)
	}
	return nil
}
