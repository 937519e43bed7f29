package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sancorpus/config"
	"sancorpus/sangen"
)

var (
	generateDir           string
	generatePlain         string
	generateAnnotated     string
	generateSkipAnnotated bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateDir, "out-dir", "d", "", "directory to write corpus files into")
	generateCmd.Flags().StringVar(&generatePlain, "plain", "", "file name for the plain corpus")
	generateCmd.Flags().StringVar(&generateAnnotated, "annotated", "", "file name for the check/mate annotated corpus")
	generateCmd.Flags().BoolVar(&generateSkipAnnotated, "skip-annotated", false, "write only the plain corpus")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the SAN corpus files",
	Long: `Generate enumerates the full corpus and writes it as sorted text, one
string per line. Output locations come from sancorpus.toml when present
and may be overridden with flags.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	manifest, found, err := config.Load(".")
	if err != nil {
		return err
	}
	if found {
		fmt.Fprintf(cmd.OutOrStdout(), "using %s\n", config.ManifestName)
	}
	if generateDir != "" {
		manifest.Output.Dir = generateDir
	}
	if generatePlain != "" {
		manifest.Output.Plain = generatePlain
	}
	if generateAnnotated != "" {
		manifest.Output.Annotated = generateAnnotated
	}
	if generateSkipAnnotated {
		manifest.Output.SkipAnnotated = true
	}

	corpus := sangen.BuildCorpus()
	if err := sangen.WriteLines(manifest.PlainPath(), corpus); err != nil {
		return fmt.Errorf("writing plain corpus: %w", err)
	}
	ok := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d strings)\n", ok("wrote"), manifest.PlainPath(), len(corpus))

	if manifest.Output.SkipAnnotated {
		return nil
	}
	annotated := sangen.Annotate(corpus)
	if err := sangen.WriteLines(manifest.AnnotatedPath(), annotated); err != nil {
		return fmt.Errorf("writing annotated corpus: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d strings)\n", ok("wrote"), manifest.AnnotatedPath(), len(annotated))
	return nil
}
