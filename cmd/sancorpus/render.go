package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sancorpus/render"
	"sancorpus/sangen"
)

var (
	renderPiece  string
	renderSquare string
	renderOut    string
)

func init() {
	renderCmd.Flags().StringVarP(&renderPiece, "piece", "p", "queen", "piece type (knight|bishop|rook|queen)")
	renderCmd.Flags().StringVarP(&renderSquare, "square", "s", "d4", "destination square")
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "", "write the SVG to a file instead of stdout")
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an SVG diagram of attack geometry for one destination",
	Long: `Render draws the board with every square that attacks the chosen
destination shaded by the disambiguation a move from there requires.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	pt, err := sangen.ParsePieceType(renderPiece)
	if err != nil {
		return err
	}
	sq, ok := sangen.ParseSquare(renderSquare)
	if !ok {
		return fmt.Errorf("invalid square %q", renderSquare)
	}

	if renderOut == "" {
		render.AttackDiagram(cmd.OutOrStdout(), pt, sq)
		return nil
	}
	f, err := os.Create(renderOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", renderOut, err)
	}
	render.AttackDiagram(f, pt, sq)
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", renderOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", renderOut)
	return nil
}
