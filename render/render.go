// Package render draws SVG board diagrams of attack geometry and the
// disambiguation each origin square requires.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"sancorpus/sangen"
)

const (
	cell   = 48
	margin = 24
	board  = 8 * cell
)

// fill styles per disambiguation class
const (
	styleDest   = "fill:#d33;stroke:#222"
	stylePlain  = "fill:#9c9;stroke:#222"
	styleFile   = "fill:#69c;stroke:#222"
	styleRank   = "fill:#c96;stroke:#222"
	styleSquare = "fill:#96c;stroke:#222"
	styleLight  = "fill:#f0d9b5;stroke:#222"
	styleDark   = "fill:#b58863;stroke:#222"
)

// AttackDiagram writes an SVG of the board with every origin square
// that attacks dest shaded by the discriminator it needs when moving
// there. The destination square itself is marked in red.
func AttackDiagram(w io.Writer, pt sangen.PieceType, dest sangen.Square) {
	canvas := svg.New(w)
	canvas.Start(board+2*margin, board+2*margin)
	canvas.Title(fmt.Sprintf("%s moves to %s", pt, dest.Name()))

	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			sq := sangen.SquareAt(f, r)
			x := margin + f*cell
			y := margin + (7-r)*cell
			canvas.Rect(x, y, cell, cell, squareStyle(pt, sq, dest))
		}
	}
	for f := 0; f < 8; f++ {
		canvas.Text(margin+f*cell+cell/2, board+margin+16, string(rune('a'+f)), "text-anchor:middle;font-size:14px")
	}
	for r := 0; r < 8; r++ {
		canvas.Text(margin-10, margin+(7-r)*cell+cell/2+5, string(rune('1'+r)), "text-anchor:middle;font-size:14px")
	}
	canvas.End()
}

func squareStyle(pt sangen.PieceType, sq, dest sangen.Square) string {
	if sq == dest {
		return styleDest
	}
	if !sangen.AttackSet(pt, dest).Has(sq) {
		if (sq.File()+sq.Rank())%2 == 0 {
			return styleDark
		}
		return styleLight
	}
	// Shade by the strongest qualifier the origin can require.
	flags := sangen.Discriminators(pt, dest, sq)
	switch {
	case flags.NeedsSquare:
		return styleSquare
	case flags.NeedsFile:
		return styleFile
	case flags.NeedsRank:
		return styleRank
	default:
		return stylePlain
	}
}
