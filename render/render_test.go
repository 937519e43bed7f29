package render_test

import (
	"strings"
	"testing"

	"sancorpus/render"
	"sancorpus/sangen"
)

func TestAttackDiagram(t *testing.T) {
	dest, ok := sangen.ParseSquare("e5")
	if !ok {
		t.Fatal("bad square literal")
	}
	var buf strings.Builder
	render.AttackDiagram(&buf, sangen.Knight, dest)
	out := buf.String()

	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("output is not an SVG document")
	}
	if !strings.Contains(out, "knight moves to e5") {
		t.Error("missing diagram title")
	}
	// 64 board squares plus one destination marker style.
	if n := strings.Count(out, "<rect"); n != 64 {
		t.Errorf("rect count = %d, want 64", n)
	}
	if !strings.Contains(out, "fill:#d33") {
		t.Error("destination square not marked")
	}
	// A knight on e5 has eight origins, all of which need full
	// square disambiguation.
	if n := strings.Count(out, "fill:#96c"); n != 8 {
		t.Errorf("square-qualified origins = %d, want 8", n)
	}
}

func TestAttackDiagramCornerBishop(t *testing.T) {
	dest, ok := sangen.ParseSquare("a1")
	if !ok {
		t.Fatal("bad square literal")
	}
	var buf strings.Builder
	render.AttackDiagram(&buf, sangen.Bishop, dest)
	out := buf.String()

	// Every origin on the long diagonal is unambiguous.
	if n := strings.Count(out, "fill:#9c9"); n != 7 {
		t.Errorf("plain origins = %d, want 7", n)
	}
	if strings.Contains(out, "fill:#96c") {
		t.Error("corner destination should never need square qualification")
	}
}
