package sangen_test

import (
	"testing"

	"sancorpus/sangen"
)

func TestPieceSANCounts(t *testing.T) {
	cases := []struct {
		pt   sangen.PieceType
		want int
	}{
		{sangen.Knight, 1248},
		{sangen.Bishop, 1720},
		{sangen.Rook, 1824},
		{sangen.Queen, 4528},
	}
	for _, c := range cases {
		if got := len(sangen.PieceSANs(c.pt)); got != c.want {
			t.Errorf("%v SAN count = %d, want %d", c.pt, got, c.want)
		}
	}
}

func TestBishopSANMembership(t *testing.T) {
	sans := sangen.PieceSANs(sangen.Bishop)
	for _, want := range []string{"Bh6", "Bxh6", "Beh6", "Bexh6"} {
		if _, ok := sans[want]; !ok {
			t.Errorf("bishop corpus missing %q", want)
		}
	}
	// No two h6-attacking squares share a rank into the e file, so the
	// rank- and square-qualified siblings of e3->h6 must not appear.
	for _, reject := range []string{"B3h6", "B3xh6", "Be3h6", "Be3xh6"} {
		if _, ok := sans[reject]; ok {
			t.Errorf("bishop corpus wrongly contains %q", reject)
		}
	}
}

func TestQueenSANMembership(t *testing.T) {
	sans := sangen.PieceSANs(sangen.Queen)
	for _, want := range []string{"Qd4", "Qxd4", "Qdxd4", "Q4xd4", "Qd1xd4", "Qa1xd4"} {
		if _, ok := sans[want]; !ok {
			t.Errorf("queen corpus missing %q", want)
		}
	}
}

func TestPawnSANs(t *testing.T) {
	sans := sangen.PawnSANs()
	if len(sans) != 308 {
		t.Fatalf("pawn SAN count = %d, want 308", len(sans))
	}
	for _, want := range []string{
		"e4",      // single and double pushes collapse
		"e2",      // Black push, unreachable by White
		"exd5",    // capture keeps the origin file
		"e8=Q",    // White promotion push
		"e1=N",    // Black promotion push
		"dxe8=Q",  // promotion by capture
		"axb1=R",  // Black promotion capture off the a file
	} {
		if _, ok := sans[want]; !ok {
			t.Errorf("pawn corpus missing %q", want)
		}
	}
	for _, reject := range []string{
		"a1",   // bare backrank push is always a promotion
		"e8",   // same on the White side
		"e9",   // off board
		"ixb2", // no i file
	} {
		if _, ok := sans[reject]; ok {
			t.Errorf("pawn corpus wrongly contains %q", reject)
		}
	}
}

func TestKingSANs(t *testing.T) {
	sans := sangen.KingSANs()
	if len(sans) != 130 {
		t.Fatalf("king SAN count = %d, want 130", len(sans))
	}
	for _, want := range []string{"Ke4", "Kxe4", "Ka1", "Kxh8", "O-O", "O-O-O"} {
		if _, ok := sans[want]; !ok {
			t.Errorf("king corpus missing %q", want)
		}
	}
}
