// Package verify cross-checks the sangen attack tables and corpus
// against an independent magic-bitboard move generator.
package verify

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"sancorpus/sangen"
)

// Mismatch describes a single disagreement found during verification.
type Mismatch struct {
	Subject string
	Got     uint64
	Want    uint64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %#016x, want %#016x", m.Subject, m.Got, m.Want)
}

// AttackTables compares the sliding and knight attack sets on every
// square against dragontoothmg's movegen on an empty board. A non-nil
// result lists every square where the tables disagree.
func AttackTables() []Mismatch {
	var bad []Mismatch
	for sq := sangen.Square(0); sq < 64; sq++ {
		rook := dragontoothmg.CalculateRookMoveBitboard(uint8(sq), 0)
		bishop := dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), 0)
		checks := []struct {
			pt   sangen.PieceType
			want uint64
		}{
			{sangen.Rook, rook},
			{sangen.Bishop, bishop},
			{sangen.Queen, rook | bishop},
		}
		for _, c := range checks {
			got := uint64(sangen.AttackSet(c.pt, sq))
			if got != c.want {
				bad = append(bad, Mismatch{
					Subject: fmt.Sprintf("%s attacks at %s", c.pt, sq.Name()),
					Got:     got,
					Want:    c.want,
				})
			}
		}
		if got := sangen.AttackSet(sangen.Knight, sq); got != knightAttacks(sq) {
			bad = append(bad, Mismatch{
				Subject: fmt.Sprintf("knight attacks at %s", sq.Name()),
				Got:     uint64(got),
				Want:    uint64(knightAttacks(sq)),
			})
		}
	}
	return bad
}

// knightAttacks recomputes knight reach from scratch so the check does
// not share code with the tables under test.
func knightAttacks(sq sangen.Square) sangen.Bitboard {
	var bb sangen.Bitboard
	jumps := [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	for _, j := range jumps {
		f, r := sq.File()+j[0], sq.Rank()+j[1]
		if f >= 0 && f < 8 && r >= 0 && r < 8 {
			bb |= sangen.SquareAt(f, r).Bit()
		}
	}
	return bb
}

// Counts rebuilds the corpus and confirms the published totals: the
// overall corpus size, the annotated size, and each per-family count.
func Counts() []Mismatch {
	var bad []Mismatch
	corpus := sangen.BuildCorpus()
	if len(corpus) != sangen.CorpusSize {
		bad = append(bad, Mismatch{Subject: "corpus size", Got: uint64(len(corpus)), Want: sangen.CorpusSize})
	}
	if n := len(sangen.Annotate(corpus)); n != sangen.AnnotatedCorpusSize {
		bad = append(bad, Mismatch{Subject: "annotated corpus size", Got: uint64(n), Want: sangen.AnnotatedCorpusSize})
	}
	for _, fc := range FamilyCounts() {
		if fc.Got != fc.Want {
			bad = append(bad, Mismatch{Subject: fc.Name + " family size", Got: uint64(fc.Got), Want: uint64(fc.Want)})
		}
	}
	return bad
}

// FamilyCount reports the generated and expected size of one SAN family.
type FamilyCount struct {
	Name string
	Got  int
	Want int
}

// FamilyCounts enumerates every family with its generated and expected
// sizes, in display order.
func FamilyCounts() []FamilyCount {
	counts := []FamilyCount{
		{Name: "pawn", Got: len(sangen.PawnSANs()), Want: 308},
		{Name: "knight", Got: len(sangen.PieceSANs(sangen.Knight)), Want: 1248},
		{Name: "bishop", Got: len(sangen.PieceSANs(sangen.Bishop)), Want: 1720},
		{Name: "rook", Got: len(sangen.PieceSANs(sangen.Rook)), Want: 1824},
		{Name: "queen", Got: len(sangen.PieceSANs(sangen.Queen)), Want: 4528},
		{Name: "king", Got: len(sangen.KingSANs()), Want: 130},
	}
	return counts
}

// All runs every verification pass and returns the combined mismatches.
func All() []Mismatch {
	bad := AttackTables()
	bad = append(bad, Counts()...)
	return bad
}
