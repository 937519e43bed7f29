package sangen_test

import (
	"testing"

	"sancorpus/sangen"
)

func bbOf(t *testing.T, names ...string) sangen.Bitboard {
	t.Helper()
	var b sangen.Bitboard
	for _, n := range names {
		b |= sq(t, n).Bit()
	}
	return b
}

func TestExtendedRay(t *testing.T) {
	cases := []struct {
		to, from string
		want     []string
	}{
		// Destination h6, origin e3: the SW half-line through e3 to the edge.
		{"h6", "e3", []string{"g5", "f4", "e3", "d2", "c1"}},
		// Destination a1, origin c3: the whole long diagonal except a1.
		{"a1", "c3", []string{"b2", "c3", "d4", "e5", "f6", "g7", "h8"}},
		// Orthogonal case, adjacent origin.
		{"e4", "e5", []string{"e5", "e6", "e7", "e8"}},
		// Origin at the edge: the half-line stops there.
		{"d4", "h8", []string{"e5", "f6", "g7", "h8"}},
	}
	for _, c := range cases {
		got := sangen.ExtendedRay(sq(t, c.to), sq(t, c.from))
		if want := bbOf(t, c.want...); got != want {
			t.Errorf("ExtendedRay(%s, %s) =\n%vwant\n%v", c.to, c.from, got, want)
		}
	}
}

func TestExtendedRayExcludesDestination(t *testing.T) {
	for _, pt := range []sangen.PieceType{sangen.Bishop, sangen.Rook, sangen.Queen} {
		for to := sangen.Square(0); to < 64; to++ {
			for _, from := range sangen.AttackSet(pt, to).Squares() {
				ray := sangen.ExtendedRay(to, from)
				if ray.Has(to) {
					t.Fatalf("ExtendedRay(%s, %s) contains the destination", to.Name(), from.Name())
				}
				if !ray.Has(from) {
					t.Fatalf("ExtendedRay(%s, %s) misses the origin", to.Name(), from.Name())
				}
			}
		}
	}
}

func TestExtendedRayPanicsWhenMisaligned(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for misaligned squares")
		}
	}()
	sangen.ExtendedRay(sq(t, "a1"), sq(t, "b3"))
}
