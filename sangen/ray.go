package sangen

import "fmt"

// directionOf returns the compass direction from a toward b, or -1 when the
// squares are not aligned on a file, rank, or diagonal.
func directionOf(a, b Square) int {
	df := b.File() - a.File()
	dr := b.Rank() - a.Rank()
	if a == b {
		return -1
	}
	if df != 0 && dr != 0 && df != dr && df != -dr {
		return -1
	}
	sf, sr := sign(df), sign(dr)
	for d := 0; d < numDirections; d++ {
		if dirDeltas[d][0] == sf && dirDeltas[d][1] == sr {
			return d
		}
	}
	return -1
}

// ExtendedRay returns every square on the half-line that starts at to,
// passes through from, and continues to the board edge, excluding to
// itself. A second piece of the same sliding family anywhere on this
// half-line can never reach to in one move while from->to is itself legal:
// a piece between the squares would have blocked the move, and a piece on
// or beyond from is shut out by the piece standing on from.
//
// Both squares must be aligned; misalignment is a programming error since
// valid inputs are always drawn from the attack tables, so it panics.
func ExtendedRay(to, from Square) Bitboard {
	d := directionOf(to, from)
	if d < 0 {
		panic(fmt.Sprintf("sangen: squares %s and %s are not aligned", to.Name(), from.Name()))
	}
	return rays[to][d]
}
