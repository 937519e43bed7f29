package sangen

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, one bit per square (a1 = bit 0).
// Bitboards are value types; every operation returns a new snapshot.
type Bitboard uint64

// File and rank masks, filled in by initMasks.
var fileMasks [8]Bitboard
var rankMasks [8]Bitboard

func initMasks() {
	for f := 0; f < 8; f++ {
		var m Bitboard
		for r := 0; r < 8; r++ {
			m |= SquareAt(f, r).Bit()
		}
		fileMasks[f] = m
	}
	for r := 0; r < 8; r++ {
		var m Bitboard
		for f := 0; f < 8; f++ {
			m |= SquareAt(f, r).Bit()
		}
		rankMasks[r] = m
	}
}

// FileMask returns the mask of all squares on the given 0-based file.
func FileMask(f int) Bitboard { return fileMasks[f] }

// RankMask returns the mask of all squares on the given 0-based rank.
func RankMask(r int) Bitboard { return rankMasks[r] }

// Any reports whether the bitboard has at least one square set.
func (b Bitboard) Any() bool { return b != 0 }

// Has reports whether the given square is set.
func (b Bitboard) Has(s Square) bool { return b&s.Bit() != 0 }

// Count returns the number of set squares.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// popLSB removes and returns the lowest set square of the mask.
func popLSB(mask *Bitboard) Square {
	sq := Square(bits.TrailingZeros64(uint64(*mask)))
	*mask &= *mask - 1
	return sq
}

// Squares returns the set squares in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for b != 0 {
		out = append(out, popLSB(&b))
	}
	return out
}

// String renders the bitboard as an 8x8 grid, 8th rank first. Debug aid.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			if b.Has(SquareAt(f, r)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			if f < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
