package sangen

// Square indexes a board square: a1=0, b1=1, ..., h8=63.
type Square int

const numSquares = 64

// SquareAt builds a square from 0-based file and rank indices.
func SquareAt(file, rank int) Square { return Square(rank*8 + file) }

// File returns the 0-based file index (a=0 .. h=7).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the 0-based rank index (1st rank = 0 .. 8th rank = 7).
func (s Square) Rank() int { return int(s) / 8 }

// Bit returns the bitboard with only this square set.
func (s Square) Bit() Bitboard { return 1 << uint(s) }

// Name returns the algebraic coordinate of the square (e.g. 0 -> "a1").
func (s Square) Name() string {
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// ParseSquare converts an algebraic coordinate ("e4") back to a Square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return 0, false
	}
	f := int(name[0] - 'a')
	r := int(name[1] - '1')
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return 0, false
	}
	return SquareAt(f, r), true
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
