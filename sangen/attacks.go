package sangen

import "fmt"

// PieceType identifies a piece family subject to discriminator analysis.
// Kings and pawns have fixed notation rules and are handled separately.
type PieceType int

const (
	Knight PieceType = iota
	Bishop
	Rook
	Queen
	numPieceTypes
)

// PieceTypes lists the families in generation order.
var PieceTypes = [numPieceTypes]PieceType{Knight, Bishop, Rook, Queen}

// Letter returns the SAN letter of the piece family.
func (pt PieceType) Letter() byte {
	return [numPieceTypes]byte{'N', 'B', 'R', 'Q'}[pt]
}

func (pt PieceType) String() string {
	switch pt {
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	}
	return fmt.Sprintf("PieceType(%d)", int(pt))
}

// ParsePieceType accepts a SAN letter or a family name.
func ParsePieceType(s string) (PieceType, error) {
	switch s {
	case "N", "n", "knight":
		return Knight, nil
	case "B", "b", "bishop":
		return Bishop, nil
	case "R", "r", "rook":
		return Rook, nil
	case "Q", "q", "queen":
		return Queen, nil
	}
	return 0, fmt.Errorf("unknown piece type %q (want N, B, R or Q)", s)
}

// Compass directions, clockwise from north. The opposite of d is (d+4)%8.
const (
	dirN = iota
	dirNE
	dirE
	dirSE
	dirS
	dirSW
	dirW
	dirNW
	numDirections
)

// dirDeltas holds the (file, rank) step of each direction.
var dirDeltas = [numDirections][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

var rookDirs = [4]int{dirN, dirE, dirS, dirW}
var bishopDirs = [4]int{dirNE, dirSE, dirSW, dirNW}

var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// rays[sq][dir] is the set of squares from sq in that direction to the
// board edge, excluding sq itself.
var rays [numSquares][numDirections]Bitboard

// attackSets[pt][to] is the set of squares from which a piece of family pt
// reaches to on an otherwise empty board. By symmetry it equals the set of
// squares the piece attacks from to.
var attackSets [numPieceTypes][numSquares]Bitboard

func init() {
	initMasks()
	initRays()
	initAttackSets()
}

func initRays() {
	for sq := Square(0); sq < numSquares; sq++ {
		for d := 0; d < numDirections; d++ {
			df, dr := dirDeltas[d][0], dirDeltas[d][1]
			var ray Bitboard
			f, r := sq.File()+df, sq.Rank()+dr
			for f >= 0 && f < 8 && r >= 0 && r < 8 {
				ray |= SquareAt(f, r).Bit()
				f += df
				r += dr
			}
			rays[sq][d] = ray
		}
	}
}

func initAttackSets() {
	for sq := Square(0); sq < numSquares; sq++ {
		var knight Bitboard
		for _, off := range knightOffsets {
			f, r := sq.File()+off[0], sq.Rank()+off[1]
			if f >= 0 && f < 8 && r >= 0 && r < 8 {
				knight |= SquareAt(f, r).Bit()
			}
		}
		attackSets[Knight][sq] = knight

		var bishop, rook Bitboard
		for _, d := range bishopDirs {
			bishop |= rays[sq][d]
		}
		for _, d := range rookDirs {
			rook |= rays[sq][d]
		}
		attackSets[Bishop][sq] = bishop
		attackSets[Rook][sq] = rook
		attackSets[Queen][sq] = rook | bishop
	}
}

// AttackSet returns the candidate origin squares for a piece of family pt
// landing on to. The board is empty by construction; no occlusion applies.
func AttackSet(pt PieceType, to Square) Bitboard {
	return attackSets[pt][to]
}
