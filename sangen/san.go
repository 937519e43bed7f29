package sangen

// SAN assembly: expands attack sets and discriminator flags into the set of
// distinct notation strings each piece family can ever produce. All
// collectors return plain string sets; uniqueness is enforced here, at the
// assembler boundary.

var promotionLetters = [4]byte{'Q', 'R', 'B', 'N'}

// PieceSANs returns every SAN string a piece of family pt can produce.
//
// For each destination the plain and capturing forms are always emitted:
// there is always a board with no second piece of the family, so the
// unqualified move is reachable. Qualified forms follow the discriminator
// flags, each doubled across the capture axis since any destination can
// hypothetically hold an enemy piece.
func PieceSANs(pt PieceType) map[string]struct{} {
	sans := make(map[string]struct{})
	letter := string(pt.Letter())

	add := func(discriminator string, to Square) {
		sans[letter+discriminator+to.Name()] = struct{}{}
		sans[letter+discriminator+"x"+to.Name()] = struct{}{}
	}

	for to := Square(0); to < numSquares; to++ {
		add("", to)

		candidates := AttackSet(pt, to)
		for candidates != 0 {
			from := popLSB(&candidates)
			flags := Discriminators(pt, to, from)
			if flags.NeedsFile {
				add(string([]byte{'a' + byte(from.File())}), to)
			}
			if flags.NeedsRank {
				add(string([]byte{'1' + byte(from.Rank())}), to)
			}
			if flags.NeedsSquare {
				add(from.Name(), to)
			}
		}
	}
	return sans
}

// PawnSANs returns every SAN string a pawn of either color can produce.
// Pushes use the bare destination, captures prefix the origin file, and
// moves onto a back rank append the promotion suffix. One- and two-step
// pushes to the same square, and White/Black moves landing on the same
// square, collapse to a single string in the set.
func PawnSANs() map[string]struct{} {
	sans := make(map[string]struct{})

	add := func(s string, promotes bool) {
		if !promotes {
			sans[s] = struct{}{}
			return
		}
		for _, p := range promotionLetters {
			sans[s+"="+string(p)] = struct{}{}
		}
	}

	// Pawns of either color occupy ranks 2..7 only.
	for from := SquareAt(0, 1); from <= SquareAt(7, 6); from++ {
		f, r := from.File(), from.Rank()

		// White moves up the board.
		to := from + 8
		add(to.Name(), to.Rank() == 7)
		if r == 1 {
			add((from + 16).Name(), false)
		}
		for _, df := range [2]int{-1, 1} {
			if nf := f + df; nf >= 0 && nf < 8 {
				cap := SquareAt(nf, r+1)
				add(string([]byte{'a' + byte(f)})+"x"+cap.Name(), cap.Rank() == 7)
			}
		}

		// Black mirrors downward.
		to = from - 8
		add(to.Name(), to.Rank() == 0)
		if r == 6 {
			add((from - 16).Name(), false)
		}
		for _, df := range [2]int{-1, 1} {
			if nf := f + df; nf >= 0 && nf < 8 {
				cap := SquareAt(nf, r-1)
				add(string([]byte{'a' + byte(f)})+"x"+cap.Name(), cap.Rank() == 0)
			}
		}
	}
	return sans
}

// KingSANs returns every SAN string a king can produce. With at most one
// king per side the move is never ambiguous, so only the plain and
// capturing forms exist, plus the two castling strings.
func KingSANs() map[string]struct{} {
	sans := make(map[string]struct{})
	for to := Square(0); to < numSquares; to++ {
		sans["K"+to.Name()] = struct{}{}
		sans["Kx"+to.Name()] = struct{}{}
	}
	sans["O-O"] = struct{}{}
	sans["O-O-O"] = struct{}{}
	return sans
}
