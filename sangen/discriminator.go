package sangen

// DiscriminatorFlags records, for one (family, origin, destination) triple,
// which disambiguating qualifiers some legal position could force into the
// move's notation. The three flags are independent: a single origin may be
// realized as several sibling strings when different hypothetical second
// pieces would force different qualifiers.
type DiscriminatorFlags struct {
	NeedsFile   bool // a second piece off the origin file could force "Nbd2"
	NeedsRank   bool // a second piece on the origin file could force "N1d2"
	NeedsSquare bool // second pieces on both the file and the rank force "Nb1d2"
}

// Discriminators decides which qualifiers the move from->to by family pt
// could ever require.
//
// Starting from the full candidate set AttackSet(pt, to), every square on
// the extended ray through from is removed first: no piece there can reach
// to while from->to is legal (see ExtendedRay). Knights have no ray, so
// only from itself is removed. The file preference of the notation standard
// falls out of the complementary masks: candidates off the origin file are
// resolved by the file qualifier alone, so only candidates sharing the file
// can ever force a rank qualifier. The full-square case models two
// independent second pieces, one sharing the file and one sharing the rank.
func Discriminators(pt PieceType, to, from Square) DiscriminatorFlags {
	attacks := AttackSet(pt, to)

	var relevant Bitboard
	if pt == Knight {
		relevant = attacks &^ from.Bit()
	} else {
		relevant = attacks &^ ExtendedRay(to, from)
	}

	onFile := relevant & FileMask(from.File())
	return DiscriminatorFlags{
		NeedsFile:   (relevant &^ FileMask(from.File())).Any(),
		NeedsRank:   onFile.Any(),
		NeedsSquare: onFile.Any() && (relevant & RankMask(from.Rank())).Any(),
	}
}
