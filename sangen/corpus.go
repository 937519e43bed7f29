package sangen

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Expected corpus sizes, derived from the board geometry. The verify
// package and the tests hold the generator to these.
const (
	CorpusSize          = 9758
	AnnotatedCorpusSize = 3 * CorpusSize
)

// BuildCorpus generates the full set of distinct SAN strings and returns
// it in canonical order. The six piece families are independent, so they
// are generated concurrently and merged by set union.
func BuildCorpus() []string {
	families := make([]map[string]struct{}, numPieceTypes+2)

	var g errgroup.Group
	for _, pt := range PieceTypes {
		pt := pt
		g.Go(func() error {
			families[pt] = PieceSANs(pt)
			return nil
		})
	}
	g.Go(func() error {
		families[numPieceTypes] = PawnSANs()
		return nil
	})
	g.Go(func() error {
		families[numPieceTypes+1] = KingSANs()
		return nil
	})
	// The family generators are pure and cannot fail.
	_ = g.Wait()

	merged := make(map[string]struct{}, CorpusSize)
	for _, fam := range families {
		for s := range fam {
			merged[s] = struct{}{}
		}
	}

	corpus := maps.Keys(merged)
	SortCanonical(corpus)
	return corpus
}

// Annotate expands every corpus entry into its bare, check ("+") and
// checkmate ("#") variants and re-sorts under the canonical key. The
// result has exactly three times as many lines as the input.
func Annotate(corpus []string) []string {
	out := make([]string, 0, 3*len(corpus))
	for _, suffix := range [3]string{"", "+", "#"} {
		for _, s := range corpus {
			out = append(out, s+suffix)
		}
	}
	SortCanonical(out)
	return out
}

// SortCanonical sorts strings by length first, then lexicographically.
func SortCanonical(ss []string) {
	slices.SortFunc(ss, func(a, b string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return strings.Compare(a, b)
	})
}
