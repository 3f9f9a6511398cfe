package solver

import (
	"iter"
	"slices"
	"strings"
)

// WordIndex groups the candidate words of a puzzle by starting letter.
//
// A WordIndex is immutable after BuildIndex returns and is shared read-only
// by every concurrent search branch.
type WordIndex struct {
	byFirst  map[rune][]Word
	numWords int
}

// BuildIndex consumes a stream of pre-normalized dictionary entries, keeps
// the ones the board can make, and groups them by first letter. Identical
// entries collapse to one candidate.
//
// Normalization (uppercasing, trimming) is the stream producer's job; the
// index takes each entry as-is.
func BuildIndex(board *Board, words iter.Seq[string]) *WordIndex {
	groups := make(map[rune]map[string]struct{})
	for text := range words {
		if !board.CanMakeWord(text) {
			continue
		}

		first := rune(text[0])
		if groups[first] == nil {
			groups[first] = make(map[string]struct{})
		}
		groups[first][text] = struct{}{}
	}

	idx := &WordIndex{byFirst: make(map[rune][]Word, len(groups))}
	for first, texts := range groups {
		group := make([]Word, 0, len(texts))
		for text := range texts {
			group = append(group, NewWord(text))
		}

		// Group order is not contractual; sorting just keeps exploration
		// order stable from one run to the next.
		slices.SortFunc(group, func(a, b Word) int {
			return strings.Compare(a.Text, b.Text)
		})

		idx.byFirst[first] = group
		idx.numWords += len(group)
	}

	return idx
}

// WordsStartingWith returns the candidate words beginning with a letter.
// The result is empty for letters with no valid words; that is not an
// error, just a dead branch for search. Callers must not modify it.
func (idx *WordIndex) WordsStartingWith(r rune) []Word {
	return idx.byFirst[r]
}

// NumWords returns the total number of candidate words in the index.
func (idx *WordIndex) NumWords() int {
	return idx.numWords
}
