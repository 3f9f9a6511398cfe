package solver

import "fmt"

// Word pairs a dictionary entry with its count of distinct letters. The
// count is computed once at admission to the index because the last-word
// pruning rule re-queries it heavily during search.
//
// Two Words are the same word iff their Text is equal.
type Word struct {
	Text          string
	UniqueLetters int
}

// NewWord wraps a dictionary entry, precomputing its distinct-letter count.
func NewWord(text string) Word {
	seen := make(map[rune]struct{}, len(text))
	for _, r := range text {
		seen[r] = struct{}{}
	}
	return Word{Text: text, UniqueLetters: len(seen)}
}

// Len returns the number of letters in the word.
func (w Word) Len() int {
	return len(w.Text)
}

// At returns the letter at index i, or an error when i is out of range.
func (w Word) At(i int) (rune, error) {
	if i < 0 || i >= len(w.Text) {
		return 0, fmt.Errorf("index %d out of range for word %q", i, w.Text)
	}
	return rune(w.Text[i]), nil
}

func (w Word) String() string {
	return w.Text
}
