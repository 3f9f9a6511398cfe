package primitives

import "fmt"

const (
	minLetter = 'A'
	maxLetter = 'Z'
)

// LetterSet efficiently represents a set of uppercase ASCII letters.
//
// It is a value type: assigning or passing a LetterSet copies the whole set,
// so a caller can hand a copy to a recursive branch and mutate it there
// without the original ever observing the change.
type LetterSet struct {
	present [maxLetter - minLetter + 1]bool
	count   int
}

// Add adds a letter to the set.
func (s *LetterSet) Add(r rune) error {
	if r < minLetter || r > maxLetter {
		return fmt.Errorf("letter %c is out of range", r)
	}

	if s.present[r-minLetter] {
		return nil
	}

	s.count++
	s.present[r-minLetter] = true
	return nil
}

// Remove removes a letter from the set. Letters outside A-Z are never in the
// set, so removing them is a no-op.
func (s *LetterSet) Remove(r rune) {
	if r < minLetter || r > maxLetter {
		return
	}

	if !s.present[r-minLetter] {
		return
	}

	s.count--
	s.present[r-minLetter] = false
}

// Contains checks if a letter is in the set.
func (s LetterSet) Contains(r rune) bool {
	if r < minLetter || r > maxLetter {
		return false
	}
	return s.present[r-minLetter]
}

// Without returns a copy of the set with every letter of word removed.
// Letters of word not in the set have no effect.
func (s LetterSet) Without(word string) LetterSet {
	out := s
	for _, r := range word {
		out.Remove(r)
	}
	return out
}

// Letters returns the letters of the set in alphabetical order.
func (s LetterSet) Letters() []rune {
	out := make([]rune, 0, s.count)
	for i, p := range s.present {
		if p {
			out = append(out, minLetter+rune(i))
		}
	}
	return out
}

// IsEmpty checks if the set has no letters.
func (s LetterSet) IsEmpty() bool {
	return s.count == 0
}

// Count returns the number of letters in the set.
func (s LetterSet) Count() int {
	return s.count
}
