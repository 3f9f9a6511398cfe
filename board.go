package solver

import (
	"fmt"

	"github.com/illiteratecoder/letter-boxed-solver/pkg/primitives"
)

const (
	// NumWalls is the number of walls in a puzzle.
	NumWalls = 4

	// MinWordLength is the shortest word the puzzle accepts.
	MinWordLength = 3
)

// Board represents the walls (and rules) of a letter-box puzzle.
//
// A Board is immutable after construction and safe for concurrent reads.
type Board struct {
	// walls is the authoritative storage of the puzzle's letters, one slice
	// per wall, in input order.
	walls [][]rune

	// wallOf maps a letter to the index of its wall in walls. When a letter
	// appears more than once in the input, the first occurrence's wall wins;
	// the puzzle assumes no duplicates, so this is a documented tie-break
	// rather than an error.
	wallOf map[rune]int

	letters primitives.LetterSet
}

// NewBoard creates a Board from a string of uppercase letters, entered wall
// by wall. The length must be a positive multiple of NumWalls.
func NewBoard(letters string) (*Board, error) {
	runes := []rune(letters)
	if len(runes) == 0 || len(runes)%NumWalls != 0 {
		return nil, fmt.Errorf("need a positive multiple of %d letters, got %d", NumWalls, len(runes))
	}

	b := &Board{
		walls:  make([][]rune, NumWalls),
		wallOf: make(map[rune]int, len(runes)),
	}

	perWall := len(runes) / NumWalls
	for wall := range NumWalls {
		b.walls[wall] = make([]rune, 0, perWall)

		for i := range perWall {
			r := runes[wall*perWall+i]
			if err := b.letters.Add(r); err != nil {
				return nil, fmt.Errorf("bad puzzle letter: %w", err)
			}

			b.walls[wall] = append(b.walls[wall], r)
			if _, ok := b.wallOf[r]; !ok {
				b.wallOf[r] = wall
			}
		}
	}

	return b, nil
}

// Contains checks if a letter is in the box.
func (b *Board) Contains(r rune) bool {
	return b.letters.Contains(r)
}

// OnSameWall checks if two letters are on the same wall. A letter absent
// from the box is never on the same wall as anything.
func (b *Board) OnSameWall(a, c rune) bool {
	wa, ok := b.wallOf[a]
	if !ok {
		return false
	}

	wc, ok := b.wallOf[c]
	if !ok {
		return false
	}

	return wa == wc
}

// CanMakeWord checks if a word can be typed within the box: it is at least
// MinWordLength long, uses only box letters, and never uses two letters from
// the same wall consecutively.
func (b *Board) CanMakeWord(word string) bool {
	runes := []rune(word)
	if len(runes) < MinWordLength {
		return false
	}

	for i, r := range runes {
		if !b.Contains(r) {
			return false
		}
		if i > 0 && b.OnSameWall(runes[i-1], r) {
			return false
		}
	}

	return true
}

// Letters returns the set of all letters in the box.
func (b *Board) Letters() primitives.LetterSet {
	return b.letters
}

// NumLetters returns the number of distinct letters in the box.
func (b *Board) NumLetters() int {
	return b.letters.Count()
}
