// Package solver finds every solution to a letter-box word puzzle: chains of
// dictionary words where consecutive letters never share a wall, each word
// starts with the previous word's last letter, and the chain covers every
// letter of the box.
package solver

import (
	"errors"
	"fmt"
	"sync"

	"github.com/illiteratecoder/letter-boxed-solver/pkg/primitives"
)

// MaxWords returns the largest solution length worth asking for on a board:
// any chain longer than NumLetters/MinWordLength must repeat letters it has
// already covered.
func MaxWords(board *Board) int {
	return board.NumLetters() / MinWordLength
}

// Solve enumerates every chain of exactly numWords candidate words that
// solves the puzzle. The search is exhaustive: one goroutine explores each
// distinct starting letter, and all of them run to completion before Solve
// returns.
//
// The returned slice holds the same set of solutions on every run; their
// order depends on scheduling.
func Solve(board *Board, index *WordIndex, numWords int) ([]Solution, error) {
	if numWords < 1 || numWords > MaxWords(board) {
		return nil, fmt.Errorf("number of words must be between 1 and %d, got %d", MaxWords(board), numWords)
	}

	e := &engine{
		index: index,
		sink:  &SolutionSink{},
	}

	var (
		wg    sync.WaitGroup
		errMu sync.Mutex
		errs  []error
	)
	for _, start := range board.Letters().Letters() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := e.search(numWords, start, board.Letters(), nil); err != nil {
				errMu.Lock()
				errs = append(errs, err)
				errMu.Unlock()
			}
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return e.sink.Drain(), nil
}

// engine carries the shared state of one search. The index is never written
// during the search phase and the sink serializes its own appends, so
// branches need no other synchronization. Wall rules do not appear here:
// the index already admitted only words the board can make.
type engine struct {
	index *WordIndex
	sink  *SolutionSink
}

// search explores every completion of a partial chain. last is the letter
// the next word must start with, remaining the box letters no chosen word
// has covered yet, and chosen the chain built so far.
//
// Each recursive call gets its own copy of remaining and its own tail of
// chosen, so sibling branches never observe each other's progress.
func (e *engine) search(wordsLeft int, last rune, remaining primitives.LetterSet, chosen Solution) error {
	if wordsLeft == 0 {
		if remaining.IsEmpty() {
			e.sink.Append(chosen)
		}
		return nil
	}

	candidates := e.index.WordsStartingWith(last)
	if len(candidates) == 0 {
		return nil
	}

	for _, w := range candidates {
		// A final word with fewer distinct letters than there are letters
		// left to cover cannot finish the chain, even if every one of its
		// letters were needed.
		if wordsLeft == 1 && remaining.Count() > w.UniqueLetters {
			continue
		}

		next, err := w.At(w.Len() - 1)
		if err != nil {
			return fmt.Errorf("choosing %q: %w", w.Text, err)
		}

		// The full slice expression pins chosen's capacity so the append
		// allocates a fresh backing array instead of sharing one across
		// sibling chains.
		withWord := append(chosen[:len(chosen):len(chosen)], w.Text)
		if err := e.search(wordsLeft-1, next, remaining.Without(w.Text), withWord); err != nil {
			return err
		}
	}

	return nil
}
