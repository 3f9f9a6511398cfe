// Package internal prepares raw dictionary sources for the solver's word
// index: it owns line splitting and normalization so the index can assume
// clean uppercase entries.
package internal

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// Words returns a lazy stream of dictionary entries read from r, one per
// line, trimmed and uppercased. Blank lines and '#' comment lines are
// skipped.
//
// The returned func reports any read error once the stream has been
// consumed, following the bufio.Scanner Err convention.
func Words(r io.Reader) (iter.Seq[string], func() error) {
	scanner := bufio.NewScanner(r)

	seq := func(yield func(string) bool) {
		for scanner.Scan() {
			word := strings.ToUpper(strings.TrimSpace(scanner.Text()))
			if word == "" || strings.HasPrefix(word, "#") {
				continue
			}
			if !yield(word) {
				return
			}
		}
	}

	return seq, scanner.Err
}

// WordList returns a lazy stream over an in-memory word list, normalized the
// same way as Words.
func WordList(words []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, word := range words {
			word = strings.ToUpper(strings.TrimSpace(word))
			if word == "" {
				continue
			}
			if !yield(word) {
				return
			}
		}
	}
}
