package solver

import (
	"strings"
	"sync"
)

// Solution is an ordered chain of words that solves a puzzle: each word
// starts with the last letter of the word before it, and together they
// cover every letter of the box.
type Solution []string

// String renders the chain space-joined, e.g. "PILGRIM MAJESTY".
func (s Solution) String() string {
	return strings.Join(s, " ")
}

// SolutionSink collects solutions from concurrent search branches.
//
// The set of collected solutions is deterministic for a given puzzle and
// dictionary; their order depends on goroutine scheduling and is not.
type SolutionSink struct {
	mu        sync.Mutex
	solutions []Solution
}

// Append adds a completed solution. Safe for concurrent use; no solution is
// lost or duplicated, and the sink holds exactly one entry per call.
func (s *SolutionSink) Append(sol Solution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.solutions = append(s.solutions, sol)
}

// Len returns the number of solutions collected so far.
func (s *SolutionSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.solutions)
}

// Drain removes and returns every collected solution, in append order.
// It is meant to be called once, after all search branches have finished.
func (s *SolutionSink) Drain() []Solution {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.solutions
	s.solutions = nil
	return out
}
