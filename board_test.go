package solver

import "testing"

func TestNewBoard(t *testing.T) {
	tests := []struct {
		name    string
		letters string
		wantErr bool
	}{
		{"three letters per wall", "ABCDEFGHIJKL", false},
		{"four letters per wall", "ABCDEFGHIJKLMNOP", false},
		{"one letter per wall", "ABCD", false},
		{"empty", "", true},
		{"not a multiple of four", "ABCDEFGHIJ", true},
		{"lowercase letter", "ABCdEFGHIJKL", true},
		{"non-letter", "ABC1EFGHIJKL", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.letters)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewBoard(%q) error = %v, wantErr %v", tt.letters, err, tt.wantErr)
			}
		})
	}
}

func TestBoard_Contains(t *testing.T) {
	board, err := NewBoard("ABCDEFGHIJKL")
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}

	for _, r := range "ABCDEFGHIJKL" {
		if !board.Contains(r) {
			t.Errorf("Contains(%c) = false, want true", r)
		}
	}
	for _, r := range "MNZa1" {
		if board.Contains(r) {
			t.Errorf("Contains(%c) = true, want false", r)
		}
	}
}

func TestBoard_OnSameWall(t *testing.T) {
	// Walls: ABC / DEF / GHI / JKL.
	board, err := NewBoard("ABCDEFGHIJKL")
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}

	tests := []struct {
		name string
		a, b rune
		want bool
	}{
		{"same wall", 'A', 'B', true},
		{"same wall, last wall", 'J', 'L', true},
		{"same letter", 'A', 'A', true},
		{"different walls", 'A', 'D', false},
		{"different walls, far apart", 'C', 'K', false},
		{"first letter absent", 'Z', 'A', false},
		{"second letter absent", 'A', 'Z', false},
		{"both absent", 'Y', 'Z', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := board.OnSameWall(tt.a, tt.b); got != tt.want {
				t.Errorf("OnSameWall(%c, %c) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := board.OnSameWall(tt.b, tt.a); got != tt.want {
				t.Errorf("OnSameWall(%c, %c) = %v, want %v (not symmetric)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestBoard_CanMakeWord(t *testing.T) {
	// Walls: ABC / DEF / GHI / JKL.
	board, err := NewBoard("ABCDEFGHIJKL")
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}

	tests := []struct {
		name string
		word string
		want bool
	}{
		{"valid word", "ADG", true},
		{"valid longer word", "ADBECFG", true},
		{"zigzag across all walls", "AJDGBKEH", true},
		{"too short", "AD", false},
		{"empty", "", false},
		{"absent letter", "ADZ", false},
		{"lowercase is absent", "aDG", false},
		{"adjacent same wall at start", "ABG", false},
		{"adjacent same wall at end", "ADEG", false},
		{"adjacent same wall in middle", "AGHJ", false},
		{"repeated letter is same wall", "ADDG", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := board.CanMakeWord(tt.word); got != tt.want {
				t.Errorf("CanMakeWord(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestBoard_DuplicateLetterFirstWallWins(t *testing.T) {
	// 'A' appears on wall 0 and wall 1; lookups resolve to wall 0.
	board, err := NewBoard("ABCADEGHIJKL")
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}

	if board.NumLetters() != 11 {
		t.Errorf("NumLetters() = %d, want 11", board.NumLetters())
	}

	if !board.OnSameWall('A', 'B') {
		t.Error("OnSameWall('A', 'B') = false, want true (first occurrence wins)")
	}
	if board.OnSameWall('A', 'D') {
		t.Error("OnSameWall('A', 'D') = true, want false (first occurrence wins)")
	}
}

func TestBoard_Letters(t *testing.T) {
	board, err := NewBoard("ABCDEFGHIJKL")
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}

	letters := board.Letters()
	if letters.Count() != 12 {
		t.Errorf("Count() = %d, want 12", letters.Count())
	}
	if board.NumLetters() != 12 {
		t.Errorf("NumLetters() = %d, want 12", board.NumLetters())
	}

	// Letters() hands out a copy; mutating it must not touch the board.
	letters.Remove('A')
	if !board.Contains('A') {
		t.Error("mutating the Letters() copy changed the board")
	}
}
