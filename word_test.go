package solver

import "testing"

func TestNewWord(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantUnique int
	}{
		{"all distinct", "ADG", 3},
		{"repeated letters", "ADADA", 2},
		{"single repeated letter", "AAA", 1},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWord(tt.text)
			if w.Text != tt.text {
				t.Errorf("Text = %q, want %q", w.Text, tt.text)
			}
			if w.UniqueLetters != tt.wantUnique {
				t.Errorf("UniqueLetters = %d, want %d", w.UniqueLetters, tt.wantUnique)
			}
		})
	}
}

func TestWord_At(t *testing.T) {
	w := NewWord("ADG")

	tests := []struct {
		name    string
		index   int
		want    rune
		wantErr bool
	}{
		{"first", 0, 'A', false},
		{"middle", 1, 'D', false},
		{"last", 2, 'G', false},
		{"negative", -1, 0, true},
		{"past the end", 3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := w.At(tt.index)
			if (err != nil) != tt.wantErr {
				t.Errorf("At(%d) error = %v, wantErr %v", tt.index, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("At(%d) = %c, want %c", tt.index, got, tt.want)
			}
		})
	}
}
