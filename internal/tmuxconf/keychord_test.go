package tmuxconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeChord(t *testing.T) {
	tests := []struct {
		name  string
		chord string
		want  string
	}{
		{"plain letter unchanged", "a", "a"},
		{"upper letter without ctrl kept", "A", "A"},
		{"ctrl letter folds case", "C-A", "C-a"},
		{"lowercase modifier upcased", "c-a", "C-a"},
		{"meta chord", "M-x", "M-x"},
		{"modifier order canonical", "M-C-x", "C-M-x"},
		{"duplicate modifier dropped", "C-C-a", "C-a"},
		{"all three modifiers", "S-M-C-Left", "C-M-S-left"},
		{"named key lowered", "Enter", "enter"},
		{"named key with modifier", "C-PageUp", "C-pageup"},
		{"function key", "F5", "f5"},
		{"empty", "", ""},
		{"bare dash", "-", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeChord(tt.chord))
		})
	}
}

func TestNormalizeChordEquivalence(t *testing.T) {
	// The point of normalization: different spellings of the same chord
	// must collide.
	assert.Equal(t, NormalizeChord("C-a"), NormalizeChord("c-a"))
	assert.Equal(t, NormalizeChord("C-M-x"), NormalizeChord("M-C-x"))
	assert.NotEqual(t, NormalizeChord("a"), NormalizeChord("A"))
}
