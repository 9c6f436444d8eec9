package text

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestNormalise(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"accents", "Référence Salarié", "reference salarie"},
		{"newlines", "Période\nde  paie :\r\n Octobre 2025", "periode de paie : octobre 2025"},
		{"trims", "  M1001  ", "m1001"},
		{"cedilla and circumflex", "Façade Hôtel", "facade hotel"},
		{"non-breaking space", "de\u00a0paie", "de paie"},
		{"information separators", "Référence\x1fSalarié\x1c:\x1dM1001\x1e", "reference salarie : m1001"},
		{"already normalised", "reference salarie m1001", "reference salarie m1001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalise(tt.in))
		})
	}
}

func TestNormalise_Idempotent(t *testing.T) {
	inputs := []string{
		"Référence Salarié: M1001\nPériode de paie : Octobre 2025",
		"ÉCOLE   Noël\tÀ bientôt",
		"İstanbul ǅemal",
		"",
	}

	for _, in := range inputs {
		once := Normalise(in)
		assert.Equal(t, once, Normalise(once), "input %q", in)
	}
}

func TestNormalise_NoCombiningMarks(t *testing.T) {
	out := Normalise("àáâãäåçèéêëìíîïñòóôõöùúûüýÿ ÀÉÎÕÜ")

	for _, r := range out {
		assert.False(t, unicode.Is(unicode.Mn, r), "rune %q is a combining mark", r)
		assert.LessOrEqual(t, r, rune(unicode.MaxASCII), "rune %q is not ASCII", r)
	}
	assert.Equal(t, "aaaaaaceeeeiiiinooooouuuuyy aeiou", out)
}

func TestNormaliser_Interface(t *testing.T) {
	n := New()
	assert.Equal(t, "reference salarie: m1001 periode de paie : octobre 2025",
		n.Normalise("Référence Salarié: M1001\nPériode de paie : Octobre 2025"))
}
