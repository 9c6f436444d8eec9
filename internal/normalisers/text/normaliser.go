// Package text flattens extracted page text so that French payroll markers
// can be matched with plain ASCII patterns.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/payslip-drive/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.TextNormaliser = (*Normaliser)(nil)

// Normaliser lowercases text, strips combining diacritical marks and
// collapses whitespace. "Référence  Salarié\n" becomes "reference salarie".
type Normaliser struct{}

// New creates a new text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise implements driven.TextNormaliser.
func (n *Normaliser) Normalise(raw string) string {
	return Normalise(raw)
}

// Normalise is the package-level form of Normaliser.Normalise.
// Lowercasing happens before decomposition so that a second pass is a no-op.
func Normalise(raw string) string {
	if raw == "" {
		return ""
	}
	lowered := strings.ToLower(raw)

	stripped, _, err := transform.String(stripMarks(), lowered)
	if err != nil {
		stripped = lowered
	}

	return strings.Join(strings.Fields(stripped), " ")
}

// stripMarks decomposes to NFD, drops nonspacing marks (category Mn) and
// turns the ASCII information separators into spaces.
// A transform.Transformer is stateful, so a fresh chain is built per call.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), runes.Map(separatorToSpace))
}

// separatorToSpace maps U+001C..U+001F, which some PDF producers emit between
// text runs, to a space. strings.Fields does not split on them.
func separatorToSpace(r rune) rune {
	if r >= '\x1c' && r <= '\x1f' {
		return ' '
	}
	return r
}
