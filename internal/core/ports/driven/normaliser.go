package driven

// TextNormaliser flattens raw page text into a canonical form that the
// classifier can match with plain ASCII patterns.
type TextNormaliser interface {
	// Normalise is pure and total: it never fails and the same input
	// always yields the same output.
	Normalise(raw string) string
}
