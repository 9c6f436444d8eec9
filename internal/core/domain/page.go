package domain

// Page is one page of a source document.
type Page struct {
	// Number is the 1-based page index.
	Number int

	// Text is the raw extracted text. It may be empty.
	Text string
}
