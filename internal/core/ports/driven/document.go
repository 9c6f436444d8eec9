package driven

import "io"

// DocumentReader opens source documents.
type DocumentReader interface {
	// Open parses the document at path. A document that cannot be parsed
	// returns an error.
	Open(path string) (Document, error)
}

// Document is an opened source document. Pages are 1-based.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int

	// PageText extracts the raw text of page n.
	PageText(n int) (string, error)

	// WritePage writes page n as a standalone single-page document.
	WritePage(n int, w io.Writer) error

	// Close releases the underlying file.
	Close() error
}
