// Package pdfdoc opens PDF payroll documents. Page structure and single-page
// output use pdfcpu; page text extraction uses ledongthuc/pdf.
package pdfdoc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	textpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/custodia-labs/payslip-drive/internal/core/ports/driven"
	"github.com/custodia-labs/payslip-drive/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

var disableConfigDir sync.Once

// Reader opens PDF files from the local file system.
type Reader struct {
	conf *model.Configuration
}

// NewReader creates a PDF reader with relaxed validation, so that documents
// produced by payroll software with minor syntax defects still open.
func NewReader() *Reader {
	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Reader{conf: conf}
}

// Open reads and validates the whole document.
func (r *Reader) Open(path string) (driven.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), r.conf)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	doc := &Document{ctx: ctx}

	// Text extraction is independent of page structure: a document whose
	// text layer cannot be read still splits, every page classifying as empty.
	text, err := openText(data)
	if err != nil {
		logger.Warn("Text layer of %s unreadable: %v", path, err)
		doc.textErr = err
	} else {
		doc.text = text
	}

	logger.Debug("Opened %s: %d pages", path, ctx.PageCount)
	return doc, nil
}

// Document is an opened PDF. Pages are 1-based.
type Document struct {
	ctx     *model.Context
	text    *textpdf.Reader
	textErr error
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// PageText extracts the plain text of page n.
func (d *Document) PageText(n int) (text string, err error) {
	if err := d.checkPage(n); err != nil {
		return "", err
	}
	if d.textErr != nil {
		return "", d.textErr
	}

	// ledongthuc/pdf panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("extract text of page %d: %v", n, r)
		}
	}()

	page := d.text.Page(n)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

// WritePage writes page n to w as a standalone single-page PDF.
func (d *Document) WritePage(n int, w io.Writer) error {
	if err := d.checkPage(n); err != nil {
		return err
	}
	r, err := api.ExtractPage(d.ctx, n)
	if err != nil {
		return fmt.Errorf("extract page %d: %w", n, err)
	}
	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("write page %d: %w", n, err)
	}
	return nil
}

// Close releases the document. The file is fully read on Open, so there is
// nothing to close on disk.
func (d *Document) Close() error {
	d.text = nil
	return nil
}

func (d *Document) checkPage(n int) error {
	if n < 1 || n > d.ctx.PageCount {
		return fmt.Errorf("page %d out of range 1..%d", n, d.ctx.PageCount)
	}
	return nil
}

func openText(data []byte) (r *textpdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r, err = nil, fmt.Errorf("open text layer: %v", rec)
		}
	}()
	return textpdf.NewReader(bytes.NewReader(data), int64(len(data)))
}
