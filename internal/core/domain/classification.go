package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SnippetLength is the maximum number of characters kept from an
// unmatched page for diagnostics.
const SnippetLength = 100

// PayslipExtension is the extension of every payslip file.
const PayslipExtension = ".pdf"

var (
	referencePattern = regexp.MustCompile(`reference salarie\s*[:.]?\s*([a-z0-9]+)`)
	periodPattern    = regexp.MustCompile(`periode de paie\s*[:.]?\s*([a-z]+)\s+(\d{4})`)
)

// Classification is the result of inspecting the normalised text of one page.
//
// When Matched is true, Reference, Month and Year are set and Snippet is empty.
// Otherwise only Snippet is set.
type Classification struct {
	Matched   bool
	Reference string
	Month     string
	Year      string
	Snippet   string
}

// Classify looks for an employee reference and a pay period in normalised text.
// Both markers must be present for the page to match. Month and year are
// accepted verbatim, without calendar validation.
func Classify(normalised string) Classification {
	ref := referencePattern.FindStringSubmatch(normalised)
	period := periodPattern.FindStringSubmatch(normalised)
	if ref == nil || period == nil {
		return Classification{Snippet: Snippet(normalised)}
	}
	return Classification{
		Matched:   true,
		Reference: ref[1],
		Month:     period[1],
		Year:      period[2],
	}
}

// Filename returns the payslip filename, e.g. "M1001_Octobre_2025.pdf".
// It returns an empty string for an unmatched classification.
func (c Classification) Filename() string {
	if !c.Matched {
		return ""
	}
	return fmt.Sprintf("%s_%s_%s%s",
		strings.ToUpper(c.Reference), capitalise(c.Month), c.Year, PayslipExtension)
}

// Snippet truncates text to at most SnippetLength runes.
func Snippet(text string) string {
	if utf8.RuneCountInString(text) <= SnippetLength {
		return text
	}
	return string([]rune(text)[:SnippetLength])
}

// EmployeeKey returns the remote folder name for a payslip filename:
// everything before the first underscore, or the whole name when there is none.
func EmployeeKey(filename string) string {
	key, _, _ := strings.Cut(filename, "_")
	return key
}

func capitalise(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
