package drive

import (
	"fmt"
	"strings"
)

// MimeTypeFolder is the MIME type Drive uses for folders.
const MimeTypeFolder = "application/vnd.google-apps.folder"

// MimeTypePDF is the MIME type of uploaded payslips.
const MimeTypePDF = "application/pdf"

var queryEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// escapeQuery escapes a value for use inside a single-quoted Drive query string.
func escapeQuery(s string) string {
	return queryEscaper.Replace(s)
}

// FolderQuery builds the Drive search query for a non-trashed folder
// called name directly under parentID.
func FolderQuery(name, parentID string) string {
	return fmt.Sprintf(
		"name = '%s' and '%s' in parents and mimeType = '%s' and trashed = false",
		escapeQuery(name), escapeQuery(parentID), MimeTypeFolder,
	)
}
