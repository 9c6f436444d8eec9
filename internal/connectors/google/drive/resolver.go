package drive

import "strings"

// FolderURL returns the web URL of a Drive folder.
func FolderURL(id string) string {
	if id == "" {
		return ""
	}
	return "https://drive.google.com/drive/folders/" + id
}

// FileURL returns the web URL of a Drive file.
func FileURL(id string) string {
	if id == "" {
		return ""
	}
	return "https://drive.google.com/file/d/" + id + "/view"
}

// ParseFolderID accepts either a bare folder ID or a folder URL as copied
// from the browser address bar, and returns the ID.
// E.g. "https://drive.google.com/drive/folders/1A2B3C?usp=sharing" -> "1A2B3C".
func ParseFolderID(s string) string {
	s = strings.TrimSpace(s)
	const marker = "/folders/"
	i := strings.Index(s, marker)
	if i < 0 {
		return s
	}
	id := s[i+len(marker):]
	if j := strings.IndexAny(id, "/?#"); j >= 0 {
		id = id[:j]
	}
	return id
}
