// ABOUTME: Fixed extension allow-list for uploads, matched case-insensitively
// ABOUTME: A file without an extension is never allowed

package staging

import (
	"path/filepath"
	"strings"
)

// AllowedExtensions lists the upload types the server accepts.
var AllowedExtensions = []string{".txt", ".md", ".py", ".js", ".html", ".css", ".json", ".pdf", ".xlsx", ".xls", ".csv"}

var allowed = func() map[string]struct{} {
	m := make(map[string]struct{}, len(AllowedExtensions))
	for _, ext := range AllowedExtensions {
		m[ext] = struct{}{}
	}
	return m
}()

// Allowed reports whether name has an accepted extension.
func Allowed(name string) bool {
	_, ok := allowed[strings.ToLower(filepath.Ext(name))]
	return ok
}
