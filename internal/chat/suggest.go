package chat

import (
	"strings"

	"github.com/zhubert/aegis/internal/catalog"
)

// SuggestedFiles returns the catalog files an assistant message refers to,
// in catalog order. When no file is named but the text mentions ".pdf", the
// first pdf in the catalog is suggested.
func SuggestedFiles(text string, entries []catalog.FileEntry) []catalog.FileEntry {
	lower := strings.ToLower(text)
	var out []catalog.FileEntry
	for _, e := range entries {
		if e.IsFolder() {
			continue
		}
		if strings.Contains(lower, strings.ToLower(e.Name)) {
			out = append(out, e)
		}
	}
	if len(out) > 0 || !strings.Contains(lower, ".pdf") {
		return out
	}
	for _, e := range entries {
		if e.FileType == catalog.TypePDF {
			return []catalog.FileEntry{e}
		}
	}
	return nil
}
