package layout

import (
	"time"

	"github.com/zhubert/aegis/internal/catalog"
)

// SampleMarkdown is the synthetic body shown for text files.
const SampleMarkdown = "# Sample Markdown\n\nThis is a preview of the file content."

// SampleComponent is the source shown for code files.
const SampleComponent = `import React from 'react'

export function Component() {
  return (<div>Hello World</div>)
}`

// SelectedFile is the projection of a catalog entry the preview renders.
type SelectedFile struct {
	ID         string
	Name       string
	FileType   catalog.FileType
	SizeBytes  int64
	Modified   time.Time
	PreviewURI string
	Starred    bool
	Content    string
}

// Project builds the selection for entry, deriving preview content by type.
func Project(entry catalog.FileEntry) SelectedFile {
	sel := SelectedFile{
		ID:         entry.ID,
		Name:       entry.Name,
		FileType:   entry.FileType,
		SizeBytes:  entry.SizeBytes,
		Modified:   entry.Modified,
		PreviewURI: entry.PreviewURI,
		Starred:    entry.Starred,
	}
	switch entry.FileType {
	case catalog.TypeText:
		sel.Content = SampleMarkdown
	case catalog.TypeCode:
		sel.Content = SampleComponent
	}
	return sel
}

// Size renders the selection size for display.
func (s SelectedFile) Size() string { return catalog.FormatSize(s.SizeBytes) }
