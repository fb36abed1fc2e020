package catalog

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/aegis/internal/errors"
)

// fileEntryYAML is the on-disk shape of one catalog entry:
//
//	- id: "3"
//	  name: project-plan.pdf
//	  type: pdf
//	  size: 2048000
//	  modified: 2025-12-25
//	- id: "1"
//	  name: Documents
//	  folder: true
//	  modified: 2025-12-20
type fileEntryYAML struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Folder   bool   `yaml:"folder"`
	Type     string `yaml:"type"`
	Size     int64  `yaml:"size"`
	Preview  string `yaml:"preview"`
	Modified string `yaml:"modified"`
	Starred  bool   `yaml:"starred"`
}

type catalogYAML struct {
	Files []fileEntryYAML `yaml:"files"`
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.CatalogNotFound(path)
	}
	if err != nil {
		return nil, errors.E(errors.Op("catalog.Load"), errors.KindIO, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Memory, error) {
	var doc catalogYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.E(errors.Op("catalog.Parse"), errors.KindInvalid, err)
	}

	entries := make([]FileEntry, 0, len(doc.Files))
	for _, f := range doc.Files {
		modified, err := time.Parse("2006-01-02", f.Modified)
		if err != nil {
			return nil, errors.CatalogInvalid(fmt.Sprintf("entry %s: modified %q is not YYYY-MM-DD", f.ID, f.Modified))
		}
		e := FileEntry{
			ID:         f.ID,
			Name:       f.Name,
			Kind:       KindFile,
			FileType:   FileType(f.Type),
			SizeBytes:  f.Size,
			PreviewURI: f.Preview,
			Modified:   modified,
			Starred:    f.Starred,
		}
		if f.Folder {
			e.Kind = KindFolder
		}
		entries = append(entries, e)
	}
	return NewMemory(entries)
}
