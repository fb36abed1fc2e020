// Package catalog holds the read-only file catalog the drive browses.
package catalog

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/zhubert/aegis/internal/errors"
)

// Kind distinguishes folders from files.
type Kind int

const (
	KindFile Kind = iota
	KindFolder
)

func (k Kind) String() string {
	if k == KindFolder {
		return "folder"
	}
	return "file"
}

// FileType is the content category of a file. Folders have none.
type FileType string

const (
	TypeNone  FileType = ""
	TypePDF   FileType = "pdf"
	TypeImage FileType = "image"
	TypeJSON  FileType = "json"
	TypeCode  FileType = "code"
	TypeText  FileType = "text"
	TypeOther FileType = "other"
)

// Valid reports whether t is one of the known file types.
func (t FileType) Valid() bool {
	switch t {
	case TypePDF, TypeImage, TypeJSON, TypeCode, TypeText, TypeOther:
		return true
	}
	return false
}

// FileEntry is one node in the catalog. ID determines every other field for
// the lifetime of the catalog.
type FileEntry struct {
	ID         string
	Name       string
	Kind       Kind
	FileType   FileType
	SizeBytes  int64
	PreviewURI string
	Modified   time.Time
	Starred    bool
}

// IsFolder reports whether the entry is a folder.
func (e FileEntry) IsFolder() bool { return e.Kind == KindFolder }

// Ext returns the lower-cased extension of Name without the dot.
func (e FileEntry) Ext() string {
	return strings.TrimPrefix(strings.ToLower(path.Ext(e.Name)), ".")
}

// Catalog is the source of entries the view layer filters.
type Catalog interface {
	// ListAll returns every entry in stable catalog order. Callers own the
	// returned slice.
	ListAll() []FileEntry
}

// Memory is an immutable in-memory catalog.
type Memory struct {
	entries []FileEntry
	byID    map[string]int
}

// NewMemory validates entries and returns a catalog over a copy of them.
func NewMemory(entries []FileEntry) (*Memory, error) {
	m := &Memory{
		entries: make([]FileEntry, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	copy(m.entries, entries)

	for i, e := range m.entries {
		if err := validate(e); err != nil {
			return nil, err
		}
		if _, dup := m.byID[e.ID]; dup {
			return nil, errors.CatalogInvalid(fmt.Sprintf("duplicate id %q", e.ID))
		}
		m.byID[e.ID] = i
	}
	return m, nil
}

func validate(e FileEntry) error {
	switch {
	case e.ID == "":
		return errors.CatalogInvalid(fmt.Sprintf("entry %q has an empty id", e.Name))
	case e.Name == "":
		return errors.CatalogInvalid(fmt.Sprintf("entry %s has an empty name", e.ID))
	case e.SizeBytes < 0:
		return errors.CatalogInvalid(fmt.Sprintf("entry %s has a negative size", e.ID))
	case e.Modified.IsZero():
		return errors.CatalogInvalid(fmt.Sprintf("entry %s has no modified date", e.ID))
	}

	if e.IsFolder() {
		if e.FileType != TypeNone || e.SizeBytes != 0 || e.PreviewURI != "" {
			return errors.CatalogInvalid(fmt.Sprintf("folder %s must not carry a type, size or preview", e.ID))
		}
		return nil
	}
	if !e.FileType.Valid() {
		return errors.CatalogInvalid(fmt.Sprintf("file %s has unknown type %q", e.ID, e.FileType))
	}
	if e.PreviewURI != "" && e.FileType != TypeImage {
		return errors.CatalogInvalid(fmt.Sprintf("file %s: preview uri is only allowed on images", e.ID))
	}
	return nil
}

// ListAll implements Catalog.
func (m *Memory) ListAll() []FileEntry {
	out := make([]FileEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Lookup returns the entry with the given id.
func (m *Memory) Lookup(id string) (FileEntry, error) {
	i, ok := m.byID[id]
	if !ok {
		return FileEntry{}, errors.EntryNotFound(id)
	}
	return m.entries[i], nil
}

// Len returns the number of entries.
func (m *Memory) Len() int { return len(m.entries) }
