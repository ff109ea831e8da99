package fakefs

import (
	"encoding/json"
	"fmt"
)

// Entry is a node in the fake file tree: either a *Directory or a *File.
// The union is closed; no other implementations exist.
type Entry interface {
	// Name returns the entry's own name, not its path.
	Name() string

	// IsFile reports whether the entry is a file.
	IsFile() bool

	// IsDirectory reports whether the entry is a directory.
	IsDirectory() bool

	// entry restricts implementations to this package.
	entry()
}

// Ensure interface implementations.
var (
	_ Entry = (*Directory)(nil)
	_ Entry = (*File)(nil)
)

// Directory is a named entry holding an ordered sequence of children.
// Child order is insertion order and is preserved by all views.
type Directory struct {
	name     string
	children []Entry
}

// NewDirectory creates a directory with zero or more initial children.
func NewDirectory(name string, children ...Entry) *Directory {
	return &Directory{
		name:     name,
		children: children,
	}
}

// Name returns the directory's name.
func (d *Directory) Name() string { return d.name }

// IsFile always returns false for a directory.
func (d *Directory) IsFile() bool { return false }

// IsDirectory always returns true for a directory.
func (d *Directory) IsDirectory() bool { return true }

// Children returns the live child sequence in insertion order.
// The returned slice is the directory's own backing store; callers
// normally treat it as read-only and grow it through AddChild.
func (d *Directory) Children() []Entry {
	return d.children
}

// AddChild appends entries to the child sequence in place and returns
// the directory to allow chaining.
func (d *Directory) AddChild(entries ...Entry) *Directory {
	d.children = append(d.children, entries...)
	return d
}

func (d *Directory) entry() {}

// File is a named entry holding string content.
type File struct {
	name    string
	content string
}

// NewFile creates a file storing content verbatim.
// Use an empty string for a file with no content.
func NewFile(name, content string) *File {
	return &File{
		name:    name,
		content: content,
	}
}

// NewJSONFile creates a file whose content is the compact JSON encoding
// of v, serialized exactly once at construction. Later calls to
// SetContent store raw strings and never re-apply this coercion.
//
// It panics if v cannot be marshaled; construction happens in fixture
// code where a bad value is a hard test-setup error.
func NewJSONFile(name string, v any) *File {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("fakefs: cannot encode content for %q: %v", name, err))
	}
	return &File{
		name:    name,
		content: string(data),
	}
}

// Name returns the file's name.
func (f *File) Name() string { return f.name }

// IsFile always returns true for a file.
func (f *File) IsFile() bool { return true }

// IsDirectory always returns false for a file.
func (f *File) IsDirectory() bool { return false }

// Content returns the current content.
func (f *File) Content() string { return f.content }

// SetContent replaces the content with s, stored verbatim.
// JSON coercion applies only at construction, never here.
func (f *File) SetContent(s string) {
	f.content = s
}

func (f *File) entry() {}
