package fakefs

import (
	"path"
	"strings"
	"sync"
)

// Tree is the single source of truth for a fake file hierarchy.
//
// It owns the entry graph below an implicit root directory and maintains
// two derived indices: absolute path to every Entry, and absolute path to
// File entries only. The indices are caches over the tree, built
// incrementally as entries are added and never pruned; the tree itself is
// append-only, so the only way to reset state is to build a new Tree.
type Tree struct {
	rootPath string
	root     *Directory
	mu       sync.RWMutex
	index    map[string]Entry
	files    map[string]*File
}

// NewTree creates a tree rooted at the given path, optionally seeded
// with initial entries grafted under the root directory.
//
// The root path is an explicit parameter so fixtures stay hermetic; it
// is never derived from the working directory or other ambient state.
func NewTree(root string, entries ...Entry) *Tree {
	rootPath := path.Clean(normalizeSeparators(root))
	rootDir := NewDirectory(path.Base(rootPath))

	t := &Tree{
		rootPath: rootPath,
		root:     rootDir,
		index:    map[string]Entry{rootPath: rootDir},
		files:    map[string]*File{},
	}
	t.Add(entries...)

	return t
}

// Root returns the absolute path of the implicit root directory.
func (t *Tree) Root() string {
	return t.rootPath
}

// Resolve joins name against the root path and returns the resulting
// absolute path. Backslash separators are normalized to forward slashes
// first. Resolve is pure: it succeeds whether or not anything exists at
// the path, and its result depends only on its input.
func (t *Tree) Resolve(name string) string {
	clean := normalizeSeparators(name)
	if path.IsAbs(clean) {
		return path.Clean(clean)
	}
	return path.Join(t.rootPath, clean)
}

// Add grafts entries as direct children of the root directory and
// flattens each grafted subtree into the indices, depth-first.
//
// Paths are first-write-wins: an entry whose absolute path is already
// indexed is skipped, and a duplicate grafted at root level is not
// attached to the tree either, so the tree and the index never diverge
// at the root. Entries nested inside a caller-built directory remain
// children of their parent but never displace an indexed entry.
func (t *Tree) Add(entries ...Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, entry := range entries {
		if entry == nil {
			continue
		}
		abs := t.Resolve(entry.Name())
		if _, taken := t.index[abs]; taken {
			continue
		}
		t.root.AddChild(entry)
		t.flatten(abs, entry)
	}
}

// flatten inserts entry at abs and recursively walks directory children.
// Caller must hold the write lock.
func (t *Tree) flatten(abs string, entry Entry) {
	if _, taken := t.index[abs]; !taken {
		t.index[abs] = entry
		if f, ok := entry.(*File); ok {
			t.files[abs] = f
		}
	}

	if d, ok := entry.(*Directory); ok {
		for _, child := range d.Children() {
			t.flatten(path.Join(abs, normalizeSeparators(child.Name())), child)
		}
	}
}

// Exists resolves name and reports index membership. It never fails.
func (t *Tree) Exists(name string) bool {
	abs := t.Resolve(name)

	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.index[abs]
	return ok
}

// Get resolves name and returns the indexed entry.
// It panics with a *NotFoundError if no entry exists at the path.
func (t *Tree) Get(name string) Entry {
	abs := t.Resolve(name)

	t.mu.RLock()
	defer t.mu.RUnlock()

	entry, ok := t.index[abs]
	if !ok {
		panic(&NotFoundError{Path: abs})
	}
	return entry
}

// ListAll returns a snapshot of the full path-to-entry index.
func (t *Tree) ListAll() map[string]Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]Entry, len(t.index))
	for p, e := range t.index {
		out[p] = e
	}
	return out
}

// ListFiles returns a snapshot of the files-only index.
func (t *Tree) ListFiles() map[string]*File {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]*File, len(t.files))
	for p, f := range t.files {
		out[p] = f
	}
	return out
}

// normalizeSeparators canonicalizes platform separators to forward slashes.
func normalizeSeparators(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
