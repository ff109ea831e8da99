package fakefs

import (
	"sync"
)

// MockFS exposes an operation surface shaped like a real filesystem
// API, backed entirely by a [Tree] and recording every call.
//
// Each operation exists in two forms: a synchronous one that returns
// its result, and a distinctly named *Async one that passes the result
// to a trailing callback. The callback forms are not deferred: they run
// to completion and invoke the callback exactly once before returning,
// with no error-first convention. Failures panic at the point of
// violation, before the callback would ever run, identically to the
// synchronous forms (see [NotFoundError] and [WrongKindError]).
//
// Every call is recorded — arguments, call count, and the value
// returned or passed to the callback — and the record is inspectable
// through Recorder. A call that panics is recorded with a nil result.
type MockFS struct {
	mu   sync.RWMutex
	tree *Tree
	rec  *Recorder
}

// NewMockFS binds a mock filesystem to one tree instance.
func NewMockFS(tree *Tree) *MockFS {
	return &MockFS{
		tree: tree,
		rec:  NewRecorder(),
	}
}

// Tree returns the currently bound tree.
func (m *MockFS) Tree() *Tree {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tree
}

// Recorder returns the invocation record for assertions.
func (m *MockFS) Recorder() *Recorder {
	return m.rec
}

// Rebind swaps the backing tree while keeping the same binding
// identity, and resets all recorded calls. Useful for pointing the
// binding at a fresh fixture mid-test.
func (m *MockFS) Rebind(tree *Tree) {
	m.mu.Lock()
	m.tree = tree
	m.mu.Unlock()

	m.rec.Reset()
}

// Stat returns file information for the entry at name.
// It panics with a *NotFoundError if the path is absent.
func (m *MockFS) Stat(name string) *FileInfo {
	entry := m.get(OpStat, []any{name}, name)
	fi := newFileInfo(entry)
	m.rec.Record(OpStat, []any{name}, fi)
	return fi
}

// StatAsync is the callback form of Stat.
func (m *MockFS) StatAsync(name string, fn func(*FileInfo)) {
	fn(m.Stat(name))
}

// ReadDir returns the direct child names of the directory at name, in
// insertion order. Names are bare entry names, not full paths.
// It panics with a *NotFoundError if the path is absent, or a
// *WrongKindError if the entry is not a directory.
func (m *MockFS) ReadDir(name string) []string {
	args := []any{name}
	entry := m.get(OpReadDir, args, name)

	dir, ok := entry.(*Directory)
	if !ok {
		m.rec.Record(OpReadDir, args, nil)
		panic(newWrongKind(m.Tree().Resolve(name), true))
	}

	children := dir.Children()
	names := make([]string, len(children))
	for i, child := range children {
		names[i] = child.Name()
	}

	m.rec.Record(OpReadDir, args, names)
	return names
}

// ReadDirAsync is the callback form of ReadDir.
func (m *MockFS) ReadDirAsync(name string, fn func([]string)) {
	fn(m.ReadDir(name))
}

// Realpath resolves name to an absolute path. It performs no existence
// check and never fails; identical input yields identical output
// regardless of tree contents.
func (m *MockFS) Realpath(name string) string {
	abs := m.Tree().Resolve(name)
	m.rec.Record(OpRealpath, []any{name}, abs)
	return abs
}

// RealpathAsync is the callback form of Realpath.
func (m *MockFS) RealpathAsync(name string, fn func(string)) {
	fn(m.Realpath(name))
}

// ReadFile returns the current content of the file at name, exactly as
// stored. The encoding argument is accepted for API fidelity and
// ignored. It panics with a *NotFoundError if the path is absent, or a
// *WrongKindError if the entry is not a file.
func (m *MockFS) ReadFile(name, encoding string) string {
	args := []any{name, encoding}
	entry := m.get(OpReadFile, args, name)

	f, ok := entry.(*File)
	if !ok {
		m.rec.Record(OpReadFile, args, nil)
		panic(newWrongKind(m.Tree().Resolve(name), false))
	}

	content := f.Content()
	m.rec.Record(OpReadFile, args, content)
	return content
}

// ReadFileAsync is the callback form of ReadFile.
func (m *MockFS) ReadFileAsync(name, encoding string, fn func(string)) {
	fn(m.ReadFile(name, encoding))
}

// WriteFile overwrites the content of the file at name with data. The
// encoding argument is accepted for API fidelity and ignored. It panics
// with a *NotFoundError if the path is absent, or a *WrongKindError if
// the entry is not a file.
func (m *MockFS) WriteFile(name, data, encoding string) {
	args := []any{name, data, encoding}
	entry := m.get(OpWriteFile, args, name)

	f, ok := entry.(*File)
	if !ok {
		m.rec.Record(OpWriteFile, args, nil)
		panic(newWrongKind(m.Tree().Resolve(name), false))
	}

	f.SetContent(data)
	m.rec.Record(OpWriteFile, args, nil)
}

// WriteFileAsync is the callback form of WriteFile. The callback takes
// no payload: the underlying mutation yields nothing usable.
func (m *MockFS) WriteFileAsync(name, data, encoding string, fn func()) {
	m.WriteFile(name, data, encoding)
	fn()
}

// Mkdir is deliberately a no-op: the call is recorded but the tree is
// never mutated. It never fails.
func (m *MockFS) Mkdir(name string) {
	m.rec.Record(OpMkdir, []any{name}, nil)
}

// MkdirAsync is the callback form of Mkdir.
func (m *MockFS) MkdirAsync(name string, fn func()) {
	m.Mkdir(name)
	fn()
}

// get looks up name in the bound tree, recording the failed call before
// panicking when the path is absent.
func (m *MockFS) get(op Operation, args []any, name string) Entry {
	t := m.Tree()
	abs := t.Resolve(name)
	if !t.Exists(name) {
		m.rec.Record(op, args, nil)
		panic(&NotFoundError{Path: abs})
	}
	return t.Get(name)
}
