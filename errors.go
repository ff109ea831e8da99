package fakefs

import (
	"fmt"
	"io/fs"
)

// Generic file system errors.
// Panics raised by this package carry typed errors that can be tested
// against these sentinels using [errors.Is].
var (
	ErrNotExist = fs.ErrNotExist // ErrNotExist indicates that an entry does not exist.
	ErrInvalid  = fs.ErrInvalid  // ErrInvalid indicates an entry of the wrong kind.
)

// NotFoundError reports that a resolved path has no entry in the index.
// It is raised as a panic: failures in a fixture are hard test-setup
// errors, not recoverable conditions. Call [Tree.Exists] first for
// existence-safe behavior.
type NotFoundError struct {
	Path string // The absolute path that was not found.
}

// Error returns the failure message. The ENOENT marker is part of the
// contract and is matched on by callers.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("ENOENT: no such file or directory, %s", e.Path)
}

// Is reports fs.ErrNotExist compatibility for errors.Is.
func (e *NotFoundError) Is(target error) bool {
	return target == fs.ErrNotExist
}

// WrongKindError reports that an entry exists at the path but is not of
// the kind the operation requires (a file where a directory is needed,
// or the reverse). Like NotFoundError, it is raised as a panic.
type WrongKindError struct {
	Path string // The absolute path of the offending entry.
	Want string // The required kind: "file" or "directory".
}

// Error returns the failure message.
func (e *WrongKindError) Error() string {
	return fmt.Sprintf("entry at %s is not a %s", e.Path, e.Want)
}

// Is reports fs.ErrInvalid compatibility for errors.Is.
func (e *WrongKindError) Is(target error) bool {
	return target == fs.ErrInvalid
}

// newWrongKind builds the panic payload for a kind mismatch.
func newWrongKind(path string, wantDir bool) *WrongKindError {
	want := "file"
	if wantDir {
		want = "directory"
	}
	return &WrongKindError{Path: path, Want: want}
}
