package fakefs

import (
	"io/fs"
	"time"
)

// FileInfo describes a tree entry the way a real filesystem stat would.
// It implements fs.FileInfo and fs.DirEntry so results from the mock
// drop into code typed against [io/fs].
//
// The fake tree carries no permissions or timestamps; Mode reports a
// conventional 0644/0755 and ModTime the zero time.
type FileInfo struct {
	name string
	size int64
	dir  bool
}

// Ensure interface implementations.
var (
	_ fs.FileInfo = (*FileInfo)(nil)
	_ fs.DirEntry = (*FileInfo)(nil)
)

// newFileInfo builds a FileInfo snapshot for the given entry.
func newFileInfo(entry Entry) *FileInfo {
	fi := &FileInfo{
		name: entry.Name(),
		dir:  entry.IsDirectory(),
	}
	if f, ok := entry.(*File); ok {
		fi.size = int64(len(f.Content()))
	}
	return fi
}

// Name returns the entry's base name, not its full path.
func (fi *FileInfo) Name() string {
	return fi.name
}

// Size returns the content length in bytes for files; zero for directories.
func (fi *FileInfo) Size() int64 {
	if fi.dir {
		return 0
	}
	return fi.size
}

// Mode returns a conventional mode for the entry kind.
func (fi *FileInfo) Mode() fs.FileMode {
	if fi.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}

// ModTime always returns the zero time; the fake tree keeps no timestamps.
func (fi *FileInfo) ModTime() time.Time {
	return time.Time{}
}

// IsDir reports whether the entry is a directory.
func (fi *FileInfo) IsDir() bool {
	return fi.dir
}

// IsDirectory is an alias for IsDir matching the Entry capability query.
func (fi *FileInfo) IsDirectory() bool {
	return fi.dir
}

// Sys always returns nil for a FileInfo.
func (fi *FileInfo) Sys() any {
	return nil
}

// Type returns the type bits for the entry.
func (fi *FileInfo) Type() fs.FileMode {
	return fi.Mode().Type()
}

// Info returns the entry as an fs.FileInfo and nil for an error.
func (fi *FileInfo) Info() (fs.FileInfo, error) {
	return fi, nil
}
