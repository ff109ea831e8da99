// Package fakefs provides an in-memory, hierarchical fake file tree and
// a matching mock filesystem API for testing code that touches the disk.
//
// The package has three layers:
//   - Entries: a closed union of [Directory] (ordered children) and
//     [File] (string content), the data held in the tree.
//   - [Tree]: owns the entry graph below an explicit root path and
//     maintains a flattened absolute-path index plus a files-only index.
//   - [MockFS]: a filesystem-shaped operation surface (Stat, ReadDir,
//     ReadFile, WriteFile, Realpath, Mkdir) backed entirely by the tree,
//     with every call recorded for later assertion.
//
// # Basic Usage
//
// Build a tree and wrap it in a mock filesystem:
//
//	tree := fakefs.NewTree("/project",
//	    fakefs.NewDirectory("src",
//	        fakefs.NewFile("main.txt", "hello"),
//	    ),
//	    fakefs.NewJSONFile("config.json", map[string]bool{"debug": true}),
//	)
//	mfs := fakefs.NewMockFS(tree)
//
// Call mock operations exactly as real filesystem functions would be
// called; paths may be absolute or relative to the configured root, and
// backslash separators are normalized to forward slashes:
//
//	names := mfs.ReadDir("src")          // ["main.txt"]
//	data := mfs.ReadFile("src/main.txt", "utf8")
//	mfs.WriteFile("src/main.txt", "bye", "utf8")
//
// Every operation also has a callback form. The callback runs exactly
// once, synchronously, before the call returns; there is no error-first
// convention and no real deferral:
//
//	mfs.ReadDirAsync("src", func(names []string) { ... })
//
// # Failures
//
// Operations fail hard: a missing path panics with a [*NotFoundError]
// (its message carries the literal ENOENT marker) and a kind mismatch
// panics with a [*WrongKindError]. There are no error returns and no
// error-first callbacks; callers wanting existence-safe behavior check
// [Tree.Exists] first. Both panic payloads satisfy [errors.Is] against
// the fs.ErrNotExist and fs.ErrInvalid sentinels.
//
// # Recording
//
// Every call — including one that panics — is recorded with its
// arguments and result:
//
//	mfs.Recorder().Count(fakefs.OpReadFile) // 1
//	mfs.Recorder().Calls(fakefs.OpWriteFile)
//
// [MockFS.Rebind] swaps the backing tree and resets the record, keeping
// the same binding identity across fixtures.
package fakefs
