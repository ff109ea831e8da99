package fakefs_test

import (
	"fmt"
	"sort"

	fakefs "github.com/balinomad/go-fakefs"
)

// Example demonstrates basic fakefs usage.
func Example() {
	tree := fakefs.NewTree("/project",
		fakefs.NewFile("hello.txt", "Hello, World!"),
	)
	mfs := fakefs.NewMockFS(tree)

	fmt.Println(mfs.ReadFile("hello.txt", "utf8"))
	// Output: Hello, World!
}

// ExampleNewTree demonstrates seeding a tree with nested entries.
func ExampleNewTree() {
	tree := fakefs.NewTree("/project",
		fakefs.NewFile("readme.txt", "docs"),
		fakefs.NewDirectory("src",
			fakefs.NewFile("main.txt", "code"),
		),
	)
	mfs := fakefs.NewMockFS(tree)

	for _, name := range mfs.ReadDir("/project") {
		fmt.Printf("%s (dir: %v)\n", name, mfs.Stat(name).IsDirectory())
	}
	// Output:
	// readme.txt (dir: false)
	// src (dir: true)
}

// ExampleNewJSONFile demonstrates the one-time JSON coercion at construction.
func ExampleNewJSONFile() {
	f := fakefs.NewJSONFile("config.json", map[string]int{"k": 1})
	fmt.Println(f.Content())

	// Later replacements are stored verbatim, never re-encoded.
	f.SetContent("plain text")
	fmt.Println(f.Content())
	// Output:
	// {"k":1}
	// plain text
}

// ExampleMockFS_ReadDirAsync demonstrates the callback form of an
// operation. The callback runs synchronously, before the call returns.
func ExampleMockFS_ReadDirAsync() {
	mfs := fakefs.NewMockFS(fakefs.NewTree("/project",
		fakefs.NewDirectory("src",
			fakefs.NewFile("a.txt", ""),
			fakefs.NewFile("b.txt", ""),
		),
	))

	mfs.ReadDirAsync("src", func(names []string) {
		fmt.Println(names)
	})
	fmt.Println("after")
	// Output:
	// [a.txt b.txt]
	// after
}

// ExampleMockFS_Recorder demonstrates inspecting recorded calls.
func ExampleMockFS_Recorder() {
	mfs := fakefs.NewMockFS(fakefs.NewTree("/project",
		fakefs.NewFile("a.txt", "one"),
	))

	mfs.ReadFile("a.txt", "utf8")
	mfs.WriteFile("a.txt", "two", "utf8")
	mfs.ReadFile("a.txt", "utf8")

	rec := mfs.Recorder()
	fmt.Println("reads:", rec.Count(fakefs.OpReadFile))
	fmt.Println("writes:", rec.Count(fakefs.OpWriteFile))
	fmt.Println("last read:", rec.Calls(fakefs.OpReadFile)[1].Result)
	// Output:
	// reads: 2
	// writes: 1
	// last read: two
}

// ExampleTree_ListFiles demonstrates the files-only index view.
func ExampleTree_ListFiles() {
	tree := fakefs.NewTree("/project",
		fakefs.NewDirectory("src",
			fakefs.NewFile("main.txt", "code"),
		),
		fakefs.NewFile("readme.txt", "docs"),
	)

	var paths []string
	for p := range tree.ListFiles() {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		fmt.Println(p)
	}
	// Output:
	// /project/readme.txt
	// /project/src/main.txt
}
