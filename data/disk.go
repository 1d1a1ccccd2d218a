// Package data bundles sample scripts into the binary.
package data

import (
	"embed"
	"io/fs"
	"path"
	"slices"
	"strings"
)

const ext = ".json"

//go:embed scripts/*.json
var embedded embed.FS

// FS holds the sample scripts at its root, e.g. "array.json".
var FS = mustSub(embedded, "scripts")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}

	return sub
}

// Names lists the bundled samples without their extension, sorted.
func Names() []string {
	files, err := fs.Glob(FS, "*"+ext)
	if err != nil {
		panic(err)
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.TrimSuffix(path.Base(f), ext))
	}

	slices.Sort(names)

	return names
}

// File maps a sample name to its path inside FS.
func File(name string) string {
	return name + ext
}
