// Package templates provides the embedded bundle skeleton and the helpers
// that render it into a host project.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	oerrors "github.com/bundlesmith/cli/internal/errors"
)

//go:embed all:skeleton
var skeletonFS embed.FS

const skeletonRoot = "skeleton"

// Embedded returns the built-in skeleton rooted at its top directory.
func Embedded() fs.FS {
	sub, err := fs.Sub(skeletonFS, skeletonRoot)
	if err != nil {
		// skeletonRoot is a compile-time embed path.
		panic(err)
	}
	return sub
}

// Source returns the skeleton to scaffold from.
// An empty dir selects the embedded skeleton. Otherwise dir is opened
// read-only on osFs and must exist. Relative dirs are made absolute first.
func Source(osFs afero.Fs, dir string) (fs.FS, error) {
	if dir == "" {
		return Embedded(), nil
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, oerrors.NewFilesystemError("resolving template directory", dir, err)
	}

	ok, err := afero.DirExists(osFs, dir)
	if err != nil {
		return nil, oerrors.NewFilesystemError("checking template directory", dir, err)
	}
	if !ok {
		return nil, oerrors.NewNotFoundError(
			"template directory does not exist",
			dir,
			"Set templateDir to a directory laid out like the built-in skeleton, or unset it",
		)
	}

	return afero.NewIOFS(afero.NewReadOnlyFs(afero.NewBasePathFs(osFs, dir))), nil
}

// ListTemplateFiles returns every file path in fsys, sorted.
func ListTemplateFiles(fsys fs.FS) ([]string, error) {
	var files []string

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, path.Clean(p))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	sort.Strings(files)
	return files, nil
}
