package input

import (
	"fmt"
	"os"
	"path/filepath"

	"fileshare/internal/core"
)

// Resolve validates that path names an existing regular file and loads it
// into memory. Symlinks are followed, so a link to a file is accepted.
func Resolve(path string) (core.FileHandle, error) {
	if path == "" {
		return core.FileHandle{}, &core.Error{Kind: core.KindInvalidInput, Op: "resolve", Path: path}
	}

	info, err := os.Stat(path)
	if err != nil {
		return core.FileHandle{}, &core.Error{Kind: core.KindInvalidInput, Op: "resolve", Path: path}
	}
	if !info.Mode().IsRegular() {
		return core.FileHandle{}, &core.Error{Kind: core.KindInvalidInput, Op: "resolve", Path: path}
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return core.FileHandle{}, &core.Error{
			Kind: core.KindInvalidInput,
			Op:   "resolve",
			Path: path,
			Err:  fmt.Errorf("failed to read file: %w", err),
		}
	}

	return core.FileHandle{
		Path:     path,
		BaseName: filepath.Base(path),
		Contents: contents,
	}, nil
}
