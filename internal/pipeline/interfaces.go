package pipeline

import (
	"context"

	"fileshare/internal/core"
)

// FileResolver validates a path and loads the file it names
type FileResolver interface {
	// Resolve returns the loaded file or an InvalidInput error
	Resolve(path string) (core.FileHandle, error)
}

// Uploader stores a file on the remote host
type Uploader interface {
	// Upload sends the file and returns its download link
	Upload(ctx context.Context, fh core.FileHandle) (core.UploadResult, error)
}

// Shortener turns a long URL into a short alias
type Shortener interface {
	Shorten(ctx context.Context, downloadURL string) (core.ShortenResult, error)
}

// ResolverFunc adapts a plain function to FileResolver
type ResolverFunc func(path string) (core.FileHandle, error)

// Resolve calls f(path)
func (f ResolverFunc) Resolve(path string) (core.FileHandle, error) {
	return f(path)
}
