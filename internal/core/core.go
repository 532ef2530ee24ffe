package core

import "time"

// FileHandle represents a local file resolved and loaded for upload.
type FileHandle struct {
	Path     string // Path as supplied on the command line
	BaseName string // Final path segment, sent as the multipart filename
	Contents []byte // Full file contents, read eagerly
}

// Size returns the number of bytes loaded from disk.
func (f FileHandle) Size() int {
	return len(f.Contents)
}

// UploadResult holds the download link returned by the file host.
type UploadResult struct {
	DownloadURL string
}

// ShortenResult holds the alias returned by the shortening service.
type ShortenResult struct {
	ShortURL string
}

// Run identifies a single share invocation in log output.
type Run struct {
	ID      string
	Started time.Time
}
