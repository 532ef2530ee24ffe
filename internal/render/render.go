package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"fileshare/internal/core"

	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

// Reporter writes the outcome of a share run. The short URL is the only
// thing ever written to stdout.
type Reporter struct {
	stdout   io.Writer
	stderr   io.Writer
	renderer *lipgloss.Renderer
}

// NewReporter creates a reporter. Colour is decided from stderr, so piping
// stderr to a file yields plain text.
func NewReporter(stdout, stderr io.Writer) *Reporter {
	return &Reporter{
		stdout:   stdout,
		stderr:   stderr,
		renderer: lipgloss.NewRenderer(stderr),
	}
}

// Success prints the short URL on its own line.
func (r *Reporter) Success(result core.ShortenResult) error {
	_, err := fmt.Fprintln(r.stdout, result.ShortURL)
	return err
}

// Failure prints a one-line diagnostic naming the failed operation and
// returns the process exit code.
func (r *Reporter) Failure(err error) int {
	line := errorStyle.Renderer(r.renderer).Render("Error:") + " " + Describe(err)
	_, _ = fmt.Fprintln(r.stderr, line)
	return 1
}

// Describe renders err as a single human-readable sentence.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var shareErr *core.Error
	if !errors.As(err, &shareErr) {
		return err.Error()
	}

	switch shareErr.Kind {
	case core.KindInvalidInput:
		return shareErr.Error()
	case core.KindUploadFailed:
		return "uploading file: " + strings.TrimPrefix(shareErr.Error(), "upload failed: ")
	case core.KindShortenFailed:
		return "shortening URL: " + strings.TrimPrefix(shareErr.Error(), "shortening URL failed: ")
	case core.KindNetwork:
		return shareErr.Error()
	}
	return err.Error()
}
