package core

import (
	"errors"
	"fmt"
)

// Kind tags the stage-level failure class of an Error.
type Kind int

const (
	// KindInvalidInput means the supplied path is missing or not a regular file.
	KindInvalidInput Kind = iota + 1
	// KindUploadFailed means the file host rejected the upload or returned no link.
	KindUploadFailed
	// KindShortenFailed means the shortening request could not be built or
	// the service answered with a non-success status.
	KindShortenFailed
	// KindNetwork means the HTTP layer itself failed (DNS, dial, TLS, timeout).
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindUploadFailed:
		return "upload failed"
	case KindShortenFailed:
		return "shorten failed"
	case KindNetwork:
		return "network error"
	default:
		return "unknown error"
	}
}

// MsgNoDownloadLink is reported when the upload response lacks data.url.
const MsgNoDownloadLink = "could not obtain download link"

var (
	// ErrInvalidInput matches any Error of KindInvalidInput
	ErrInvalidInput = &Error{Kind: KindInvalidInput}

	// ErrUploadFailed matches any Error of KindUploadFailed
	ErrUploadFailed = &Error{Kind: KindUploadFailed}

	// ErrShortenFailed matches any Error of KindShortenFailed
	ErrShortenFailed = &Error{Kind: KindShortenFailed}

	// ErrNetwork matches any Error of KindNetwork
	ErrNetwork = &Error{Kind: KindNetwork}
)

// Error is the single error type produced by the share pipeline. Only the
// fields relevant to Kind are populated.
type Error struct {
	Kind       Kind
	Op         string // "resolve", "upload" or "shorten"
	Path       string // InvalidInput: offending path
	StatusCode int    // UploadFailed, ShortenFailed: HTTP status, 0 if not applicable
	Body       string // UploadFailed: raw response text
	Msg        string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidInput:
		msg := fmt.Sprintf("file '%s' does not exist or is not a regular file", e.Path)
		if e.Err != nil {
			msg += ": " + e.Err.Error()
		}
		return msg
	case KindUploadFailed:
		if e.StatusCode != 0 {
			return fmt.Sprintf("upload failed: status %d, response: %s", e.StatusCode, e.Body)
		}
		return "upload failed: " + e.message()
	case KindShortenFailed:
		if e.StatusCode != 0 {
			return fmt.Sprintf("shortening URL failed: status %d", e.StatusCode)
		}
		return "shortening URL failed: " + e.message()
	case KindNetwork:
		return fmt.Sprintf("%s request failed: %v", e.Op, e.Err)
	}
	return e.message()
}

func (e *Error) message() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind, so the package
// sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
