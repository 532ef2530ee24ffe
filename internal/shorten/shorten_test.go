package shorten

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fileshare/internal/core"
	"fileshare/internal/transport"
)

func TestShorten_TrimsWhitespace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("  https://tinyurl.com/abc123\n"))
	}))
	defer server.Close()

	result, err := New(server.Client(), server.URL).Shorten(context.Background(), "https://tmpfiles.org/123/x.txt")
	if err != nil {
		t.Fatalf("Shorten failed: %v", err)
	}
	if result.ShortURL != "https://tinyurl.com/abc123" {
		t.Errorf("Expected 'https://tinyurl.com/abc123', got '%s'", result.ShortURL)
	}
}

func TestShorten_RequestShape(t *testing.T) {
	var method, rawQuery, agent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		rawQuery = r.URL.RawQuery
		agent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("https://tinyurl.com/x"))
	}))
	defer server.Close()

	client := New(transport.New("ShortenTest/1.0", 0), server.URL)
	if _, err := client.Shorten(context.Background(), "https://tmpfiles.org/123/x.txt"); err != nil {
		t.Fatalf("Shorten failed: %v", err)
	}

	if method != http.MethodGet {
		t.Errorf("Expected GET, got %s", method)
	}
	if rawQuery != "url=https://tmpfiles.org/123/x.txt" {
		t.Errorf("Expected unescaped query, got '%s'", rawQuery)
	}
	if agent != "ShortenTest/1.0" {
		t.Errorf("Expected User-Agent 'ShortenTest/1.0', got '%s'", agent)
	}
}

func TestShorten_ReservedCharactersAreNotEscaped(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("url")
		_, _ = w.Write([]byte("https://tinyurl.com/x"))
	}))
	defer server.Close()

	_, err := New(server.Client(), server.URL).Shorten(context.Background(), "https://example.com/f?a=1&b=2")
	if err != nil {
		t.Fatalf("Shorten failed: %v", err)
	}

	// the second parameter is split off by the server's query parser
	if got != "https://example.com/f?a=1" {
		t.Errorf("Expected truncated url parameter, got '%s'", got)
	}
}

func TestShorten_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := New(server.Client(), server.URL).Shorten(context.Background(), "https://tmpfiles.org/1/x.txt")
	if !errors.Is(err, core.ErrShortenFailed) {
		t.Fatalf("Expected ShortenFailed, got %v", err)
	}

	var shareErr *core.Error
	if errors.As(err, &shareErr) && shareErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", shareErr.StatusCode)
	}
}

func TestShorten_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	_, err := New(nil, endpoint).Shorten(context.Background(), "https://tmpfiles.org/1/x.txt")
	if !errors.Is(err, core.ErrNetwork) {
		t.Errorf("Expected NetworkError, got %v", err)
	}
}

func TestBuildURL(t *testing.T) {
	c := New(nil, "")
	testCases := []struct {
		name        string
		downloadURL string
		expected    string
	}{
		{"plain", "https://tmpfiles.org/9/a.txt", "https://tinyurl.com/api-create.php?url=https://tmpfiles.org/9/a.txt"},
		{"space", "https://tmpfiles.org/9/a b.txt", "https://tinyurl.com/api-create.php?url=https://tmpfiles.org/9/a%20b.txt"},
		{"non-ascii", "https://tmpfiles.org/9/café.txt", "https://tinyurl.com/api-create.php?url=https://tmpfiles.org/9/caf%C3%A9.txt"},
		{"quotes and brackets", `https://tmpfiles.org/9/"<x>'.txt`, "https://tinyurl.com/api-create.php?url=https://tmpfiles.org/9/%22%3Cx%3E%27.txt"},
		{"control", "https://tmpfiles.org/9/a\x07.txt", "https://tinyurl.com/api-create.php?url=https://tmpfiles.org/9/a%07.txt"},
		{"reserved kept raw", "https://e.com/f?a=1&b=2%41", "https://tinyurl.com/api-create.php?url=https://e.com/f?a=1&b=2%41"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.buildURL(tc.downloadURL); got != tc.expected {
				t.Errorf("Expected '%s', got '%s'", tc.expected, got)
			}
		})
	}
}

func TestShorten_FileNameWithSpace(t *testing.T) {
	var hits int
	var rawQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte("https://tinyurl.com/sp"))
	}))
	defer server.Close()

	result, err := New(server.Client(), server.URL).Shorten(context.Background(), "https://tmpfiles.org/9/a b.txt")
	if err != nil {
		t.Fatalf("Shorten failed: %v", err)
	}
	if hits != 1 {
		t.Fatalf("Expected the handler to be reached once, got %d", hits)
	}
	if rawQuery != "url=https://tmpfiles.org/9/a%20b.txt" {
		t.Errorf("Expected space to arrive as %%20, got '%s'", rawQuery)
	}
	if result.ShortURL != "https://tinyurl.com/sp" {
		t.Errorf("Unexpected short URL '%s'", result.ShortURL)
	}
}

func TestShorten_BadRequestKeepsCause(t *testing.T) {
	_, err := New(nil, "https://tinyurl.com/\x07api").Shorten(context.Background(), "https://tmpfiles.org/9/a.txt")
	if !errors.Is(err, core.ErrShortenFailed) {
		t.Fatalf("Expected ShortenFailed, got %v", err)
	}
	msg := err.Error()
	if strings.Contains(msg, "status 0") {
		t.Errorf("Expected no bogus status in %q", msg)
	}
	if !strings.Contains(msg, "invalid control character") {
		t.Errorf("Expected the request error cause in %q", msg)
	}
}
