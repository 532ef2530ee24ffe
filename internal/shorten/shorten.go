package shorten

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fileshare/internal/core"
	"fileshare/internal/logger"
)

// DefaultEndpoint is the TinyURL creation API.
const DefaultEndpoint = "https://tinyurl.com/api-create.php"

// Client shortens URLs through TinyURL
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// New creates a shortener client. Pass the same http client used for the
// upload so both requests share connection pool and User-Agent.
func New(httpClient *http.Client, endpoint string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{httpClient: httpClient, endpoint: endpoint}
}

// Shorten returns the TinyURL alias for downloadURL.
func (c *Client) Shorten(ctx context.Context, downloadURL string) (core.ShortenResult, error) {
	target := c.buildURL(downloadURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return core.ShortenResult{}, &core.Error{
			Kind: core.KindShortenFailed,
			Op:   "shorten",
			Err:  fmt.Errorf("failed to create request: %w", err),
		}
	}

	logger.Debug("Shortening URL", "target", target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return core.ShortenResult{}, &core.Error{Kind: core.KindNetwork, Op: "shorten", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return core.ShortenResult{}, &core.Error{
			Kind:       core.KindShortenFailed,
			Op:         "shorten",
			StatusCode: resp.StatusCode,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.ShortenResult{}, &core.Error{Kind: core.KindNetwork, Op: "shorten", Err: err}
	}

	return core.ShortenResult{ShortURL: strings.TrimSpace(string(body))}, nil
}

// buildURL appends the download URL without query-escaping it. Only bytes
// that cannot appear in a request line (controls, space, non-ASCII, quotes,
// angle brackets) are percent-encoded; reserved characters stay raw.
// TODO: switch to url.QueryEscape once we confirm TinyURL decodes it; a
// link containing '&' or '#' is currently truncated by the query parser.
func (c *Client) buildURL(downloadURL string) string {
	return c.endpoint + "?url=" + encodeIllegal(downloadURL)
}

func encodeIllegal(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch <= ' ' || ch >= 0x7f || ch == '"' || ch == '\'' || ch == '<' || ch == '>' {
			b.WriteByte('%')
			b.WriteByte(hex[ch>>4])
			b.WriteByte(hex[ch&0x0f])
			continue
		}
		b.WriteByte(ch)
	}
	return b.String()
}
