package pipeline

import (
	"fmt"
	"net/http"
	"time"

	"fileshare/internal/input"
	"fileshare/internal/shorten"
	"fileshare/internal/transport"
	"fileshare/internal/upload"
)

// Builder helps construct a fully configured Pipeline
type Builder struct {
	httpClient      *http.Client
	uploadEndpoint  string
	shortenEndpoint string
	userAgent       string
	timeout         time.Duration
	resolver        FileResolver
}

// NewBuilder creates a new pipeline builder with default settings
func NewBuilder() *Builder {
	return &Builder{
		uploadEndpoint:  upload.DefaultEndpoint,
		shortenEndpoint: shorten.DefaultEndpoint,
		userAgent:       transport.DefaultUserAgent,
	}
}

// WithHTTPClient uses client for both requests instead of building one.
// The caller is then responsible for the User-Agent header.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithUploadEndpoint sets the file host URL
func (b *Builder) WithUploadEndpoint(endpoint string) *Builder {
	b.uploadEndpoint = endpoint
	return b
}

// WithShortenEndpoint sets the shortener URL
func (b *Builder) WithShortenEndpoint(endpoint string) *Builder {
	b.shortenEndpoint = endpoint
	return b
}

// WithUserAgent sets the User-Agent of the built HTTP client
func (b *Builder) WithUserAgent(userAgent string) *Builder {
	b.userAgent = userAgent
	return b
}

// WithTimeout sets an overall per-request deadline; zero keeps the default
func (b *Builder) WithTimeout(timeout time.Duration) *Builder {
	b.timeout = timeout
	return b
}

// WithResolver replaces the file-system resolver
func (b *Builder) WithResolver(resolver FileResolver) *Builder {
	b.resolver = resolver
	return b
}

// Build constructs a Pipeline whose upload and shorten clients share one
// HTTP client.
func (b *Builder) Build() (*Pipeline, error) {
	if b.uploadEndpoint == "" {
		return nil, fmt.Errorf("upload endpoint is required")
	}
	if b.shortenEndpoint == "" {
		return nil, fmt.Errorf("shorten endpoint is required")
	}
	if b.timeout < 0 {
		return nil, fmt.Errorf("timeout must not be negative")
	}

	client := b.httpClient
	if client == nil {
		client = transport.New(b.userAgent, b.timeout)
	}

	resolver := b.resolver
	if resolver == nil {
		resolver = ResolverFunc(input.Resolve)
	}

	return NewPipeline(
		resolver,
		upload.New(client, b.uploadEndpoint),
		shorten.New(client, b.shortenEndpoint),
	), nil
}
