package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"fileshare/internal/core"
	"fileshare/internal/logger"
)

// DefaultEndpoint is the tmpfiles.org upload API.
const DefaultEndpoint = "https://tmpfiles.org/api/v1/upload"

// formField is the multipart part name the file host expects.
const formField = "file"

// Client uploads files to tmpfiles.org
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// New creates an upload client. The http client is expected to carry the
// User-Agent configuration (see transport.New).
func New(httpClient *http.Client, endpoint string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{httpClient: httpClient, endpoint: endpoint}
}

// response mirrors the subset of the tmpfiles.org reply we read.
type response struct {
	Status json.RawMessage `json:"status"`
	Data   struct {
		URL any `json:"url"`
	} `json:"data"`
}

// Upload sends the file as a single multipart part and returns the
// download link from data.url.
func (c *Client) Upload(ctx context.Context, fh core.FileHandle) (core.UploadResult, error) {
	body, contentType, err := encodeForm(fh)
	if err != nil {
		return core.UploadResult{}, &core.Error{Kind: core.KindUploadFailed, Op: "upload", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return core.UploadResult{}, &core.Error{
			Kind: core.KindUploadFailed,
			Op:   "upload",
			Err:  fmt.Errorf("failed to create request: %w", err),
		}
	}
	req.Header.Set("Content-Type", contentType)

	logger.Debug("Uploading file", "endpoint", c.endpoint, "file", fh.BaseName, "bytes", fh.Size())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return core.UploadResult{}, &core.Error{Kind: core.KindNetwork, Op: "upload", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.UploadResult{}, &core.Error{Kind: core.KindNetwork, Op: "upload", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return core.UploadResult{}, &core.Error{
			Kind:       core.KindUploadFailed,
			Op:         "upload",
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}

	downloadURL, status, ok := extractURL(raw)
	logger.Debug("Upload response received", "status", resp.StatusCode, "api_status", status, "response_length", len(raw))
	if !ok {
		return core.UploadResult{}, &core.Error{Kind: core.KindUploadFailed, Op: "upload", Msg: core.MsgNoDownloadLink}
	}

	return core.UploadResult{DownloadURL: downloadURL}, nil
}

// encodeForm builds the multipart body in memory.
func encodeForm(fh core.FileHandle) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(formField, fh.BaseName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := part.Write(fh.Contents); err != nil {
		return nil, "", fmt.Errorf("failed to write form part: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}

// extractURL returns data.url when it is a non-empty string.
func extractURL(raw []byte) (string, string, bool) {
	var r response
	if err := json.Unmarshal(raw, &r); err != nil {
		return "", "", false
	}
	s, ok := r.Data.URL.(string)
	if !ok || s == "" {
		return "", string(r.Status), false
	}
	return s, string(r.Status), true
}
