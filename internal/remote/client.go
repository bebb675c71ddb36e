package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	syncerr "github.com/alexjbarnes/drive-sync/internal/errors"
	"github.com/alexjbarnes/drive-sync/internal/folders"
	"github.com/tidwall/gjson"
)

// TransientError wraps an error that is likely temporary and safe to retry.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether err (or any error in its chain) is a
// TransientError, meaning the caller should retry after a backoff.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

const (
	// maxRedirects is the maximum number of HTTP redirects to follow
	// before giving up, matching the default net/http limit.
	maxRedirects = 10

	// defaultTimeout applies when no custom client or timeout is given.
	defaultTimeout = 30 * time.Second

	// maxAPIResponseBytes caps JSON response reads.
	maxAPIResponseBytes = 1024 * 1024

	// maxContentBytes caps file downloads.
	maxContentBytes = 512 * 1024 * 1024
)

// Client talks to the drive backend. It implements
// folders.RemoteFileSystem plus the file content calls used by
// hydration and file sync.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// sameHostRedirectPolicy follows redirects only when the target host
// matches the original request host, so the bearer token never leaves
// the backend's domain.
func sameHostRedirectPolicy(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return errors.New("stopped after 10 redirects")
	}

	if len(via) > 0 {
		origHost := via[0].URL.Host
		if req.URL.Host != origHost {
			return fmt.Errorf("redirect to different host blocked: %s -> %s", origHost, req.URL.Host)
		}
	}

	return nil
}

// NewClient creates a backend client. A zero timeout uses the default.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:       timeout,
			CheckRedirect: sameHostRedirectPolicy,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

// sanitizeResponseBody truncates and sanitizes a response body for
// inclusion in error messages. Limits to 256 bytes and replaces
// non-printable characters to prevent log injection.
func sanitizeResponseBody(body []byte) string {
	const maxLen = 256
	if len(body) > maxLen {
		body = body[:maxLen]
	}

	var clean []byte

	for len(body) > 0 {
		r, size := utf8.DecodeRune(body)
		if r == utf8.RuneError && size <= 1 {
			clean = append(clean, '?')
			body = body[1:]

			continue
		}

		if r < 0x20 && r != '\n' && r != '\r' && r != '\t' {
			clean = append(clean, '?')
		} else {
			clean = append(clean, body[:size]...)
		}

		body = body[size:]
	}

	return string(clean)
}

// do sends a request and returns the response body. Non-2xx responses
// become errors; the backend's "error" or "message" field is preferred
// over the raw body when present.
func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, contentType string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		wrapped := fmt.Errorf("sending request to %s: %w", endpoint, err)
		// Network errors (timeouts, connection refused, DNS failures)
		// are transient by nature.
		return nil, &TransientError{Err: wrapped}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", endpoint, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return respBody, nil
	}

	detail := sanitizeResponseBody(respBody)
	if gjson.ValidBytes(respBody) {
		if msg := gjson.GetBytes(respBody, "error").String(); msg != "" {
			detail = msg
		} else if msg := gjson.GetBytes(respBody, "message").String(); msg != "" {
			detail = msg
		}
	}

	err = fmt.Errorf("%w: %s %s (%d): %s", statusSentinel(resp.StatusCode), method, endpoint, resp.StatusCode, detail)
	if isTransientStatus(resp.StatusCode) {
		return nil, &TransientError{Err: err}
	}

	return nil, err
}

// putJSON sends a JSON PUT and discards the response body.
func (c *Client) putJSON(ctx context.Context, endpoint string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshalling request body: %w", err)
	}

	_, err = c.do(ctx, http.MethodPut, endpoint, bytes.NewReader(payload), "application/json", maxAPIResponseBytes)

	return err
}

type moveRequest struct {
	ParentUUID string `json:"parentUuid"`
}

type renameRequest struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Move re-parents a folder on the backend.
func (c *Client) Move(ctx context.Context, uuid, newParent folders.FolderUuid) error {
	endpoint := "/folders/" + url.PathEscape(uuid.String()) + "/move"

	if err := c.putJSON(ctx, endpoint, moveRequest{ParentUUID: newParent.String()}); err != nil {
		return &syncerr.RemoteOperationError{Op: "move folder", Err: err}
	}

	return nil
}

// Rename changes a folder's name on the backend. newPath keeps the
// current parent; the full path is sent for the backend's own checks.
func (c *Client) Rename(ctx context.Context, uuid folders.FolderUuid, newPath folders.FolderPath) error {
	endpoint := "/folders/" + url.PathEscape(uuid.String()) + "/rename"

	if err := c.putJSON(ctx, endpoint, renameRequest{Name: newPath.Name(), Path: newPath.String()}); err != nil {
		return &syncerr.RemoteOperationError{Op: "rename folder", Err: err}
	}

	return nil
}

// DownloadFile returns the content of the file at path.
func (c *Client) DownloadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := c.do(ctx, http.MethodGet, contentEndpoint(path), nil, "", maxContentBytes)
	if err != nil {
		return nil, &syncerr.RemoteOperationError{Op: "download file", Err: err}
	}

	return content, nil
}

// UploadFile replaces the content of the file at path.
func (c *Client) UploadFile(ctx context.Context, path string, content []byte) error {
	_, err := c.do(ctx, http.MethodPut, contentEndpoint(path), bytes.NewReader(content), "application/octet-stream", maxAPIResponseBytes)
	if err != nil {
		return &syncerr.RemoteOperationError{Op: "upload file", Err: err}
	}

	return nil
}

func contentEndpoint(path string) string {
	return "/files/content?" + url.Values{"path": {path}}.Encode()
}

// statusSentinel maps a failing status code to the error callers match on.
func statusSentinel(code int) error {
	switch code {
	case http.StatusNotFound:
		return syncerr.ErrNotFound
	case http.StatusConflict:
		return syncerr.ErrConflict
	}

	return syncerr.ErrAPIResponse
}

// isTransientStatus returns true for HTTP status codes that indicate a
// temporary server-side problem worth retrying.
func isTransientStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}

	return false
}
