package backend

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

	"github.com/jrsteele09/go-admin-portal/internal/config"
	"github.com/rs/zerolog/log"
)

const (
	// maxReadAttempts bounds the client-initiated retry policy. Reads only;
	// writes are never retried.
	maxReadAttempts = 3

	retryPause = 100 * time.Millisecond
)

// Client talks to the REST backend. The zero token value makes unauthenticated
// calls; WithToken derives a client that attaches the bearer credential to
// every outgoing request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func New(cfg config.BackendConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.GetBackendBaseURL(), "/"),
		httpClient: &http.Client{
			Timeout: cfg.GetBackendTimeout(),
		},
	}
}

// WithToken returns a copy of the client that authenticates as the bearer of
// the given access token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// get performs a read with the bounded retry policy. Only network failures
// and 5xx responses are retried; auth and client errors surface immediately.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	var lastErr error
	for attempt := 1; attempt <= maxReadAttempts; attempt++ {
		lastErr = c.do(ctx, http.MethodGet, path, query, nil, out)
		if lastErr == nil || !retryable(lastErr) {
			return lastErr
		}
		if attempt < maxReadAttempts {
			select {
			case <-ctx.Done():
				return lastErr
			case <-time.After(retryPause):
			}
		}
	}
	return lastErr
}

func retryable(err error) bool {
	var be *Error
	if !errors.As(err, &be) {
		return false
	}
	return be.Kind == KindNetwork || be.Status >= http.StatusInternalServerError
}

// do issues a single JSON request and decodes the response into out (which
// may be nil). Any failure comes back as a tagged *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindRemote, err: fmt.Errorf("encode request body: %w", err)}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return &Error{Kind: KindRemote, err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Distinguished from remote failures only for diagnostics.
		log.Warn().Err(err).Str("method", method).Str("path", path).Msg("Backend unreachable")
		return &Error{Kind: KindNetwork, err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.errorFromResponse(method, path, resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindRemote, Status: resp.StatusCode, err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) errorFromResponse(method, path string, resp *http.Response) *Error {
	detail := readDetail(resp.Body)

	var kind Kind
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		kind = KindAuthentication
	case http.StatusForbidden:
		kind = KindAuthorization
	case http.StatusUnprocessableEntity:
		kind = KindValidation
	default:
		kind = KindRemote
	}

	log.Warn().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("kind", kind.String()).
		Msg("Backend request failed")

	return &Error{Kind: kind, Status: resp.StatusCode, Detail: detail}
}

// readDetail extracts the backend's {"detail": ...} payload, which may be a
// string or a structured list of field violations.
func readDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 8192))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var asString string
	if err := json.Unmarshal(envelope.Detail, &asString); err == nil {
		return asString
	}
	return string(envelope.Detail)
}
