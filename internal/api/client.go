// Package api translates logical note operations into authenticated HTTP
// requests against the notes service and normalizes responses and errors.
//
// Every request carries a JSON content type, a generated X-Request-Id, and,
// when the token source has one, an Authorization: Bearer header. Non-2xx
// responses become *Error values whose message is taken from the service's
// detail/message field. The client never caches anything.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dstepanovs/notedesk/internal/logging"
	"github.com/dstepanovs/notedesk/internal/models"
)

// TokenSource supplies the current bearer token, if any. The session manager
// implements it.
type TokenSource interface {
	Token() (string, bool)
}

// TokenFunc adapts a plain function to TokenSource.
type TokenFunc func() (string, bool)

func (f TokenFunc) Token() (string, bool) { return f() }

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// New returns a Client for the service at baseURL. A zero timeout means no
// client-side timeout; a hung request is the caller's problem to interrupt
// via context.
func New(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// Authenticate exchanges credentials for an access token. It also satisfies
// session.Authenticator.
func (c *Client) Authenticate(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/token", nil, body, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// ListNotes fetches the notes matching query; an empty query lists everything.
func (c *Client) ListNotes(ctx context.Context, query string) ([]models.Note, error) {
	var q url.Values
	if query != "" {
		q = url.Values{"q": []string{query}}
	}

	var notes []models.Note
	if err := c.do(ctx, http.MethodGet, "/notes", q, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) CreateNote(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	var note models.Note
	if err := c.do(ctx, http.MethodPost, "/notes", nil, draft, &note); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id int64, draft models.NoteDraft) (models.Note, error) {
	var note models.Note
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/notes/%d", id), nil, draft, &note); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notes/%d", id), nil, nil, nil)
}

// do issues one request and normalizes the outcome. out may be nil for
// operations without a response body; a 204 or empty body leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: failed to read response: %w", method, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &Error{
			Status:    resp.StatusCode,
			Message:   failureMessage(data),
			RequestID: requestID,
		}
		c.log.Warn(ctx, "request failed",
			"method", method, "path", path,
			"status", resp.StatusCode, "request_id", requestID)
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		// A success status with an unreadable body still surfaces as a
		// normalized *Error rather than a raw decode failure.
		c.log.Warn(ctx, "unparsable response body",
			"method", method, "path", path, "request_id", requestID)
		return &Error{Status: resp.StatusCode, Message: defaultMessage, RequestID: requestID}
	}
	return nil
}

// failureMessage extracts the user-facing message from a failure body,
// preferring "detail" over "message" and falling back to a generic string.
func failureMessage(data []byte) string {
	var body struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return defaultMessage
	}
	if body.Detail != "" {
		return body.Detail
	}
	if body.Message != "" {
		return body.Message
	}
	return defaultMessage
}
