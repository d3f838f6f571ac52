package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client fetches entry documents from a running camdict server over HTTP.
type Client struct {
	client *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
	}
}

// StatusError reports a backend response with a non-OK status code.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status code: %d, body: %s", e.StatusCode, string(e.Body))
}

// ParseError reports a backend response body that is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Fetch retrieves the raw entry document for a word. The document is
// returned exactly as the backend sent it so callers can pass it through
// without re-encoding.
func (c *Client) Fetch(ctx context.Context, language, word string) (json.RawMessage, error) {
	res, err := c.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/dictionary/%s/%s", url.PathEscape(language), url.PathEscape(word)))
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &StatusError{StatusCode: res.StatusCode(), Body: res.Body()}
	}

	var document json.RawMessage
	if err := json.Unmarshal(res.Body(), &document); err != nil {
		return nil, &ParseError{Err: err}
	}
	return document, nil
}
