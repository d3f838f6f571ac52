// Package searchapi is the client for the word search endpoint of the
// dictionary proxy service.
package searchapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ashatilov/camdict/internal/dictionary"
	"github.com/go-resty/resty/v2"
)

// Result is a single answer from the search API. A successful lookup fills
// the entry fields; an error reported by the API fills Error instead.
type Result struct {
	dictionary.Entry
	Error string `json:"error"`
}

// APIError is returned when the search API answers with a non-200 status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status code: %d, body: %s", e.StatusCode, e.Body)
}

type Client struct {
	httpClient *resty.Client
}

var _ Searcher = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)

	return &Client{
		httpClient: client,
	}
}

func (c *Client) Search(ctx context.Context, word string) (*Result, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/search/%s", url.PathEscape(word)))
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &APIError{
			StatusCode: res.StatusCode(),
			Body:       string(res.Body()),
		}
	}

	var result Result
	if err := json.Unmarshal(res.Body(), &result); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return &result, nil
}
