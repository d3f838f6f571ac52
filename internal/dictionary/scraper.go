package dictionary

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config holds the settings for the Cambridge Dictionary scraper.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Scraper looks up words by fetching and parsing dictionary.cambridge.org
// pages. The dictionary blocks requests without a browser User-Agent, so
// the configured one is sent on every request.
type Scraper struct {
	config Config
	client *resty.Client
}

func NewScraper(config Config) *Scraper {
	client := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetHeader("User-Agent", config.UserAgent)
	return &Scraper{
		config: config,
		client: client,
	}
}

// Lookup fetches the dictionary page for word in the given language and
// extracts its entry. It returns ErrNotFound when the dictionary answers
// with a spelling suggestion page instead of an entry.
func (s *Scraper) Lookup(ctx context.Context, language, word string) (Entry, error) {
	dataset := NormalizeLanguage(language)

	body, err := s.fetchPage(ctx, dataset, word)
	if err != nil {
		return Entry{}, fmt.Errorf("s.fetchPage > %w", err)
	}

	entry, err := parsePage(s.config.BaseURL, body)
	if err != nil {
		return Entry{}, fmt.Errorf("dictionary.parsePage > %w", err)
	}
	if entry.Word == "" {
		return Entry{}, ErrNotFound
	}
	return entry, nil
}

func (s *Scraper) fetchPage(ctx context.Context, dataset, word string) ([]byte, error) {
	res, err := s.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/dictionary/%s/%s", dataset, url.PathEscape(word)))
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return res.Body(), nil
}
