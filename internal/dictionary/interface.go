package dictionary

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interface.go -destination=../mocks/dictionary/mock_dictionary.go -package=mock_dictionary

// Provider looks up dictionary entries by word.
type Provider interface {
	Lookup(ctx context.Context, language, word string) (Entry, error)
}

// Fetcher retrieves raw entry documents from a dictionary backend.
type Fetcher interface {
	Fetch(ctx context.Context, language, word string) (json.RawMessage, error)
}
