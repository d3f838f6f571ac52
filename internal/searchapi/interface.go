package searchapi

import "context"

//go:generate mockgen -source=interface.go -destination=../mocks/searchapi/mock_searchapi.go -package=mock_searchapi

// Searcher looks up a word through the dictionary search API.
type Searcher interface {
	Search(ctx context.Context, word string) (*Result, error)
}
