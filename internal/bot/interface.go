package bot

import "context"

//go:generate mockgen -source=interface.go -destination=../mocks/bot/mock_bot.go -package=mock_bot

// Downloader fetches pronunciation audio for sending as voice notes.
type Downloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}
