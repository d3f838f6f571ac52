package bot

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	tele "gopkg.in/telebot.v3"

	"github.com/ashatilov/camdict/internal/dictionary"
)

// AudioDownloader fetches pronunciation recordings from the dictionary
// media host. The host rejects clients without a browser User-Agent and
// serves media through endpoints with broken certificate chains.
type AudioDownloader struct {
	httpClient *resty.Client
}

var _ Downloader = (*AudioDownloader)(nil)

func NewAudioDownloader(timeout time.Duration) *AudioDownloader {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", "Mozilla/5.0")
	client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})

	return &AudioDownloader{
		httpClient: client,
	}
}

func (d *AudioDownloader) Download(ctx context.Context, audioURL string) ([]byte, error) {
	res, err := d.httpClient.R().
		SetContext(ctx).
		Get(audioURL)
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d", res.StatusCode())
	}
	return res.Body(), nil
}

// sendPronunciations sends the first British and American recordings of the
// entry as voice notes. Failures are logged and swallowed so a broken media
// host never hides the definition text.
func (b *Bot) sendPronunciations(ctx context.Context, c tele.Context, entry dictionary.Entry) {
	var uk, us *dictionary.Pronunciation
	for i := range entry.Pronunciations {
		pron := &entry.Pronunciations[i]
		switch {
		case pron.Lang == "uk" && uk == nil:
			uk = pron
		case pron.Lang == "us" && us == nil:
			us = pron
		}
	}

	if uk != nil && uk.URL != "" {
		b.sendVoice(ctx, c, uk.URL, fmt.Sprintf("🇬🇧 Британское произношение слова '%s'", entry.Word))
	}
	if us != nil && us.URL != "" && (uk == nil || us.URL != uk.URL) {
		b.sendVoice(ctx, c, us.URL, fmt.Sprintf("🇺🇸 Американское произношение слова '%s'", entry.Word))
	}
}

func (b *Bot) sendVoice(ctx context.Context, c tele.Context, audioURL, caption string) {
	data, err := b.audio.Download(ctx, audioURL)
	if err != nil {
		b.logger.Error("download pronunciation audio",
			slog.String("url", audioURL),
			slog.Any("error", err),
		)
		return
	}

	voice := &tele.Voice{
		File:    tele.FromReader(bytes.NewReader(data)),
		Caption: caption,
		MIME:    "audio/mpeg",
	}
	if err := c.Send(voice); err != nil {
		b.logger.Error("send pronunciation audio",
			slog.String("url", audioURL),
			slog.Any("error", err),
		)
	}
}
