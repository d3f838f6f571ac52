// Package bot implements the Telegram front end for dictionary lookups.
package bot

import (
	"fmt"
	"log/slog"

	tele "gopkg.in/telebot.v3"

	"github.com/ashatilov/camdict/internal/config"
	"github.com/ashatilov/camdict/internal/searchapi"
)

type Bot struct {
	api      *tele.Bot
	searcher searchapi.Searcher
	audio    Downloader
	logger   *slog.Logger
}

func New(cfg config.TelegramConfig, searcher searchapi.Searcher, audio Downloader, logger *slog.Logger) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: cfg.PollTimeout},
	}

	api, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("tele.NewBot > %w", err)
	}

	b := &Bot{
		api:      api,
		searcher: searcher,
		audio:    audio,
		logger:   logger,
	}
	b.register()
	return b, nil
}

func (b *Bot) register() {
	b.api.Handle("/start", b.handleStart)
	b.api.Handle("/help", b.handleHelp)
	b.api.Handle(tele.OnText, b.handleSearch)
}

// Start begins long polling and blocks until Stop is called.
func (b *Bot) Start() {
	b.logger.Info("bot started", slog.String("username", b.api.Me.Username))
	b.api.Start()
}

func (b *Bot) Stop() {
	b.api.Stop()
}
