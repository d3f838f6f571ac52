package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tele "gopkg.in/telebot.v3"
)

const (
	startMessage = "Привет! Я бот для поиска определений слов в Cambridge Dictionary. " +
		"Просто отправь мне английское слово."
	helpMessage         = "Отправьте мне английское слово, и я найду его определение в Cambridge Dictionary."
	emptyQueryMessage   = "Пожалуйста, введите слово для поиска."
	serviceErrorMessage = "Ошибка при обращении к сервису словаря. Пожалуйста, попробуйте позже."
)

func (b *Bot) handleStart(c tele.Context) error {
	return c.Send(startMessage)
}

func (b *Bot) handleHelp(c tele.Context) error {
	return c.Send(helpMessage)
}

// handleSearch answers any plain text message with the definition of that word.
func (b *Bot) handleSearch(c tele.Context) error {
	word := strings.ToLower(strings.TrimSpace(c.Text()))
	if word == "" {
		return c.Send(emptyQueryMessage)
	}

	if err := c.Send(fmt.Sprintf("Ищу определение для слова '%s'...", word)); err != nil {
		return err
	}

	ctx := context.Background()
	result, err := b.searcher.Search(ctx, word)
	if err != nil {
		b.logger.Error("search request failed",
			slog.String("word", word),
			slog.Any("error", err),
		)
		return c.Send(serviceErrorMessage)
	}
	if result.Error != "" {
		return c.Send(fmt.Sprintf("Ошибка: %s", result.Error))
	}

	parts := splitMessage(formatEntry(result.Entry), maxMessageLength)
	for i, part := range parts {
		if i > 0 {
			part = fmt.Sprintf("(Продолжение %d/%d)\n\n%s", i+1, len(parts), part)
		}
		if err := c.Send(part, &tele.SendOptions{ParseMode: tele.ModeMarkdown}); err != nil {
			return err
		}
	}

	b.sendPronunciations(ctx, c, result.Entry)
	return nil
}
