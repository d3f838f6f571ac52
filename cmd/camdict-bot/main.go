package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashatilov/camdict/internal/bootstrap"
	"github.com/ashatilov/camdict/internal/bot"
	"github.com/ashatilov/camdict/internal/config"
	"github.com/ashatilov/camdict/internal/searchapi"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "camdict-bot",
		Short:         "Telegram bot for Cambridge Dictionary lookups",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	if cfg.Telegram.Token == "" {
		return errors.New("telegram token is not configured, set TELEGRAM_BOT_TOKEN")
	}

	logger := bootstrap.NewLogger(cfg.Log, debugMode)
	slog.SetDefault(logger)

	app := bootstrap.New(cfg.Server.ShutdownTimeout)

	searcher := searchapi.NewClient(cfg.API.BaseURL(), cfg.API.Timeout)
	downloader := bot.NewAudioDownloader(cfg.API.Timeout)

	b, err := bot.New(cfg.Telegram, searcher, downloader, logger)
	if err != nil {
		return fmt.Errorf("bot.New > %w", err)
	}
	app.AddShutdownHook(func(ctx context.Context) error {
		b.Stop()
		return nil
	})

	return app.Run(ctx, func(ctx context.Context) error {
		b.Start()
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
