package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashatilov/camdict/internal/bootstrap"
	"github.com/ashatilov/camdict/internal/config"
	"github.com/ashatilov/camdict/internal/dictionary"
	"github.com/ashatilov/camdict/internal/server"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "camdict-server",
		Short:         "Cambridge Dictionary scraper and word search HTTP server",
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

	logger := bootstrap.NewLogger(cfg.Log, debugMode)
	slog.SetDefault(logger)

	app := bootstrap.New(cfg.Server.ShutdownTimeout)

	scraper := dictionary.NewScraper(dictionary.Config{
		BaseURL:   cfg.Dictionary.BaseURL,
		UserAgent: cfg.Dictionary.UserAgent,
		Timeout:   cfg.Dictionary.Timeout,
	})
	fetcher := dictionary.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	srv := server.New(cfg, logger, scraper, fetcher)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	app.AddShutdownHook(httpServer.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		logger.Info("starting server", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
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
