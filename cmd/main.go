package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/kimandshin/hymn/internal/services"
	"github.com/kimandshin/hymn/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	timeout := time.Duration(config.API.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	httpClient := &http.Client{Timeout: timeout}

	archive := services.NewArchiveService(config.API.BaseURL, httpClient, config.API.RateLimit)
	apiService := services.NewAPIService(config.API.BaseURL, httpClient)

	runner := NewRunner(RunnerOpts{
		Config:     config,
		Archive:    archive,
		API:        apiService,
		HTTPClient: httpClient,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "hymn",
		Usage:    "Browse a remote hymn archive: search, favorites, sheet images & comments",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		}
		logger.Fatalf("application error: %v", err)
	}
}
