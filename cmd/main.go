package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/rkhatta1/TheVersusProject/internal/repositories"
	"github.com/rkhatta1/TheVersusProject/internal/services"
	"github.com/rkhatta1/TheVersusProject/internal/session"
	"github.com/rkhatta1/TheVersusProject/internal/shared"
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

	timeout := time.Duration(config.Server.TimeoutSeconds) * time.Second
	httpClient := &http.Client{Timeout: timeout}

	feedService := services.NewFeedClient(config.Server.BaseURL, httpClient, config.Server.RateLimit)
	captionService := services.NewCaptionClient(config.Server.BaseURL, httpClient)
	authService := services.NewAuthClient(config.Server.BaseURL, httpClient)

	var cacheRepo *repositories.FeedCacheRepository
	if db, err := shared.NewDatabase(config.Database.Path); err == nil {
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		if err := shared.RunMigrations(db); err == nil {
			cacheRepo = repositories.NewFeedCacheRepository(db)
		} else {
			logger.Warn("feed cache migrations failed, running without cache", "error", err)
		}
	} else {
		logger.Warn("feed cache unavailable, running without cache", "error", err)
	}

	token, _ := readToken(config)

	controllerOpts := session.Opts{
		Feed:     feedService,
		Captions: captionService,
		Logger:   logger,
		Token:    token,
	}
	if cacheRepo != nil {
		controllerOpts.Cache = cacheRepo
	}
	controller := session.NewController(controllerOpts)

	runner := NewRunner(RunnerOpts{
		Config:     config,
		Feed:       feedService,
		Captions:   captionService,
		Auth:       authService,
		Controller: controller,
		Cache:      cacheRepo,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "versus",
		Usage:    "Client for The Versus Project news aggregation backend",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
