package main

import (
	"context"
	"net/http"
	"os"

	"github.com/otsubo234039/NewsAPP/internal/api"
	"github.com/otsubo234039/NewsAPP/internal/cache"
	"github.com/otsubo234039/NewsAPP/internal/config"
	"github.com/otsubo234039/NewsAPP/internal/feed"
	"github.com/otsubo234039/NewsAPP/internal/logger"
	"github.com/otsubo234039/NewsAPP/internal/store"
	"github.com/otsubo234039/NewsAPP/internal/translate"
)

func main() {
	logger.Init()
	log := logger.With("main")

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	feeds, err := config.LoadFeeds(cfg.FeedsConfigPath)
	if err != nil {
		log.Error("failed to load feed config", "error", err)
		os.Exit(1)
	}
	log.Info("feed config loaded", "categories", feeds.CategoryKeys())

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Error("failed to open database", "error", err, "path", cfg.DatabasePath)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.SeedCategories(context.Background()); err != nil {
		log.Error("failed to seed categories", "error", err)
		os.Exit(1)
	}

	fetcher := feed.NewFetcher(cfg.ConnectTimeout, cfg.RequestTimeout)
	aggregator := feed.NewAggregator(feeds, cache.New(), fetcher, logger.With("feed"))

	translator, err := translate.NewService(cfg, logger.With("translate"))
	if err != nil {
		log.Error("failed to init translation service", "error", err)
		os.Exit(1)
	}

	server := api.NewServer(aggregator, translator, st, cfg.JWTSecret, logger.With("api"))

	log.Info("starting server", "addr", cfg.ListenAddr, "translate_provider", cfg.TranslateProvider)
	if err := http.ListenAndServe(cfg.ListenAddr, server.Routes()); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
