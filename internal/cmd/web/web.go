// Package web wires configuration and startup for the site service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/noorwave/noorwave.dev/internal/platform/config"
	"github.com/noorwave/noorwave.dev/internal/platform/otel"
	"github.com/noorwave/noorwave.dev/internal/services/site"
	sitestorage "github.com/noorwave/noorwave.dev/internal/services/site/storage"
	sitesqlite "github.com/noorwave/noorwave.dev/internal/services/site/storage/sqlite"
)

const defaultHTTPAddr = "localhost:8080"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr     string `env:"HTTP_ADDR"`
	AssetBaseURL string `env:"ASSET_BASE_URL"`
	DBPath       string `env:"DB_PATH"`
}

// ParseConfig reads environment defaults and parses flags into a Config.
// Flags win over environment variables.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{HTTPAddr: defaultHTTPAddr}
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		cfg.HTTPAddr = defaultHTTPAddr
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "base URL prepended to static asset links")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path; empty disables persistence")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the site server and blocks until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "site")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	var store sitestorage.SubmissionStore
	if dbPath := strings.TrimSpace(cfg.DBPath); dbPath != "" {
		sqliteStore, err := sitesqlite.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open submissions store: %w", err)
		}
		defer func() {
			if err := sqliteStore.Close(); err != nil {
				log.Printf("close submissions store: %v", err)
			}
		}()
		store = sqliteStore
	} else {
		log.Printf("submissions store disabled db_path=empty")
	}

	server, err := site.NewServer(site.Config{
		HTTPAddr:     cfg.HTTPAddr,
		AssetBaseURL: cfg.AssetBaseURL,
		Store:        store,
		Logger:       log.Default(),
	})
	if err != nil {
		return fmt.Errorf("init site server: %w", err)
	}
	defer server.Close()

	log.Printf("site listening addr=%s", cfg.HTTPAddr)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve site: %w", err)
	}
	return nil
}
