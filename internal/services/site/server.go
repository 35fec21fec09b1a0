// Package site hosts the bilingual marketing site's HTTP surface.
package site

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/noorwave/noorwave.dev/internal/platform/branding"
	platformi18n "github.com/noorwave/noorwave.dev/internal/platform/i18n"
	"github.com/noorwave/noorwave.dev/internal/platform/i18n/catalog"
	"github.com/noorwave/noorwave.dev/internal/platform/timeouts"
	siteapp "github.com/noorwave/noorwave.dev/internal/services/site/app"
	"github.com/noorwave/noorwave.dev/internal/services/site/module"
	"github.com/noorwave/noorwave.dev/internal/services/site/modules"
	"github.com/noorwave/noorwave.dev/internal/services/site/platform/httpx"
	sitei18n "github.com/noorwave/noorwave.dev/internal/services/site/platform/i18n"
	"github.com/noorwave/noorwave.dev/internal/services/site/platform/messages"
	"github.com/noorwave/noorwave.dev/internal/services/site/platform/observability"
	"github.com/noorwave/noorwave.dev/internal/services/site/platform/weberror"
	"github.com/noorwave/noorwave.dev/internal/services/site/routepath"
	"github.com/noorwave/noorwave.dev/internal/services/site/static"
	"github.com/noorwave/noorwave.dev/internal/services/site/storage"
)

// Config defines startup inputs for the site service.
type Config struct {
	HTTPAddr     string
	AssetBaseURL string
	Store        storage.SubmissionStore
	Logger       *log.Logger
}

// Server hosts the site's HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler: localized pages under /{locale},
// the root locale redirect, health, and static assets.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	deps := module.Dependencies{
		Logger:       logger,
		Content:      catalog.NewLoader(catalog.Default(), logger),
		Messages:     messages.NewTranslator(logger),
		Store:        cfg.Store,
		Profile:      branding.Default(),
		AssetBaseURL: cfg.AssetBaseURL,
	}

	pagesHandler, err := siteapp.Compose(deps, modules.DefaultModules())
	if err != nil {
		return nil, fmt.Errorf("compose site modules: %w", err)
	}

	root := http.NewServeMux()
	root.Handle("GET "+routepath.StaticPrefix,
		http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	root.HandleFunc("GET "+routepath.Healthz, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})
	root.HandleFunc("GET /{$}", redirectToPreferredLocale)
	root.Handle("/", pagesHandler)

	return httpx.Chain(root,
		httpx.RecoverPanic(serverErrorPage(deps)),
		httpx.RequestID(),
		httpx.Trace("site"),
		observability.RequestLogger(logger),
	), nil
}

// serverErrorPage renders the localized 500 page after a recovered panic.
// The locale comes from the leading path segment; middleware runs outside
// the mux, so route wildcards are not available here.
func serverErrorPage(deps module.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weberror.WriteServerError(w, r, deps, localeFromPath(r.URL.Path))
	}
}

func localeFromPath(path string) string {
	segments := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)
	return platformi18n.ResolveLocale(segments[0])
}

// redirectToPreferredLocale sends the bare root to the best-match locale
// home using the cookie, then Accept-Language, then the default.
func redirectToPreferredLocale(w http.ResponseWriter, r *http.Request) {
	locale := sitei18n.PreferredLocale(r)
	sitei18n.EnsureLanguageCookie(w, r, locale)
	http.Redirect(w, r, routepath.ForLocale(locale, routepath.PageHome), http.StatusFound)
}

// NewServer validates config and constructs a site server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose site handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown site http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve site http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
