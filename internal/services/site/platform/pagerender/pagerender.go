// Package pagerender composes a page fragment with the shared layout and
// writes the finished HTML response.
package pagerender

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	platformi18n "github.com/noorwave/noorwave.dev/internal/platform/i18n"
	"github.com/noorwave/noorwave.dev/internal/platform/timeouts"
	"github.com/noorwave/noorwave.dev/internal/services/site/module"
	sitei18n "github.com/noorwave/noorwave.dev/internal/services/site/platform/i18n"
	"github.com/noorwave/noorwave.dev/internal/services/site/routepath"
	"github.com/noorwave/noorwave.dev/internal/services/site/templates"
)

// Page describes one rendered page.
type Page struct {
	Locale      string
	Title       string
	Description string
	StatusCode  int
	Fragment    templ.Component
}

// WritePage renders the fragment inside the layout and writes the response.
// The shared chrome needs the locale's common document; loading it is
// fail-soft, so rendering never errors on missing translations.
func WritePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page Page) error {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.ContentLoad)
	defer cancel()

	common, _ := deps.Content.Load(ctx, page.Locale, "common")

	sitei18n.EnsureLanguageCookie(w, r, page.Locale)

	layoutCtx := templates.PageContext{
		Locale:          page.Locale,
		Dir:             platformi18n.Dir(page.Locale),
		Title:           page.Title,
		MetaDescription: page.Description,
		CurrentPath:     r.URL.Path,
		AssetBaseURL:    deps.AssetBaseURL,
		Common:          common,
		Profile:         deps.Profile,
		Languages: sitei18n.BuildLanguageOptions(page.Locale,
			func(locale string) string { return common.T("language." + locale) },
			func(locale string) string { return routepath.SwapLocale(r.URL.Path, locale) },
		),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	status := page.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}
	renderCtx := templ.WithChildren(r.Context(), fragment)
	return templates.Layout(layoutCtx).Render(renderCtx, w)
}
