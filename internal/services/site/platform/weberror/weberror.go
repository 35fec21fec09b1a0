// Package weberror writes localized HTML error pages.
package weberror

import (
	"context"
	"net/http"

	"github.com/noorwave/noorwave.dev/internal/platform/i18n/catalog"
	"github.com/noorwave/noorwave.dev/internal/platform/timeouts"
	"github.com/noorwave/noorwave.dev/internal/services/site/module"
	"github.com/noorwave/noorwave.dev/internal/services/site/platform/pagerender"
	"github.com/noorwave/noorwave.dev/internal/services/site/templates"
)

// WriteNotFound renders the localized 404 page.
func WriteNotFound(w http.ResponseWriter, r *http.Request, deps module.Dependencies, locale string) {
	common := loadCommon(r, deps, locale)
	page := pagerender.Page{
		Locale:      locale,
		Title:       common.T("errors.not_found_title"),
		Description: common.T("errors.not_found_body"),
		StatusCode:  http.StatusNotFound,
		Fragment:    templates.NotFoundFragment(locale, common),
	}
	if err := pagerender.WritePage(w, r, deps, page); err != nil && deps.Logger != nil {
		deps.Logger.Printf("render not found page: %v", err)
	}
}

// WriteServerError renders the localized 500 page.
func WriteServerError(w http.ResponseWriter, r *http.Request, deps module.Dependencies, locale string) {
	common := loadCommon(r, deps, locale)
	page := pagerender.Page{
		Locale:      locale,
		Title:       common.T("errors.server_error_title"),
		Description: common.T("errors.server_error_body"),
		StatusCode:  http.StatusInternalServerError,
		Fragment:    templates.ServerErrorFragment(common),
	}
	if err := pagerender.WritePage(w, r, deps, page); err != nil && deps.Logger != nil {
		deps.Logger.Printf("render server error page: %v", err)
	}
}

func loadCommon(r *http.Request, deps module.Dependencies, locale string) catalog.Document {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.ContentLoad)
	defer cancel()
	document, _ := deps.Content.Load(ctx, locale, "common")
	return document
}
