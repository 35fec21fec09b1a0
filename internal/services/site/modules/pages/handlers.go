package pages

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/noorwave/noorwave.dev/internal/platform/i18n/catalog"
	"github.com/noorwave/noorwave.dev/internal/platform/timeouts"
	"github.com/noorwave/noorwave.dev/internal/services/site/module"
	sitei18n "github.com/noorwave/noorwave.dev/internal/services/site/platform/i18n"
	"github.com/noorwave/noorwave.dev/internal/services/site/platform/pagerender"
	"github.com/noorwave/noorwave.dev/internal/services/site/platform/weberror"
	"github.com/noorwave/noorwave.dev/internal/services/site/templates"
)

type handler struct {
	deps module.Dependencies
}

func (h handler) loadDocument(r *http.Request, locale, namespace string) catalog.Document {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.ContentLoad)
	defer cancel()
	doc, _ := h.deps.Content.Load(ctx, locale, namespace)
	return doc
}

func (h handler) home(w http.ResponseWriter, r *http.Request) {
	locale := sitei18n.RequestLocale(r)
	doc := h.loadDocument(r, locale, "home")

	h.writePage(w, r, locale, doc, templates.HomeFragment(locale, doc, templates.NewsletterForm{}))
}

func (h handler) about(w http.ResponseWriter, r *http.Request) {
	locale := sitei18n.RequestLocale(r)
	doc := h.loadDocument(r, locale, "about")

	h.writePage(w, r, locale, doc, templates.AboutFragment(doc))
}

func (h handler) pricing(w http.ResponseWriter, r *http.Request) {
	locale := sitei18n.RequestLocale(r)
	doc := h.loadDocument(r, locale, "pricing")

	h.writePage(w, r, locale, doc, templates.PricingFragment(locale, doc))
}

func (h handler) notFound(w http.ResponseWriter, r *http.Request) {
	locale := sitei18n.RequestLocale(r)
	weberror.WriteNotFound(w, r, h.deps, locale)
}

func (h handler) writePage(w http.ResponseWriter, r *http.Request, locale string, doc catalog.Document, fragment templ.Component) {
	err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Locale:      locale,
		Title:       doc.T("meta.title"),
		Description: doc.T("meta.description"),
		Fragment:    fragment,
	})
	if err != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("render page path=%s: %v", r.URL.Path, err)
	}
}
