package contact

import (
	"context"
	"net/http"

	"github.com/noorwave/noorwave.dev/internal/platform/i18n/catalog"
	"github.com/noorwave/noorwave.dev/internal/platform/timeouts"
	"github.com/noorwave/noorwave.dev/internal/services/site/module"
	apperrors "github.com/noorwave/noorwave.dev/internal/services/site/platform/errors"
	sitei18n "github.com/noorwave/noorwave.dev/internal/services/site/platform/i18n"
	"github.com/noorwave/noorwave.dev/internal/services/site/platform/pagerender"
	"github.com/noorwave/noorwave.dev/internal/services/site/templates"
)

type handler struct {
	deps    module.Dependencies
	service *Service
}

func (h handler) loadDocument(r *http.Request, locale, namespace string) catalog.Document {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.ContentLoad)
	defer cancel()
	doc, _ := h.deps.Content.Load(ctx, locale, namespace)
	return doc
}

func (h handler) contactPage(w http.ResponseWriter, r *http.Request) {
	locale := sitei18n.RequestLocale(r)
	doc := h.loadDocument(r, locale, "contact")
	h.renderContact(w, r, locale, doc, templates.ContactForm{}, http.StatusOK)
}

func (h handler) contactSubmit(w http.ResponseWriter, r *http.Request) {
	locale := sitei18n.RequestLocale(r)
	doc := h.loadDocument(r, locale, "contact")

	if err := r.ParseForm(); err != nil {
		formErr := apperrors.E(apperrors.KindInvalidInput, "parse contact form")
		h.renderContact(w, r, locale, doc, templates.ContactForm{
			Flash: templates.Flash{Kind: "error", Text: h.localizedError(locale, formErr)},
		}, apperrors.HTTPStatus(formErr))
		return
	}

	form := templates.ContactForm{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.StoreWrite)
	defer cancel()

	err := h.service.SubmitContact(ctx, locale, form.Name, form.Email, form.Message)
	if err != nil {
		form.Flash = templates.Flash{Kind: "error", Text: h.localizedError(locale, err)}
		h.renderContact(w, r, locale, doc, form, apperrors.HTTPStatus(err))
		return
	}

	confirmation := h.deps.Messages.T(locale, "contact_received", map[string]any{"Name": form.Name})
	h.renderContact(w, r, locale, doc, templates.ContactForm{
		Flash: templates.Flash{Kind: "success", Text: confirmation},
	}, http.StatusOK)
}

func (h handler) newsletterSubmit(w http.ResponseWriter, r *http.Request) {
	locale := sitei18n.RequestLocale(r)
	doc := h.loadDocument(r, locale, "home")

	form := templates.NewsletterForm{}
	if err := r.ParseForm(); err == nil {
		form.Email = r.PostFormValue("email")
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.StoreWrite)
	defer cancel()

	others, err := h.service.SubscribeNewsletter(ctx, locale, form.Email)
	if err != nil {
		form.Flash = templates.Flash{Kind: "error", Text: h.localizedError(locale, err)}
		h.renderHome(w, r, locale, doc, form, apperrors.HTTPStatus(err))
		return
	}

	form = templates.NewsletterForm{Flash: templates.Flash{
		Kind: "success",
		Text: h.deps.Messages.TCount(locale, "newsletter_subscribed", others, nil),
	}}
	h.renderHome(w, r, locale, doc, form, http.StatusOK)
}

// localizedError maps a typed error's localization key through the message
// translator; errors without a key fall back to the generic store failure.
func (h handler) localizedError(locale string, err error) string {
	key := apperrors.LocalizationKey(err)
	if key == "" {
		key = "contact_store_failed"
	}
	return h.deps.Messages.T(locale, key, nil)
}

func (h handler) renderContact(w http.ResponseWriter, r *http.Request, locale string, doc catalog.Document, form templates.ContactForm, status int) {
	err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Locale:      locale,
		Title:       doc.T("meta.title"),
		Description: doc.T("meta.description"),
		StatusCode:  status,
		Fragment:    templates.ContactFragment(locale, doc, form),
	})
	if err != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("render contact page path=%s: %v", r.URL.Path, err)
	}
}

func (h handler) renderHome(w http.ResponseWriter, r *http.Request, locale string, doc catalog.Document, form templates.NewsletterForm, status int) {
	err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Locale:      locale,
		Title:       doc.T("meta.title"),
		Description: doc.T("meta.description"),
		StatusCode:  status,
		Fragment:    templates.HomeFragment(locale, doc, form),
	})
	if err != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("render home page path=%s: %v", r.URL.Path, err)
	}
}
