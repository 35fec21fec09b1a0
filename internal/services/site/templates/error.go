package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/noorwave/noorwave.dev/internal/platform/i18n/catalog"
	"github.com/noorwave/noorwave.dev/internal/services/site/routepath"
)

// NotFoundFragment renders the localized 404 page body.
func NotFoundFragment(locale string, common catalog.Document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw(`<section class="error-page">`)
		hw.element("h1", "", common.T("errors.not_found_title"))
		hw.element("p", "", common.T("errors.not_found_body"))
		hw.rawf(`<a class="button" href="%s">%s</a>`,
			templ.EscapeString(routepath.ForLocale(locale, routepath.PageHome)),
			templ.EscapeString(common.T("errors.not_found_link")))
		hw.raw(`</section>`)
		return hw.err
	})
}

// ServerErrorFragment renders the localized 500 page body.
func ServerErrorFragment(common catalog.Document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw(`<section class="error-page">`)
		hw.element("h1", "", common.T("errors.server_error_title"))
		hw.element("p", "", common.T("errors.server_error_body"))
		hw.raw(`</section>`)
		return hw.err
	})
}
