package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/noorwave/noorwave.dev/internal/platform/i18n/catalog"
	"github.com/noorwave/noorwave.dev/internal/services/site/routepath"
)

// ContactForm carries submitted values back into the form so a failed
// validation does not erase what the visitor typed.
type ContactForm struct {
	Name    string
	Email   string
	Message string
	Flash   Flash
}

// ContactFragment renders the contact page with its submission form.
func ContactFragment(locale string, doc catalog.Document, form ContactForm) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)

		hw.raw(`<section class="contact-intro">`)
		hw.element("h1", "", doc.T("intro.title"))
		hw.element("p", "", doc.T("intro.body"))
		hw.raw(`</section>`)

		hw.raw(`<section class="contact-form-section">`)
		renderFlash(hw, form.Flash)
		hw.rawf(`<form method="post" action="%s" class="contact-form">`,
			templ.EscapeString(routepath.ForLocale(locale, routepath.PageContact)))

		hw.rawf(`<label for="contact-name">%s</label>`,
			templ.EscapeString(doc.T("form.name_label")))
		hw.rawf(`<input id="contact-name" type="text" name="name" value="%s" required>`,
			templ.EscapeString(form.Name))

		hw.rawf(`<label for="contact-email">%s</label>`,
			templ.EscapeString(doc.T("form.email_label")))
		hw.rawf(`<input id="contact-email" type="email" name="email" value="%s" required>`,
			templ.EscapeString(form.Email))

		hw.rawf(`<label for="contact-message">%s</label>`,
			templ.EscapeString(doc.T("form.message_label")))
		hw.rawf(`<textarea id="contact-message" name="message" rows="6" required>%s</textarea>`,
			templ.EscapeString(form.Message))

		hw.rawf(`<button type="submit">%s</button>`,
			templ.EscapeString(doc.T("form.submit")))
		hw.raw(`</form></section>`)
		return hw.err
	})
}

func renderFlash(hw *htmlWriter, flash Flash) {
	if !flash.HasMessage() {
		return
	}
	kind := flash.Kind
	if kind == "" {
		kind = "info"
	}
	hw.rawf(`<p class="flash flash-%s" role="status">%s</p>`,
		templ.EscapeString(kind), templ.EscapeString(flash.Text))
}
