package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/noorwave/noorwave.dev/internal/platform/i18n/catalog"
	"github.com/noorwave/noorwave.dev/internal/services/site/routepath"
)

// NewsletterForm carries the newsletter signup state into the home page.
type NewsletterForm struct {
	Email string
	Flash Flash
}

// HomeFragment renders the landing page content.
func HomeFragment(locale string, doc catalog.Document, newsletter NewsletterForm) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)

		hw.raw(`<section class="hero">`)
		hw.element("h1", "hero-title", doc.T("hero.title"))
		hw.element("p", "hero-subtitle", doc.T("hero.subtitle"))
		hw.raw(`<div class="hero-actions">`)
		hw.rawf(`<a class="button primary" href="%s">%s</a>`,
			templ.EscapeString(routepath.ForLocale(locale, routepath.PageContact)),
			templ.EscapeString(doc.T("hero.cta")))
		hw.rawf(`<a class="button" href="%s">%s</a>`,
			templ.EscapeString(routepath.ForLocale(locale, routepath.PagePricing)),
			templ.EscapeString(doc.T("hero.secondary_cta")))
		hw.raw(`</div></section>`)

		hw.raw(`<section class="features">`)
		hw.element("h2", "", doc.T("features.title"))
		hw.raw(`<div class="feature-grid">`)
		for _, feature := range []string{"design", "engineering", "localization"} {
			hw.raw(`<article class="feature">`)
			hw.element("h3", "", doc.T("features."+feature+".title"))
			hw.element("p", "", doc.T("features."+feature+".body"))
			hw.raw(`</article>`)
		}
		hw.raw(`</div></section>`)

		renderNewsletterSection(hw, locale, doc, newsletter)
		return hw.err
	})
}

func renderNewsletterSection(hw *htmlWriter, locale string, doc catalog.Document, form NewsletterForm) {
	hw.raw(`<section class="newsletter">`)
	hw.element("h2", "", doc.T("newsletter.title"))
	renderFlash(hw, form.Flash)
	hw.rawf(`<form method="post" action="%s" class="newsletter-form">`,
		templ.EscapeString(routepath.ForLocale(locale, routepath.Newsletter)))
	hw.rawf(`<input type="email" name="email" value="%s" placeholder="%s" required>`,
		templ.EscapeString(form.Email),
		templ.EscapeString(doc.T("newsletter.placeholder")))
	hw.rawf(`<button type="submit">%s</button>`,
		templ.EscapeString(doc.T("newsletter.button")))
	hw.raw(`</form></section>`)
}

// AboutFragment renders the studio's about page content.
func AboutFragment(doc catalog.Document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)

		hw.raw(`<section class="about-intro">`)
		hw.element("h1", "", doc.T("intro.title"))
		hw.element("p", "", doc.T("intro.body"))
		hw.raw(`</section>`)

		hw.raw(`<section class="values">`)
		hw.element("h2", "", doc.T("values.title"))
		hw.raw(`<div class="value-grid">`)
		for _, value := range []string{"craft", "clarity", "ownership"} {
			hw.raw(`<article class="value">`)
			hw.element("h3", "", doc.T("values."+value+".title"))
			hw.element("p", "", doc.T("values."+value+".body"))
			hw.raw(`</article>`)
		}
		hw.raw(`</div></section>`)
		return hw.err
	})
}

// PricingFragment renders the pricing tiers and the closing call to action.
func PricingFragment(locale string, doc catalog.Document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)

		hw.raw(`<section class="pricing-intro">`)
		hw.element("h1", "", doc.T("intro.title"))
		hw.element("p", "", doc.T("intro.body"))
		hw.raw(`</section>`)

		hw.raw(`<section class="tiers"><div class="tier-grid">`)
		for _, tier := range []string{"site", "product", "retainer"} {
			hw.raw(`<article class="tier">`)
			hw.element("h2", "", doc.T("tiers."+tier+".name"))
			hw.element("p", "tier-price", doc.T("tiers."+tier+".price"))
			hw.element("p", "", doc.T("tiers."+tier+".body"))
			hw.raw(`</article>`)
		}
		hw.raw(`</div></section>`)

		hw.raw(`<section class="pricing-cta">`)
		hw.element("h2", "", doc.T("cta.title"))
		hw.element("p", "", doc.T("cta.body"))
		hw.rawf(`<a class="button primary" href="%s">%s</a>`,
			templ.EscapeString(routepath.ForLocale(locale, routepath.PageContact)),
			templ.EscapeString(doc.T("cta.button")))
		hw.raw(`</section>`)
		return hw.err
	})
}
