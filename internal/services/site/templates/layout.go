package templates

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/noorwave/noorwave.dev/internal/services/site/routepath"
)

// Layout renders the full HTML document around its child fragment. The root
// element carries the resolved locale and text direction, which is what
// flips the page between LTR and RTL rendering.
func Layout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)

		hw.rawf(`<!DOCTYPE html><html lang="%s" dir="%s">`,
			templ.EscapeString(page.Locale), templ.EscapeString(page.Dir))
		hw.raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.rawf(`<meta name="description" content="%s">`, templ.EscapeString(page.MetaDescription))
		hw.element("title", "", ComposePageTitle(page.Title))
		hw.rawf(`<link rel="stylesheet" href="%s">`, templ.EscapeString(page.AssetURL("site.css")))
		hw.raw(`</head><body>`)

		renderHeader(hw, page)

		hw.raw(`<main class="page-main">`)
		if hw.err != nil {
			return hw.err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`</main>`)

		renderFooter(hw, page)

		hw.raw(`</body></html>`)
		return hw.err
	})
}

func renderHeader(hw *htmlWriter, page PageContext) {
	hw.raw(`<header class="site-header"><nav class="site-nav">`)
	hw.rawf(`<a class="brand" href="%s">%s</a>`,
		templ.EscapeString(routepath.ForLocale(page.Locale, routepath.PageHome)),
		templ.EscapeString(page.Profile.Name))

	hw.raw(`<ul class="nav-links">`)
	for _, link := range []struct {
		page string
		key  string
	}{
		{routepath.PageHome, "nav.home"},
		{routepath.PageAbout, "nav.about"},
		{routepath.PagePricing, "nav.pricing"},
		{routepath.PageContact, "nav.contact"},
	} {
		hw.rawf(`<li><a href="%s">%s</a></li>`,
			templ.EscapeString(routepath.ForLocale(page.Locale, link.page)),
			templ.EscapeString(page.Common.T(link.key)))
	}
	hw.raw(`</ul>`)

	renderLanguageSwitcher(hw, page)
	hw.raw(`</nav></header>`)
}

func renderLanguageSwitcher(hw *htmlWriter, page PageContext) {
	hw.rawf(`<ul class="lang-switcher" aria-label="%s">`,
		templ.EscapeString(page.Common.T("language.label")))
	for _, option := range page.Languages {
		class := "lang-option"
		if option.Active {
			class = "lang-option active"
		}
		hw.rawf(`<li><a class="%s" href="%s" hreflang="%s">%s</a></li>`,
			templ.EscapeString(class),
			templ.EscapeString(option.URL),
			templ.EscapeString(option.Locale),
			templ.EscapeString(option.Label))
	}
	hw.raw(`</ul>`)
}

func renderFooter(hw *htmlWriter, page PageContext) {
	hw.raw(`<footer class="site-footer">`)
	hw.element("p", "footer-tagline", page.Common.T("footer.tagline"))
	hw.rawf(`<p class="footer-contact">%s <a href="mailto:%s">%s</a></p>`,
		templ.EscapeString(page.Common.T("footer.contact_prompt")),
		templ.EscapeString(page.Profile.ContactEmail),
		templ.EscapeString(page.Profile.ContactEmail))

	hw.raw(`<ul class="footer-social">`)
	for _, social := range []struct {
		label string
		url   string
	}{
		{"GitHub", page.Profile.Social.GitHub},
		{"Twitter", page.Profile.Social.Twitter},
		{"LinkedIn", page.Profile.Social.LinkedIn},
	} {
		if social.url == "" {
			continue
		}
		hw.rawf(`<li><a href="%s" rel="noopener">%s</a></li>`,
			templ.EscapeString(social.url), templ.EscapeString(social.label))
	}
	hw.raw(`</ul>`)

	hw.element("p", "footer-rights",
		"© "+strconv.Itoa(time.Now().Year())+" "+page.Profile.Name+". "+page.Common.T("footer.rights"))
	hw.raw(`</footer>`)
}
