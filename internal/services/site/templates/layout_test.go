package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/noorwave/noorwave.dev/internal/platform/branding"
	"github.com/noorwave/noorwave.dev/internal/platform/i18n/catalog"
	sitei18n "github.com/noorwave/noorwave.dev/internal/services/site/platform/i18n"
)

func testPageContext(t *testing.T, locale, dir string) PageContext {
	t.Helper()
	common, ok := catalog.Default().Document(locale, "common")
	if !ok {
		t.Fatalf("Document(%q, common) not found", locale)
	}
	return PageContext{
		Locale:          locale,
		Dir:             dir,
		Title:           "Test",
		MetaDescription: "A test page.",
		CurrentPath:     "/" + locale,
		Common:          common,
		Profile:         branding.Default(),
		Languages: []sitei18n.LanguageOption{
			{Locale: "en", Label: "English", URL: "/en", Active: locale == "en"},
			{Locale: "ar", Label: "العربية", URL: "/ar", Active: locale == "ar"},
		},
	}
}

func renderToString(t *testing.T, component templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := component.Render(context.Background(), &sb); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return sb.String()
}

func renderLayout(t *testing.T, page PageContext, child templ.Component) string {
	t.Helper()
	ctx := templ.WithChildren(context.Background(), child)
	var sb strings.Builder
	if err := Layout(page).Render(ctx, &sb); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return sb.String()
}

func TestLayoutArabicDirection(t *testing.T) {
	t.Parallel()

	page := testPageContext(t, "ar", "rtl")
	html := renderLayout(t, page, templ.NopComponent)

	for _, want := range []string{
		`<html lang="ar" dir="rtl">`,
		`href="/ar/about"`,
		"من نحن",
		`hreflang="en"`,
		`class="lang-option active" href="/ar"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("layout output missing %q:\n%s", want, html)
		}
	}
}

func TestLayoutEnglishDirection(t *testing.T) {
	t.Parallel()

	page := testPageContext(t, "en", "ltr")
	html := renderLayout(t, page, templ.NopComponent)

	for _, want := range []string{
		`<html lang="en" dir="ltr">`,
		`href="/en/pricing"`,
		">Pricing</a>",
		`<title>Test | Noorwave</title>`,
		"All rights reserved.",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("layout output missing %q:\n%s", want, html)
		}
	}
}

func TestLayoutRendersChild(t *testing.T) {
	t.Parallel()

	page := testPageContext(t, "en", "ltr")
	child := templ.Raw(`<p id="child-marker">hello</p>`)
	html := renderLayout(t, page, child)

	if !strings.Contains(html, `<p id="child-marker">hello</p>`) {
		t.Fatalf("child fragment not rendered:\n%s", html)
	}
	if idx := strings.Index(html, "child-marker"); idx < strings.Index(html, "<main") {
		t.Fatalf("child rendered outside main element")
	}
}

func TestLayoutEscapesMetaDescription(t *testing.T) {
	t.Parallel()

	page := testPageContext(t, "en", "ltr")
	page.MetaDescription = `"><script>alert(1)</script>`
	html := renderLayout(t, page, templ.NopComponent)

	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatalf("meta description not escaped:\n%s", html)
	}
}

func TestComposePageTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", "Noorwave"},
		{"About", "About | Noorwave"},
		{"About | Noorwave", "About | Noorwave"},
	}
	for _, tt := range tests {
		if got := ComposePageTitle(tt.in); got != tt.want {
			t.Fatalf("ComposePageTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAssetURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base string
		name string
		want string
	}{
		{"", "site.css", "/static/site.css"},
		{"https://cdn.noorwave.dev", "site.css", "https://cdn.noorwave.dev/static/site.css"},
		{"https://cdn.noorwave.dev/", "/site.css", "https://cdn.noorwave.dev/static/site.css"},
	}
	for _, tt := range tests {
		page := PageContext{AssetBaseURL: tt.base}
		if got := page.AssetURL(tt.name); got != tt.want {
			t.Fatalf("AssetURL(%q) with base %q = %q, want %q", tt.name, tt.base, got, tt.want)
		}
	}
}
