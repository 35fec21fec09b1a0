// Package templates renders the site's HTML as templ components.
package templates

import (
	"strings"

	"github.com/noorwave/noorwave.dev/internal/platform/branding"
	"github.com/noorwave/noorwave.dev/internal/platform/i18n/catalog"
	sitei18n "github.com/noorwave/noorwave.dev/internal/services/site/platform/i18n"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Locale          string
	Dir             string
	Title           string
	MetaDescription string
	CurrentPath     string
	AssetBaseURL    string
	Common          catalog.Document
	Profile         branding.Profile
	Languages       []sitei18n.LanguageOption
}

// Flash is a one-shot feedback message rendered above a form.
type Flash struct {
	Kind string // "success" or "error"
	Text string
}

// HasMessage reports whether the flash should render.
func (f Flash) HasMessage() bool {
	return strings.TrimSpace(f.Text) != ""
}

// AssetURL resolves a static asset path against the configured asset base.
func (p PageContext) AssetURL(name string) string {
	base := strings.TrimSuffix(strings.TrimSpace(p.AssetBaseURL), "/")
	return base + "/static/" + strings.TrimPrefix(name, "/")
}

// ComposePageTitle appends the brand suffix unless already present.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	if strings.HasSuffix(title, "| "+branding.AppName) {
		return title
	}
	return title + " | " + branding.AppName
}
