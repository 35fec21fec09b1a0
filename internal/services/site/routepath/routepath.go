// Package routepath centralizes URL paths for the site so handlers and
// templates never hardcode strings that must agree.
//
// Every page lives under a locale segment: /<locale>/about. The locale
// segment is the route parameter the locale resolver validates.
package routepath

import "strings"

const (
	// Root is the bare site root; it redirects to a locale home.
	Root = "/"
	// Healthz is the liveness probe path.
	Healthz = "/healthz"
	// StaticPrefix serves embedded assets.
	StaticPrefix = "/static/"

	// PageHome through PageContact name the locale-relative pages.
	PageHome    = ""
	PageAbout   = "about"
	PagePricing = "pricing"
	PageContact = "contact"

	// Newsletter is the locale-relative newsletter signup endpoint.
	Newsletter = "newsletter"
)

// ForLocale builds the absolute path of a page under a locale: ("ar",
// PageAbout) -> "/ar/about".
func ForLocale(locale, page string) string {
	locale = strings.Trim(strings.TrimSpace(locale), "/")
	page = strings.Trim(strings.TrimSpace(page), "/")
	if page == "" {
		return "/" + locale
	}
	return "/" + locale + "/" + page
}

// SwapLocale rewrites the locale segment of an absolute site path:
// ("/en/about", "ar") -> "/ar/about". Paths without a locale segment are
// returned as the target locale home.
func SwapLocale(path, locale string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(path), "/")
	if trimmed == "" {
		return ForLocale(locale, PageHome)
	}
	segments := strings.SplitN(trimmed, "/", 2)
	if len(segments) < 2 {
		return ForLocale(locale, PageHome)
	}
	return ForLocale(locale, segments[1])
}
