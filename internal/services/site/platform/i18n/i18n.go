// Package i18n resolves the active locale for site requests.
//
// Pages carry their locale as the leading path segment, so resolution is a
// pure function of the route parameter. The preference chain (cookie, then
// Accept-Language) only decides where the bare root redirects.
package i18n

import (
	"net/http"
	"strings"
	"time"

	platformi18n "github.com/noorwave/noorwave.dev/internal/platform/i18n"
	"golang.org/x/text/language"
)

const (
	// LocalePathParam names the route wildcard holding the locale segment.
	LocalePathParam = "locale"
	// LangCookieName stores the visitor's last locale choice.
	LangCookieName = "nw_lang"
)

// LanguageOption represents one entry in the language switcher.
type LanguageOption struct {
	Locale string
	Label  string
	URL    string
	Active bool
}

// RequestLocale resolves the active locale from the request's locale path
// segment. Unknown or missing segments map to the default locale.
func RequestLocale(r *http.Request) string {
	if r == nil {
		return platformi18n.DefaultLocale()
	}
	return platformi18n.ResolveLocale(r.PathValue(LocalePathParam))
}

// PreferredLocale picks the locale for requests without a locale segment:
// the language cookie wins, then Accept-Language, then the default.
func PreferredLocale(r *http.Request) string {
	if r == nil {
		return platformi18n.DefaultLocale()
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if locale, ok := platformi18n.ParseLocale(cookie.Value); ok {
			return locale
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags)
		}
	}
	return platformi18n.DefaultLocale()
}

// SetLanguageCookie persists the resolved locale on the response.
func SetLanguageCookie(w http.ResponseWriter, locale string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    platformi18n.ResolveLocale(locale),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// EnsureLanguageCookie syncs the language cookie to the active locale.
func EnsureLanguageCookie(w http.ResponseWriter, r *http.Request, locale string) {
	resolved := platformi18n.ResolveLocale(locale)
	if r != nil {
		if cookie, err := r.Cookie(LangCookieName); err == nil {
			if strings.TrimSpace(cookie.Value) == resolved {
				return
			}
		}
	}
	SetLanguageCookie(w, resolved)
}

// BuildLanguageOptions returns switcher entries for every supported locale.
// Labels come from labelFor; URLs from urlFor, usually the current path with
// the locale segment swapped.
func BuildLanguageOptions(active string, labelFor func(locale string) string, urlFor func(locale string) string) []LanguageOption {
	activeLocale := platformi18n.ResolveLocale(active)
	options := make([]LanguageOption, 0, len(platformi18n.SupportedLocales()))
	for _, locale := range platformi18n.SupportedLocales() {
		label := locale
		if labelFor != nil {
			if resolved := strings.TrimSpace(labelFor(locale)); resolved != "" {
				label = resolved
			}
		}
		url := "/" + locale
		if urlFor != nil {
			if resolved := strings.TrimSpace(urlFor(locale)); resolved != "" {
				url = resolved
			}
		}
		options = append(options, LanguageOption{
			Locale: locale,
			Label:  label,
			URL:    url,
			Active: locale == activeLocale,
		})
	}
	return options
}
