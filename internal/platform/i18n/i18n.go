// Package i18n defines the closed set of site locales and resolves raw
// route parameters into validated locale tags.
//
// The site ships in English and Arabic. English is the default locale and
// the base language for every translation document; Arabic is the only
// right-to-left locale.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

const (
	// LocaleEnglish is the default left-to-right locale.
	LocaleEnglish = "en"
	// LocaleArabic is the right-to-left locale.
	LocaleArabic = "ar"
)

var supportedTags = []language.Tag{language.English, language.Arabic}

var matcher = language.NewMatcher(supportedTags)

// SupportedLocales returns the closed set of locale identifiers.
func SupportedLocales() []string {
	return []string{LocaleEnglish, LocaleArabic}
}

// DefaultLocale returns the locale used when resolution fails.
func DefaultLocale() string {
	return LocaleEnglish
}

// DefaultTag returns the language tag for the default locale.
func DefaultTag() language.Tag {
	return language.English
}

// IsSupported reports whether value names a supported locale exactly.
func IsSupported(value string) bool {
	switch strings.TrimSpace(value) {
	case LocaleEnglish, LocaleArabic:
		return true
	}
	return false
}

// ResolveLocale validates a raw route parameter and returns the active
// locale. Unknown or empty values map to the default locale; regional
// variants collapse to their base ("en-US" resolves to "en").
func ResolveLocale(param string) string {
	locale, _ := ParseLocale(param)
	return locale
}

// ParseLocale returns the supported locale for a raw parameter and whether
// the parameter itself named a supported locale.
func ParseLocale(param string) (string, bool) {
	trimmed := strings.TrimSpace(param)
	if trimmed == "" {
		return DefaultLocale(), false
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return DefaultLocale(), false
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return DefaultLocale(), false
	}
	switch base.String() {
	case LocaleEnglish:
		return LocaleEnglish, true
	case LocaleArabic:
		return LocaleArabic, true
	}
	return DefaultLocale(), false
}

// MatchTags picks the best supported locale for an ordered preference list,
// falling back to the default locale on no useful match.
func MatchTags(preferred []language.Tag) string {
	if len(preferred) == 0 {
		return DefaultLocale()
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return DefaultLocale()
	}
	if index < 0 || index >= len(supportedTags) {
		return DefaultLocale()
	}
	return localeForTag(supportedTags[index])
}

// TagForLocale returns the language tag for a supported locale, defaulting
// on unknown input.
func TagForLocale(locale string) language.Tag {
	if ResolveLocale(locale) == LocaleArabic {
		return language.Arabic
	}
	return language.English
}

// IsRTL reports whether a locale renders right-to-left. Only Arabic does;
// unknown locales resolve to the default locale first and therefore render
// left-to-right.
func IsRTL(locale string) bool {
	return ResolveLocale(locale) == LocaleArabic
}

// Dir returns the document direction attribute value for a locale.
func Dir(locale string) string {
	if IsRTL(locale) {
		return "rtl"
	}
	return "ltr"
}

func localeForTag(tag language.Tag) string {
	base, _ := tag.Base()
	if base.String() == LocaleArabic {
		return LocaleArabic
	}
	return LocaleEnglish
}
