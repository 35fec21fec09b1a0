// Package messages renders short, localized feedback strings for form
// handlers. Page copy comes from the translation catalog; these are the
// transactional one-liners (confirmations, validation errors) that need
// template data and plural support.
package messages

import (
	"embed"
	"encoding/json"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	platformi18n "github.com/noorwave/noorwave.dev/internal/platform/i18n"
)

//go:embed active.*.json
var localeFS embed.FS

// Translator wraps a go-i18n bundle over the embedded message files.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	logger          *log.Logger
}

// NewTranslator loads the embedded message files. A nil logger falls back to
// the process default logger.
func NewTranslator(logger *log.Logger) *Translator {
	if logger == nil {
		logger = log.Default()
	}
	bundle := i18n.NewBundle(platformi18n.DefaultTag())
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, file := range []string{"active.en.json", "active.ar.json"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Printf("messages: failed to load %s: %v", file, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: platformi18n.DefaultTag(),
		logger:          logger,
	}
}

// T renders the message identified by key for the given locale. Missing
// keys or locales fall back to the default language, then to the key
// itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	return t.localize(locale, &i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
}

// TCount renders a pluralized message for count.
func (t *Translator) TCount(locale, key string, count int, data map[string]any) string {
	if data == nil {
		data = map[string]any{}
	}
	data["Count"] = count
	return t.localize(locale, &i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
		PluralCount:  count,
	})
}

func (t *Translator) localize(locale string, cfg *i18n.LocalizeConfig) string {
	if t == nil || t.bundle == nil || cfg == nil {
		return ""
	}
	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(cfg)
	if err != nil {
		t.logger.Printf("messages: localize failed key=%s locales=%v err=%v", cfg.MessageID, languages, err)
		return cfg.MessageID
	}
	return msg
}
