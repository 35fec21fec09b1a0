// Package catalog loads the site's translation documents.
//
// Content is addressed by (locale, namespace) and lives in embedded JSON
// files at locales/<locale>/<namespace>.json. Each document is a nested
// object of display strings; the bundle flattens it into dotted key paths
// ("hero.title"). The base locale is the canonical key shape: at load time
// every other locale must expose at least the base document's key paths, so
// a missing key is a build-time failure rather than a runtime surprise.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// BaseLocale is the canonical source locale for all documents.
const BaseLocale = "en"

// Document holds the flattened display strings for one (locale, namespace)
// pair. Keys are dotted paths into the source JSON object.
type Document map[string]string

// Get returns the value for a key path.
func (d Document) Get(key string) (string, bool) {
	value, ok := d[strings.TrimSpace(key)]
	return value, ok
}

// T returns the value for a key path, or the key itself when absent. Missing
// keys render as their path so broken copy is visible without breaking the
// page.
func (d Document) T(key string) string {
	if value, ok := d.Get(key); ok {
		return value
	}
	return key
}

// KeyPaths returns the sorted key paths of the document.
func (d Document) KeyPaths() []string {
	out := make([]string, 0, len(d))
	for key := range d {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy of the document.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for key, value := range d {
		out[key] = value
	}
	return out
}

// Bundle holds every translation document, keyed by locale and namespace.
type Bundle struct {
	locales map[string]map[string]Document
}

//go:embed locales/*/*.json
var embeddedFS embed.FS

var defaultBundle = mustLoadEmbedded()

// Default returns the process-wide embedded bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the documents embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads documents from locales/<locale>/<namespace>.json paths in
// the provided filesystem and validates key-path parity against the base
// locale.
func LoadFromFS(contentFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(contentFS, "locales/*/*.json")
	if err != nil {
		return nil, fmt.Errorf("glob locale documents: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no translation documents found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]map[string]Document{}}
	for _, filePath := range paths {
		data, err := fs.ReadFile(contentFS, filePath)
		if err != nil {
			return nil, fmt.Errorf("read document %s: %w", filePath, err)
		}
		document, err := ParseDocument(data)
		if err != nil {
			return nil, fmt.Errorf("parse document %s: %w", filePath, err)
		}
		locale := path.Base(path.Dir(filePath))
		namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
		if err := bundle.add(locale, namespace, document); err != nil {
			return nil, fmt.Errorf("document %s: %w", filePath, err)
		}
	}

	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %q is not defined", BaseLocale)
	}
	if err := bundle.validateParity(); err != nil {
		return nil, err
	}
	return bundle, nil
}

// ParseDocument decodes one nested JSON translation document into flattened
// key paths. Leaf values must be strings.
func ParseDocument(data []byte) (Document, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	document := Document{}
	if err := flattenInto(document, "", raw); err != nil {
		return nil, err
	}
	if len(document) == 0 {
		return nil, fmt.Errorf("document has no entries")
	}
	return document, nil
}

func flattenInto(document Document, prefix string, node map[string]any) error {
	for key, value := range node {
		trimmedKey := strings.TrimSpace(key)
		if trimmedKey == "" {
			return fmt.Errorf("blank key under %q", prefix)
		}
		keyPath := trimmedKey
		if prefix != "" {
			keyPath = prefix + "." + trimmedKey
		}
		switch typed := value.(type) {
		case string:
			document[keyPath] = typed
		case map[string]any:
			if err := flattenInto(document, keyPath, typed); err != nil {
				return err
			}
		default:
			return fmt.Errorf("key %q: value must be a string or object", keyPath)
		}
	}
	return nil
}

func (b *Bundle) add(locale, namespace string, document Document) error {
	if locale == "" || locale == "." {
		return fmt.Errorf("locale directory is required")
	}
	if namespace == "" {
		return fmt.Errorf("namespace filename is required")
	}
	namespaces, ok := b.locales[locale]
	if !ok {
		namespaces = map[string]Document{}
		b.locales[locale] = namespaces
	}
	if _, exists := namespaces[namespace]; exists {
		return fmt.Errorf("namespace %q already defined for locale %q", namespace, locale)
	}
	namespaces[namespace] = document
	return nil
}

// validateParity checks that every locale document covers at least the base
// locale's key paths for the same namespace, and that no locale carries a
// namespace the base locale lacks.
func (b *Bundle) validateParity() error {
	base := b.locales[BaseLocale]
	for locale, namespaces := range b.locales {
		if locale == BaseLocale {
			continue
		}
		for namespace, document := range namespaces {
			baseDocument, ok := base[namespace]
			if !ok {
				return fmt.Errorf("locale %q defines namespace %q missing from base locale", locale, namespace)
			}
			for _, keyPath := range baseDocument.KeyPaths() {
				if _, ok := document.Get(keyPath); !ok {
					return fmt.Errorf("locale %q namespace %q: missing key path %q", locale, namespace, keyPath)
				}
			}
		}
		for namespace := range base {
			if _, ok := namespaces[namespace]; !ok {
				return fmt.Errorf("locale %q: missing namespace %q", locale, namespace)
			}
		}
	}
	return nil
}

// HasLocale reports whether the locale has any documents in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns the sorted locale identifiers present in the bundle.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Namespaces returns the sorted namespaces defined for a locale.
func (b *Bundle) Namespaces(locale string) []string {
	if b == nil {
		return nil
	}
	namespaces, ok := b.locales[strings.TrimSpace(locale)]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(namespaces))
	for namespace := range namespaces {
		out = append(out, namespace)
	}
	sort.Strings(out)
	return out
}

// Document returns a copy of the document for (locale, namespace) without
// fallback.
func (b *Bundle) Document(locale, namespace string) (Document, bool) {
	if b == nil {
		return nil, false
	}
	namespaces, ok := b.locales[strings.TrimSpace(locale)]
	if !ok {
		return nil, false
	}
	document, ok := namespaces[strings.TrimSpace(namespace)]
	if !ok {
		return nil, false
	}
	return document.Clone(), true
}

// BaseDocument returns a copy of the base-locale document for a namespace.
// This is the DefaultTranslations value served on any load failure.
func (b *Bundle) BaseDocument(namespace string) (Document, bool) {
	return b.Document(BaseLocale, namespace)
}

// Value returns one display string with base-locale fallback.
func (b *Bundle) Value(locale, namespace, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	trimmedLocale := strings.TrimSpace(locale)
	if namespaces, ok := b.locales[trimmedLocale]; ok {
		if document, ok := namespaces[strings.TrimSpace(namespace)]; ok {
			if value, ok := document.Get(key); ok {
				return value, true
			}
		}
	}
	if trimmedLocale == BaseLocale {
		return "", false
	}
	return b.Value(BaseLocale, namespace, key)
}

func mustLoadEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return bundle
}
