package catalog

import (
	"context"
	"log"
	"sync"
)

type documentKey struct {
	locale    string
	namespace string
}

type cachedDocument struct {
	document Document
	native   bool
}

// Loader serves translation documents with a fail-soft policy: a missing or
// unknown (locale, namespace) pair resolves to the base-locale document and
// the failure is reported on the diagnostic logger, never to the caller. A
// missing translation must never break rendering.
//
// Results are memoized per (locale, namespace). Because cache entries are
// keyed by the locale a lookup was issued for, a lookup for one locale can
// never overwrite content already resolved for another.
type Loader struct {
	bundle *Bundle
	logger *log.Logger

	mu    sync.Mutex
	cache map[documentKey]cachedDocument
}

// NewLoader builds a Loader over bundle. A nil logger falls back to the
// process default logger.
func NewLoader(bundle *Bundle, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{
		bundle: bundle,
		logger: logger,
		cache:  map[documentKey]cachedDocument{},
	}
}

// Load returns the translation document for (locale, namespace). The second
// return value reports whether locale-native content was served; when false
// the base-locale document was substituted. Load never fails: an unknown
// namespace yields an empty document after a diagnostic.
//
// Context cancellation aborts the lookup without caching, so a caller that
// has already moved on cannot seed the cache for the next request.
func (l *Loader) Load(ctx context.Context, locale, namespace string) (Document, bool) {
	if l == nil || l.bundle == nil {
		return Document{}, false
	}
	if err := ctx.Err(); err != nil {
		l.logger.Printf("content load canceled locale=%s namespace=%s err=%v", locale, namespace, err)
		return l.fallback(namespace), false
	}

	key := documentKey{locale: locale, namespace: namespace}
	l.mu.Lock()
	if cached, ok := l.cache[key]; ok {
		l.mu.Unlock()
		return cached.document.Clone(), cached.native
	}
	l.mu.Unlock()

	document, native := l.bundle.Document(locale, namespace)
	if !native {
		l.logger.Printf("content load failed locale=%s namespace=%s: serving base document", locale, namespace)
		document = l.fallback(namespace)
	}

	l.mu.Lock()
	l.cache[key] = cachedDocument{document: document.Clone(), native: native}
	l.mu.Unlock()
	return document, native
}

func (l *Loader) fallback(namespace string) Document {
	document, ok := l.bundle.BaseDocument(namespace)
	if !ok {
		l.logger.Printf("content fallback failed namespace=%s: no base document", namespace)
		return Document{}
	}
	return document
}
