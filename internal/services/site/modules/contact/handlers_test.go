package contact

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/noorwave/noorwave.dev/internal/platform/branding"
	"github.com/noorwave/noorwave.dev/internal/platform/i18n/catalog"
	"github.com/noorwave/noorwave.dev/internal/services/site/module"
	"github.com/noorwave/noorwave.dev/internal/services/site/platform/messages"
	"github.com/noorwave/noorwave.dev/internal/services/site/storage"
)

func testMux(t *testing.T, store storage.SubmissionStore) *http.ServeMux {
	t.Helper()
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	deps := module.Dependencies{
		Logger:   logger,
		Content:  catalog.NewLoader(catalog.Default(), logger),
		Messages: messages.NewTranslator(logger),
		Store:    store,
		Profile:  branding.Default(),
	}
	routes, err := New().Routes(deps)
	if err != nil {
		t.Fatalf("Routes() error = %v", err)
	}
	mux := http.NewServeMux()
	for _, route := range routes {
		mux.Handle(route.Pattern, route.Handler)
	}
	return mux
}

func postForm(t *testing.T, mux *http.ServeMux, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return w
}

func TestContactPage(t *testing.T) {
	t.Parallel()

	mux := testMux(t, &memoryStore{})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/en/contact", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	html := w.Body.String()
	for _, want := range []string{
		"Tell us about your project",
		`action="/en/contact"`,
		`name="message"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("contact page missing %q:\n%s", want, html)
		}
	}
}

func TestContactSubmitSuccess(t *testing.T) {
	t.Parallel()

	store := &memoryStore{}
	mux := testMux(t, store)

	w := postForm(t, mux, "/en/contact", url.Values{
		"name":    {"Lina"},
		"email":   {"lina@example.com"},
		"message": {"A bilingual site for our bakery."},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	html := w.Body.String()
	if !strings.Contains(html, "Thanks Lina, your message is on its way") {
		t.Fatalf("confirmation missing:\n%s", html)
	}
	if !strings.Contains(html, `class="flash flash-success"`) {
		t.Fatalf("success flash missing:\n%s", html)
	}
	if len(store.contacts) != 1 {
		t.Fatalf("stored %d submissions, want 1", len(store.contacts))
	}
}

func TestContactSubmitValidationError(t *testing.T) {
	t.Parallel()

	store := &memoryStore{}
	mux := testMux(t, store)

	w := postForm(t, mux, "/en/contact", url.Values{
		"name":    {""},
		"email":   {"lina@example.com"},
		"message": {"hello"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	html := w.Body.String()
	if !strings.Contains(html, "Please tell us your name.") {
		t.Fatalf("validation message missing:\n%s", html)
	}
	if !strings.Contains(html, `value="lina@example.com"`) {
		t.Fatalf("submitted email should be preserved:\n%s", html)
	}
	if len(store.contacts) != 0 {
		t.Fatalf("invalid submission should not be stored")
	}
}

func TestContactSubmitMalformedBody(t *testing.T) {
	t.Parallel()

	store := &memoryStore{}
	mux := testMux(t, store)

	r := httptest.NewRequest(http.MethodPost, "/en/contact", strings.NewReader("name=%zz"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "We could not record your message.") {
		t.Fatalf("generic failure copy missing:\n%s", w.Body.String())
	}
	if len(store.contacts) != 0 {
		t.Fatalf("malformed submission should not be stored")
	}
}

func TestContactSubmitArabicLocalizedError(t *testing.T) {
	t.Parallel()

	mux := testMux(t, &memoryStore{})

	w := postForm(t, mux, "/ar/contact", url.Values{
		"name":    {""},
		"email":   {"a@b.dev"},
		"message": {"test"},
	})

	html := w.Body.String()
	if !strings.Contains(html, `<html lang="ar" dir="rtl">`) {
		t.Fatalf("arabic error page should render RTL:\n%s", html)
	}
	if strings.Contains(html, "Please tell us your name.") {
		t.Fatalf("error copy should be localized, not English:\n%s", html)
	}
}

func TestNewsletterSubmitSuccess(t *testing.T) {
	t.Parallel()

	store := &memoryStore{}
	mux := testMux(t, store)

	w := postForm(t, mux, "/en/newsletter", url.Values{"email": {"reader@example.com"}})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `class="flash flash-success"`) {
		t.Fatalf("success flash missing:\n%s", w.Body.String())
	}
	if len(store.signups) != 1 {
		t.Fatalf("stored %d signups, want 1", len(store.signups))
	}
}

func TestNewsletterSubmitDuplicate(t *testing.T) {
	t.Parallel()

	store := &memoryStore{}
	mux := testMux(t, store)

	form := url.Values{"email": {"reader@example.com"}}
	postForm(t, mux, "/en/newsletter", form)
	w := postForm(t, mux, "/en/newsletter", form)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "This address is already subscribed.") {
		t.Fatalf("duplicate message missing:\n%s", w.Body.String())
	}
}

func TestNewsletterSubmitInvalidEmail(t *testing.T) {
	t.Parallel()

	mux := testMux(t, &memoryStore{})

	w := postForm(t, mux, "/en/newsletter", url.Values{"email": {"nope"}})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "That email address does not look right.") {
		t.Fatalf("invalid email message missing:\n%s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `value="nope"`) {
		t.Fatalf("submitted email should be preserved:\n%s", w.Body.String())
	}
}

func TestNewsletterGetMethodNotAllowed(t *testing.T) {
	t.Parallel()

	mux := testMux(t, &memoryStore{})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/en/newsletter", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
	if allow := w.Header().Get("Allow"); allow != http.MethodPost {
		t.Fatalf("Allow = %q, want %q", allow, http.MethodPost)
	}
}
