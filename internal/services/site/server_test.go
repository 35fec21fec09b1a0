package site

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/noorwave/noorwave.dev/internal/platform/branding"
	"github.com/noorwave/noorwave.dev/internal/platform/i18n/catalog"
	"github.com/noorwave/noorwave.dev/internal/services/site/module"
	"github.com/noorwave/noorwave.dev/internal/services/site/platform/httpx"
	sitei18n "github.com/noorwave/noorwave.dev/internal/services/site/platform/i18n"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	var buf bytes.Buffer
	handler, err := NewHandler(Config{
		HTTPAddr: "localhost:0",
		Logger:   log.New(&buf, "", 0),
	})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return handler
}

func serve(t *testing.T, handler http.Handler, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func TestRootRedirectsToDefaultLocale(t *testing.T) {
	t.Parallel()

	w := serve(t, testHandler(t), httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if got := w.Header().Get("Location"); got != "/en" {
		t.Fatalf("Location = %q, want %q", got, "/en")
	}
}

func TestRootRedirectHonorsAcceptLanguage(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "ar-EG,ar;q=0.9,en;q=0.5")
	w := serve(t, testHandler(t), r)

	if got := w.Header().Get("Location"); got != "/ar" {
		t.Fatalf("Location = %q, want %q", got, "/ar")
	}
}

func TestRootRedirectHonorsLanguageCookie(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "en")
	r.AddCookie(&http.Cookie{Name: sitei18n.LangCookieName, Value: "ar"})
	w := serve(t, testHandler(t), r)

	if got := w.Header().Get("Location"); got != "/ar" {
		t.Fatalf("Location = %q, want %q", got, "/ar")
	}
}

func TestLocalizedPagesServed(t *testing.T) {
	t.Parallel()

	handler := testHandler(t)

	en := serve(t, handler, httptest.NewRequest(http.MethodGet, "/en/about", nil))
	if en.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", en.Code, http.StatusOK)
	}
	if !strings.Contains(en.Body.String(), `<html lang="en" dir="ltr">`) {
		t.Fatalf("english page attributes missing:\n%s", en.Body.String())
	}

	ar := serve(t, handler, httptest.NewRequest(http.MethodGet, "/ar/about", nil))
	if !strings.Contains(ar.Body.String(), `<html lang="ar" dir="rtl">`) {
		t.Fatalf("arabic page attributes missing:\n%s", ar.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	w := serve(t, testHandler(t), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Fatalf("healthz body = %q", w.Body.String())
	}
}

func TestStaticAssetServed(t *testing.T) {
	t.Parallel()

	w := serve(t, testHandler(t), httptest.NewRequest(http.MethodGet, "/static/site.css", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "--accent") {
		t.Fatalf("stylesheet content missing:\n%s", w.Body.String())
	}
}

func TestRequestIDEchoed(t *testing.T) {
	t.Parallel()

	w := serve(t, testHandler(t), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("request id header not set")
	}
}

func TestPanicRendersLocalizedServerErrorPage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	deps := module.Dependencies{
		Logger:  logger,
		Content: catalog.NewLoader(catalog.Default(), logger),
		Profile: branding.Default(),
	}
	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), httpx.RecoverPanic(serverErrorPage(deps)))

	ar := serve(t, h, httptest.NewRequest(http.MethodGet, "/ar/pricing", nil))
	if ar.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", ar.Code, http.StatusInternalServerError)
	}
	html := ar.Body.String()
	if !strings.Contains(html, `<html lang="ar" dir="rtl">`) {
		t.Fatalf("arabic 500 page should render RTL:\n%s", html)
	}
	if !strings.Contains(html, "حدث خطأ ما") {
		t.Fatalf("arabic 500 copy missing:\n%s", html)
	}

	en := serve(t, h, httptest.NewRequest(http.MethodGet, "/en", nil))
	if !strings.Contains(en.Body.String(), "Something went wrong") {
		t.Fatalf("english 500 copy missing:\n%s", en.Body.String())
	}
}

func TestLocaleFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"/ar/pricing", "ar"},
		{"/en", "en"},
		{"/fr/about", "en"},
		{"/", "en"},
		{"/healthz", "en"},
	}
	for _, tt := range tests {
		if got := localeFromPath(tt.path); got != tt.want {
			t.Fatalf("localeFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestNewServerRequiresAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{}); err == nil {
		t.Fatalf("NewServer() should require an http address")
	}
}
