package routepath

import "testing"

func TestForLocale(t *testing.T) {
	t.Parallel()

	cases := []struct {
		locale string
		page   string
		want   string
	}{
		{"en", PageHome, "/en"},
		{"ar", PageAbout, "/ar/about"},
		{"ar", "/contact/", "/ar/contact"},
		{" en ", PagePricing, "/en/pricing"},
	}
	for _, tc := range cases {
		if got := ForLocale(tc.locale, tc.page); got != tc.want {
			t.Fatalf("ForLocale(%q, %q) = %q, want %q", tc.locale, tc.page, got, tc.want)
		}
	}
}

func TestSwapLocale(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path   string
		locale string
		want   string
	}{
		{"/en/about", "ar", "/ar/about"},
		{"/ar/pricing", "en", "/en/pricing"},
		{"/en", "ar", "/ar"},
		{"/", "ar", "/ar"},
		{"", "en", "/en"},
	}
	for _, tc := range cases {
		if got := SwapLocale(tc.path, tc.locale); got != tc.want {
			t.Fatalf("SwapLocale(%q, %q) = %q, want %q", tc.path, tc.locale, got, tc.want)
		}
	}
}
