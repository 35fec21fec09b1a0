package pages

import (
	"net/http"

	"github.com/noorwave/noorwave.dev/internal/services/site/module"
)

func buildRoutes(deps module.Dependencies) []module.Route {
	h := handler{deps: deps}
	return []module.Route{
		{Pattern: "GET /{locale}", Handler: http.HandlerFunc(h.home)},
		{Pattern: "GET /{locale}/{$}", Handler: http.HandlerFunc(h.home)},
		{Pattern: "GET /{locale}/about", Handler: http.HandlerFunc(h.about)},
		{Pattern: "GET /{locale}/pricing", Handler: http.HandlerFunc(h.pricing)},
		// Catch-all under a locale so unknown paths get a localized 404.
		{Pattern: "GET /{locale}/{rest...}", Handler: http.HandlerFunc(h.notFound)},
	}
}
