package contact

import (
	"net/http"

	"github.com/noorwave/noorwave.dev/internal/services/site/module"
	"github.com/noorwave/noorwave.dev/internal/services/site/platform/httpx"
)

func buildRoutes(deps module.Dependencies) []module.Route {
	h := handler{
		deps:    deps,
		service: NewService(deps.Store, deps.Logger),
	}
	return []module.Route{
		{Pattern: "GET /{locale}/contact", Handler: http.HandlerFunc(h.contactPage)},
		{Pattern: "POST /{locale}/contact", Handler: http.HandlerFunc(h.contactSubmit)},
		{Pattern: "POST /{locale}/newsletter", Handler: http.HandlerFunc(h.newsletterSubmit)},
		{Pattern: "GET /{locale}/newsletter", Handler: httpx.MethodNotAllowed(http.MethodPost)},
	}
}
