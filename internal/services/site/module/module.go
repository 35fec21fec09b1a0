// Package module defines the composition contracts shared by site modules.
package module

import (
	"log"
	"net/http"

	"github.com/noorwave/noorwave.dev/internal/platform/branding"
	"github.com/noorwave/noorwave.dev/internal/platform/i18n/catalog"
	"github.com/noorwave/noorwave.dev/internal/services/site/platform/messages"
	"github.com/noorwave/noorwave.dev/internal/services/site/storage"
)

// Dependencies carries the shared collaborators injected into every module.
type Dependencies struct {
	Logger       *log.Logger
	Content      *catalog.Loader
	Messages     *messages.Translator
	Store        storage.SubmissionStore
	Profile      branding.Profile
	AssetBaseURL string
}

// Route binds one mux pattern to a handler.
type Route struct {
	Pattern string
	Handler http.Handler
}

// Module contributes routes to the site's root mux.
type Module interface {
	// ID returns a stable module identifier used in composition errors.
	ID() string
	// Routes returns the module's route table.
	Routes(Dependencies) ([]Route, error)
}
