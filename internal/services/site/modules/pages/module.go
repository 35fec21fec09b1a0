// Package pages serves the marketing pages: home, about, and pricing.
package pages

import "github.com/noorwave/noorwave.dev/internal/services/site/module"

// Module serves the static marketing pages.
type Module struct{}

// New constructs the pages module.
func New() *Module {
	return &Module{}
}

// ID identifies the module in composition errors.
func (m *Module) ID() string {
	return "pages"
}

// Routes returns the module's route table.
func (m *Module) Routes(deps module.Dependencies) ([]module.Route, error) {
	return buildRoutes(deps), nil
}
