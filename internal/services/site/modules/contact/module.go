// Package contact serves the contact form and the newsletter signup.
package contact

import "github.com/noorwave/noorwave.dev/internal/services/site/module"

// Module serves the contact and newsletter endpoints.
type Module struct{}

// New constructs the contact module.
func New() *Module {
	return &Module{}
}

// ID identifies the module in composition errors.
func (m *Module) ID() string {
	return "contact"
}

// Routes returns the module's route table.
func (m *Module) Routes(deps module.Dependencies) ([]module.Route, error) {
	return buildRoutes(deps), nil
}
