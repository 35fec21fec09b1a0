// Package modules assembles the site's default module registry.
package modules

import (
	"github.com/noorwave/noorwave.dev/internal/services/site/module"
	"github.com/noorwave/noorwave.dev/internal/services/site/modules/contact"
	"github.com/noorwave/noorwave.dev/internal/services/site/modules/pages"
)

// DefaultModules returns the stable site modules.
func DefaultModules() []module.Module {
	return []module.Module{
		pages.New(),
		contact.New(),
	}
}
