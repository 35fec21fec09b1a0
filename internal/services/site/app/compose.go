// Package app wires site modules onto the root mux.
package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/noorwave/noorwave.dev/internal/services/site/module"
)

// Compose registers every module's routes on a fresh mux. Two modules
// claiming the same pattern is a composition error, reported with both
// module IDs.
func Compose(deps module.Dependencies, features []module.Module) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range features {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		routes, err := feature.Routes(deps)
		if err != nil {
			return nil, fmt.Errorf("routes for module %q: %w", feature.ID(), err)
		}
		for _, route := range routes {
			pattern := strings.TrimSpace(route.Pattern)
			if pattern == "" {
				return nil, fmt.Errorf("module %q has a route without a pattern", feature.ID())
			}
			if route.Handler == nil {
				return nil, fmt.Errorf("module %q route %q has no handler", feature.ID(), pattern)
			}
			if previous, ok := seen[pattern]; ok {
				return nil, fmt.Errorf("module %q duplicates pattern %q owned by module %q", feature.ID(), pattern, previous)
			}
			seen[pattern] = feature.ID()
			root.Handle(pattern, route.Handler)
		}
	}

	return root, nil
}
