// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which names it, reports whether it is enabled
// and mounts its routes.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager holds the registry and loads enabled features in registration order.
package loader
