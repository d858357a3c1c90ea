// Package loader registers HTTP features on the fiber app.
//
// Each feature implements Feature:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager keeps features in registration order. LoadAll skips disabled
// features and stops at the first Load error.
package loader
