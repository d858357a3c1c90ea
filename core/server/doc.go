// Package server holds the HTTP lookup server configuration.
//
// While the serve command handles the server startup, this package defines
// the configuration structure and its validation.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key protecting the lookup
// API, and how often the served registry is rebuilt from its sources.
package server
