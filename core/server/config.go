package server

import "strconv"

// Config holds configuration for the HTTP lookup server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// RefreshMinutes rebuilds the registry on the next request once it is older
	// than this many minutes. Zero keeps the registry until an explicit reload.
	RefreshMinutes int `mapstructure:"refresh_minutes" default:"0"`
}

// IsValidPort checks that the configured port is a number in the TCP range.
func (c Config) IsValidPort() bool {
	n, err := strconv.Atoi(c.Port)
	return err == nil && n > 0 && n <= 65535
}
