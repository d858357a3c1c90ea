// Package config provides configuration management for the currency registry.
//
// It uses Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each
// section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP server settings (port, API key, registry refresh interval)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Database: target of the relational emitter (mysql or sqlite)
//   - Sources: file names of the currency tables, local or in the bucket
//   - Emit: emitter outputs (JSON, generated Go, database, upload)
//
// Nested keys map to upper-case environment variables with "." replaced by
// "_", e.g. SOURCES_FROM_STORAGE or EMIT_GO_PACKAGE.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
