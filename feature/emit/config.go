package emit

// Config holds configuration for the registry emitters.
type Config struct {
	// JSONPath is where the JSON document is written. Empty disables it.
	JSONPath string `mapstructure:"json_path" default:"build/currencies.json"`
	// GoPath is where the generated Go source is written. Empty disables it.
	GoPath string `mapstructure:"go_path" default:"build/currencies/currencies.go"`
	// GoPackage is the package clause of the generated Go source.
	GoPackage string `mapstructure:"go_package" default:"currencies"`
	// Database writes the registry tables to the configured database.
	Database bool `mapstructure:"database" default:"false"`
	// Upload puts the emitted artifacts into the storage bucket.
	Upload bool `mapstructure:"upload" default:"false"`
	// Prefix is the object key prefix of uploaded artifacts.
	Prefix string `mapstructure:"prefix" default:"artifacts"`
}
