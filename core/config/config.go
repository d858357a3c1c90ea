package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"currency-registry/core/database"
	"currency-registry/core/logger"
	"currency-registry/core/server"
	"currency-registry/core/storage"
	"currency-registry/feature/emit"
	"currency-registry/feature/sources"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the registry configuration, one section per package.
type Config struct {
	// Server configures the lookup API.
	Server server.Config `mapstructure:"server"`
	// Storage is the bucket holding source tables and uploaded artifacts.
	Storage storage.Config `mapstructure:"storage"`
	Log     logger.Config  `mapstructure:"log"`
	// Database is the target of the relational emitter.
	Database database.Config `mapstructure:"database"`
	// Sources holds the location of the raw currency tables.
	Sources sources.Config `mapstructure:"sources"`
	// Emit holds configuration for the registry emitters.
	Emit emit.Config `mapstructure:"emit"`
}

// LoadConfig reads the .env file under dir, when present, then the process
// environment. SOURCES_FROM_STORAGE maps to sources.from_storage.
func LoadConfig(dir string) (*Config, error) {
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// registerDefaults walks the mapstructure tags of t and registers every leaf
// key with its default tag. Keys without a default are registered empty so
// AutomaticEnv can still resolve them.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}
		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
