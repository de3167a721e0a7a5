package config

import (
	"reflect"
	"strings"

	"bookledger/core/database"
	"bookledger/core/logger"
	"bookledger/core/server"
	"bookledger/core/storage"
	"bookledger/feature/batch"
	"bookledger/feature/digest"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for report object storage.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the catalog sink database.
	Database database.Config `mapstructure:"database"`
	// Batch holds configuration for the reconciliation pipeline.
	Batch batch.Config `mapstructure:"batch"`
	// Digest holds configuration for the folder digest utility.
	Digest digest.Config `mapstructure:"digest"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if the file doesn't exist (e.g. production).
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values.
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. BATCH_BASE_PATH -> batch.base_path).
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values
// in Viper based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
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
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set the default (even if empty) so AutomaticEnv sees the key.
		v.SetDefault(key, defaultValue)
	}
}
