package config

import (
	"reflect"
	"strings"

	"todo-sync/core/airtable"
	"todo-sync/core/database"
	"todo-sync/core/logger"
	"todo-sync/core/reconcile"
	"todo-sync/core/records"
	"todo-sync/core/redis"
	"todo-sync/core/secrets"
	"todo-sync/core/server"
	"todo-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Store selects and names the record table.
	Store records.Config `mapstructure:"store"`
	// Database holds configuration for the relational record backend.
	Database database.Config `mapstructure:"database"`
	// Redis holds configuration for the key-value record backend.
	Redis redis.Config `mapstructure:"redis"`
	// Storage holds configuration for the object storage holding secrets.
	Storage storage.Config `mapstructure:"storage"`
	// Secrets locates the shared API key.
	Secrets secrets.Config `mapstructure:"secrets"`
	// Airtable holds the mirror credentials and field names.
	Airtable airtable.Config `mapstructure:"airtable"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// TableName returns the stage-qualified record table name.
func (c *Config) TableName() string {
	return records.TableName(c.Store, c.Server.Stage)
}

// FieldMapping returns the Airtable field names used by the reconciliation engine.
func (c *Config) FieldMapping() reconcile.FieldMapping {
	return reconcile.FieldMapping{
		Title:       c.Airtable.TitleField,
		Description: c.Airtable.DescriptionField,
		Status:      c.Airtable.StatusField,
		DoneValue:   c.Airtable.DoneValue,
	}
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. AIRTABLE_API_KEY -> airtable.api_key)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
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

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
