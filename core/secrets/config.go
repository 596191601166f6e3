package secrets

// Config holds configuration for the shared API key secret.
type Config struct {
	// Provider selects where the secret lives (storage, static).
	Provider string `mapstructure:"provider" default:"storage"`
	// Name is the secret name; with the storage provider it is the object key.
	Name string `mapstructure:"name" default:""`
	// Value is the raw secret payload used by the static provider.
	Value string `mapstructure:"value" default:""`
}

const (
	ProviderStorage = "storage"
	ProviderStatic  = "static"
)
