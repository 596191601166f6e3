package airtable

// Config holds configuration for the Airtable API.
type Config struct {
	// APIKey is the personal access token sent as a bearer token.
	APIKey string `mapstructure:"api_key" default:""`
	// BaseID identifies the Airtable base.
	BaseID string `mapstructure:"base_id" default:""`
	// TableID identifies the table inside the base.
	TableID string `mapstructure:"table_id" default:""`
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.airtable.com/v0"`
	// TimeoutSeconds bounds each API call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// TitleField is the column receiving the todo title.
	TitleField string `mapstructure:"title_field" default:"Name"`
	// DescriptionField is the column receiving the todo description.
	DescriptionField string `mapstructure:"description_field" default:"Description"`
	// StatusField is the column read to decide completion.
	StatusField string `mapstructure:"status_field" default:"Status"`
	// DoneValue is the status value meaning completed.
	DoneValue string `mapstructure:"done_value" default:"Done"`
}

// IsConfigured reports whether records can be created.
func (c Config) IsConfigured() bool {
	return c.APIKey != "" && c.BaseID != "" && c.TableID != ""
}
