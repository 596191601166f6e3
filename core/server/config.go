package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// Stage is the deployment stage echoed in responses and used to suffix table names.
	Stage string `mapstructure:"stage" default:"dev"`
	// AllowOrigins is the CORS allow-list (comma separated, "*" for all).
	AllowOrigins string `mapstructure:"allow_origins" default:"*"`
}

const (
	StageDev     = "dev"
	StageStaging = "staging"
	StageProd    = "prod"
)

// IsValidStage checks if the configured stage is one of the known stages.
func (c Config) IsValidStage() bool {
	switch c.Stage {
	case StageDev, StageStaging, StageProd:
		return true
	default:
		return false
	}
}

// IsProduction reports whether the server runs in the production stage.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Stage, StageProd)
}
