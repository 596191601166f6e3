package records

// Config holds configuration for the record table.
type Config struct {
	// Driver selects the backend (database, redis).
	Driver string `mapstructure:"driver" default:"database"`
	// Table is the logical table name; the stage is appended when set.
	Table string `mapstructure:"table" default:"todos"`
}

const (
	DriverDatabase = "database"
	DriverRedis    = "redis"
)

// IsValidDriver checks if the configured driver is supported.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverDatabase, DriverRedis:
		return true
	default:
		return false
	}
}

// TableName returns the physical table name for a stage, e.g. "todos-dev".
func TableName(cfg Config, stage string) string {
	table := cfg.Table
	if table == "" {
		table = "todos"
	}
	if stage == "" {
		return table
	}
	return table + "-" + stage
}
