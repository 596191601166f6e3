package redis

// Config holds configuration for the Redis connection.
type Config struct {
	// Addr is the Redis address (host:port).
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// User is the optional ACL username.
	User string `mapstructure:"user" default:""`
	// Password is the optional password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database number.
	DB int `mapstructure:"db" default:"0"`
	// PoolSize is the connection pool size.
	PoolSize int `mapstructure:"pool_size" default:"10"`
	// TimeoutSeconds bounds dial, read and write operations.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
	// ConnectTimeoutSeconds is the total time allowed for start-up connection attempts.
	ConnectTimeoutSeconds int `mapstructure:"connect_timeout_seconds" default:"30"`
}
