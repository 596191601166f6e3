package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewClient(t *testing.T) {
	client := NewClient(Config{Addr: "localhost:6390", DB: 2, PoolSize: 4})
	defer client.Close()

	opts := client.Options()
	assert.Equal(t, "localhost:6390", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 4, opts.PoolSize)
	assert.Equal(t, 5*time.Second, opts.ReadTimeout)
}

func TestConnect_Unreachable(t *testing.T) {
	cfg := Config{
		Addr:                  "127.0.0.1:1", // Nothing listens here
		TimeoutSeconds:        1,
		ConnectTimeoutSeconds: 1,
	}

	client, err := Connect(cfg, zap.NewNop())
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "redis unavailable at 127.0.0.1:1")
}
