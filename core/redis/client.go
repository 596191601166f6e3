package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultRetryInterval = 500 * time.Millisecond
	defaultMaxWait       = 5 * time.Second
	defaultPingTimeout   = 2 * time.Second
	warnThreshold        = 3
)

// retryPolicy holds the start-up retry settings.
type retryPolicy struct {
	initialWait  time.Duration
	maxWait      time.Duration
	pingTimeout  time.Duration
	totalTimeout time.Duration
}

// Connect creates a Redis client and pings it until it answers or the
// connect timeout is exhausted, backing off exponentially between attempts.
func Connect(cfg Config, log *zap.Logger) (*redis.Client, error) {
	connectTimeout := cfg.ConnectTimeoutSeconds
	if connectTimeout <= 0 {
		connectTimeout = 30
	}

	client := NewClient(cfg)

	policy := retryPolicy{
		initialWait:  defaultRetryInterval,
		maxWait:      defaultMaxWait,
		pingTimeout:  defaultPingTimeout,
		totalTimeout: time.Duration(connectTimeout) * time.Second,
	}

	if err := connectWithRetry(client, cfg.Addr, policy, log); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// NewClient builds a Redis client without contacting the server.
func NewClient(cfg Config) *redis.Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.User,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})
}

func connectWithRetry(client *redis.Client, addr string, policy retryPolicy, log *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), policy.totalTimeout)
	defer cancel()

	log.Info("Connecting to redis", zap.String("addr", addr), zap.Duration("timeout", policy.totalTimeout))

	attempt := 0
	wait := policy.initialWait

	for {
		attempt++

		pingCtx, pingCancel := context.WithTimeout(ctx, policy.pingTimeout)
		err := client.Ping(pingCtx).Err()
		pingCancel()

		if err == nil {
			if attempt > 1 {
				log.Warn("Connected to redis after retry", zap.String("addr", addr), zap.Int("attempts", attempt))
			} else {
				log.Info("Connected to redis", zap.String("addr", addr))
			}
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Error("Redis unavailable after timeout",
				zap.String("addr", addr),
				zap.Int("attempts", attempt),
				zap.Error(err))
			return fmt.Errorf("redis unavailable at %s after %d attempts (timeout: %v): %w",
				addr, attempt, policy.totalTimeout, err)
		case <-timer.C:
			fields := []zap.Field{
				zap.String("addr", addr),
				zap.Int("attempt", attempt),
				zap.Duration("next_retry_in", wait),
				zap.Error(err),
			}
			if attempt <= warnThreshold {
				log.Warn("Redis connection failed, retrying", fields...)
			} else {
				log.Error("Redis still unavailable, retrying", fields...)
			}
			wait *= 2
			if wait > policy.maxWait {
				wait = policy.maxWait
			}
		}
	}
}
