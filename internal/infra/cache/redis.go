// Package cache provides the key-value cache store client and the typed
// operations the application performs against it: JSON blobs with a TTL for
// the cache-aside read path, and a capped list used as the access-log mirror.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rasel-stacklearner/blogger/pkg/config"
)

// Config holds the cache store connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

// LoadConfig reads the cache store connection settings from the environment.
// The variable names match what the deployment already provides.
func LoadConfig() Config {
	return Config{
		Host:     config.GetEnvString("REDIS_HOST", "localhost"),
		Port:     config.GetEnvInt("REDIS_PORT", 6379),
		Username: config.GetEnvString("REDIS_USERNAME", ""),
		Password: config.GetEnvString("REDIS_PASSWORD", ""),
	}
}

// Addr returns the host:port address for the client.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Open creates the cache store client and verifies connectivity with a ping.
// A failed ping is reported but does not return an error: the application
// serves from the relational store alone when the cache is down, so startup
// proceeds in degraded mode rather than refusing to boot.
func Open(ctx context.Context, cfg Config) redis.UniversalClient {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Username: cfg.Username,
		Password: cfg.Password,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("cache store unreachable, starting in degraded mode",
			slog.String("addr", cfg.Addr()),
			slog.Any("error", err))
		return client
	}

	slog.Info("cache store connection established", slog.String("addr", cfg.Addr()))
	return client
}
