// Package cache provides Valkey (Redis-compatible) client initialization
// and full-page caching for the public site.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectValkey opens a client against the Valkey instance that backs both
// admin sessions and the rendered-page cache. It fails fast on an
// unreachable instance instead of letting the first page render discover it.
func ConnectValkey(host, port, password string) (*redis.Client, error) {
	addr := net.JoinHostPort(host, port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("valkey ping: %w", err)
	}

	slog.Info("connected to valkey", "addr", addr)
	return client, nil
}
