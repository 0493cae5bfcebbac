// Package redis provides a wrapper around the go-redis client library
// for improved testing and abstraction.
package redis

import (
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Options configures Redis client behavior
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a Redis client for a single instance at endpoint
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	return redis.NewClient(buildOptions(&redis.Options{Addr: endpoint}, opts)), nil
}

// NewClientFromURL creates a Redis client from a redis:// or rediss:// URL.
// The URL's database, credentials and TLS scheme are honored; opts tune the pool.
func NewClientFromURL(url string, opts *Options) (Client, error) {
	if url == "" {
		return nil, errors.InvalidArgument("redis: url is required")
	}

	parsed, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "redis: invalid url")
	}

	return redis.NewClient(buildOptions(parsed, opts)), nil
}

func buildOptions(base *redis.Options, opts *Options) *redis.Options {
	if opts == nil {
		return base
	}

	base.MinIdleConns = opts.MinIdleConns
	base.PoolSize = opts.PoolSize
	base.ConnMaxIdleTime = opts.ConnMaxIdleTime
	base.MaxRetries = opts.MaxRetries

	if opts.UseTLS && base.TLSConfig == nil {
		base.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}
	return base
}
