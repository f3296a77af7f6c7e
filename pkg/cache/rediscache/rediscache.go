// Package rediscache stores identification tallies in redis so repeated scans
// of the same base URL within the TTL skip probing.
package rediscache

import (
	"cmsscan/internal/config"
	"cmsscan/internal/identify"
	"cmsscan/pkg/domain"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cmsscan:tally:"

// Options configure the redis connection and entry lifetime.
type Options struct {
	Addr     string
	Password string
	DB       int
	// TTL is how long a tally is served from the cache.
	TTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
		TTL:      cfg.Cache.TTL,
	}
}

// Cache implements identify.TallyCache on top of a redis client.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ identify.TallyCache = (*Cache)(nil)

// New connects to redis and checks the connection with a PING.
func New(ctx context.Context, options Options) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     options.Addr,
		Password: options.Password,
		DB:       options.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	return NewWithClient(client, options.TTL), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// key hashes the target so arbitrary URLs make well-formed keys. The
// namespace stays readable so one catalog's entries can be found with SCAN.
func key(namespace, baseURL, host string) string {
	sum := sha256.Sum256([]byte(host + "\x00" + baseURL))

	return keyPrefix + namespace + ":" + hex.EncodeToString(sum[:])
}

// Get returns the tally cached for (baseURL, host) under namespace, or nil on a miss.
func (c *Cache) Get(ctx context.Context, namespace, baseURL, host string) (*domain.IdentificationTally, error) {
	data, err := c.client.Get(ctx, key(namespace, baseURL, host)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil //nolint: nilnil
		}

		return nil, fmt.Errorf("could not get tally: %w", err)
	}

	var tally domain.IdentificationTally
	if err := json.Unmarshal(data, &tally); err != nil {
		return nil, fmt.Errorf("could not unmarshal tally: %w", err)
	}

	return &tally, nil
}

// Set stores tally under namespace, its base URL and host override.
func (c *Cache) Set(ctx context.Context, namespace string, tally *domain.IdentificationTally) error {
	data, err := json.Marshal(tally)
	if err != nil {
		return fmt.Errorf("could not marshal tally: %w", err)
	}

	if err := c.client.Set(ctx, key(namespace, tally.BaseURL, tally.HostOverride), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("could not store tally: %w", err)
	}

	return nil
}

// Ping checks that redis is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("could not ping redis: %w", err)
	}

	return nil
}

// Close closes the underlying client.
func (c *Cache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("could not close redis client: %w", err)
	}

	return nil
}
