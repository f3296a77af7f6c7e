package rediscache_test

import (
	"cmsscan/pkg/cache/rediscache"
	"cmsscan/pkg/domain"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestCache(t *testing.T, ttl time.Duration) *rediscache.Cache {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379"},
			WaitingFor:   wait.ForListeningPort("6379"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	cache, err := rediscache.New(ctx, rediscache.Options{
		Addr: fmt.Sprintf("%s:%d", host, port.Int()),
		TTL:  ttl,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	return cache
}

func TestCache_GetSet(t *testing.T) {
	cache := setupTestCache(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, cache.Ping(ctx))

	got, err := cache.Get(ctx, "ns1", "http://example.com/", "")
	require.NoError(t, err)
	require.Nil(t, got)

	tally := &domain.IdentificationTally{
		BaseURL:   "http://example.com/",
		Requested: 2,
		Succeeded: 1,
		Failed:    1,
		Probes: []domain.ProbeRecord{
			{Plugin: "drupal", Path: "misc/drupal.js", Kind: domain.OutcomeSuccess, StatusCode: 200, Match: domain.Match},
			{Plugin: "drupal", Path: "CHANGELOG.txt", Kind: domain.OutcomeFailure, Error: "timeout"},
		},
	}
	require.NoError(t, cache.Set(ctx, "ns1", tally))

	got, err = cache.Get(ctx, "ns1", "http://example.com/", "")
	require.NoError(t, err)
	require.Equal(t, tally, got)

	// the host override is part of the key
	got, err = cache.Get(ctx, "ns1", "http://example.com/", "vhost.example")
	require.NoError(t, err)
	require.Nil(t, got)

	// so is the namespace
	got, err = cache.Get(ctx, "ns2", "http://example.com/", "")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCache_Expiry(t *testing.T) {
	cache := setupTestCache(t, time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "ns1", &domain.IdentificationTally{BaseURL: "http://example.com/"}))
	require.Eventually(t, func() bool {
		got, err := cache.Get(ctx, "ns1", "http://example.com/", "")

		return err == nil && got == nil
	}, 5*time.Second, 100*time.Millisecond)
}

func TestNew_Unreachable(t *testing.T) {
	_, err := rediscache.New(context.Background(), rediscache.Options{Addr: "127.0.0.1:1"})
	require.Error(t, err)
}
