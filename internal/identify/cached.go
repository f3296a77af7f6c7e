package identify

import (
	"cmsscan/pkg/domain"
	"cmsscan/pkg/fingerprint"
	"cmsscan/pkg/logger"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"
)

// Namespace returns a digest of the (plugin, path) entries a scheduler with
// the given plugins would probe. Tallies cached under one namespace are never
// served to an identifier probing a different catalog.
func Namespace(ctx context.Context, catalog fingerprint.Catalog, plugins []string) (string, error) {
	h := sha256.New()
	for _, plugin := range plugins {
		paths, err := catalog.RelativePaths(ctx, plugin)
		if err != nil {
			return "", fmt.Errorf("could not get catalog of plugin %s: %w", plugin, err)
		}
		for _, p := range paths {
			_, _ = fmt.Fprintf(h, "%s\x00%s\n", plugin, p)
		}
		// separates plugins with no paths from their neighbours
		_, _ = h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))[:16], nil
}

type cached struct {
	next      Identifier
	cache     TallyCache
	namespace string
}

// Cached wraps next so a tally already stored in cache under namespace is
// returned without probing. namespace must describe the catalog next probes;
// see Namespace. Tallies where every probe failed are not stored. Cache errors
// are logged and otherwise ignored.
func Cached(next Identifier, cache TallyCache, namespace string) Identifier {
	return &cached{next: next, cache: cache, namespace: namespace}
}

func (c *cached) Identify(ctx context.Context, baseURL, host string) (*domain.IdentificationTally, error) {
	tally, err := c.cache.Get(ctx, c.namespace, baseURL, host)
	if err != nil {
		logger.Warn(ctx, "could not read tally cache", zap.Error(err))
	}
	if tally != nil {
		logger.Debug(ctx, "tally cache hit", zap.String("namespace", c.namespace))

		return tally, nil
	}

	tally, err = c.next.Identify(ctx, baseURL, host)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	if tally.Succeeded > 0 {
		if err := c.cache.Set(ctx, c.namespace, tally); err != nil {
			logger.Warn(ctx, "could not store tally", zap.Error(err))
		}
	}

	return tally, nil
}
