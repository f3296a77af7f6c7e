package fingerprint

import (
	"cmsscan/pkg/domain"
	"cmsscan/pkg/serrors"
	"context"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Plugin is the fingerprint of one CMS or extension.
type Plugin struct {
	// Paths is the ordered catalog of relative paths probed for the plugin.
	Paths []string `yaml:"paths"`
	// Versions maps a version to the MD5 digest of each path it ships.
	Versions map[string]map[string]string `yaml:"versions"`
}

// Database is a fingerprint database loaded from YAML. It is immutable after
// loading and implements Catalog and VersionMatcher.
type Database struct {
	Plugins map[string]Plugin `yaml:"plugins"`
}

var (
	_ Catalog        = (*Database)(nil)
	_ VersionMatcher = (*Database)(nil)
)

// Load reads and parses the fingerprint database at path.
func Load(path string) (*Database, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrFileAccess, err, "could not read fingerprint database")
	}

	return Parse(b)
}

// Parse decodes a YAML fingerprint database.
func Parse(b []byte) (*Database, error) {
	var db Database
	if err := yaml.Unmarshal(b, &db); err != nil {
		return nil, fmt.Errorf("could not decode fingerprint database: %w", err)
	}

	for name, p := range db.Plugins {
		if len(p.Paths) == 0 {
			return nil, serrors.With(serrors.ErrBadRequest, "plugin %q has no paths", name)
		}
		for version, hashes := range p.Versions {
			for path, hash := range hashes {
				if !slices.Contains(p.Paths, path) {
					return nil, serrors.With(serrors.ErrBadRequest,
						"plugin %q version %q hashes %q which is not in its catalog", name, version, path)
				}
				hashes[path] = strings.ToLower(hash)
			}
		}
	}

	return &db, nil
}

// Names returns the plugin names, sorted.
func (d *Database) Names() []string {
	out := make([]string, 0, len(d.Plugins))
	for name := range d.Plugins {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// RelativePaths returns the catalog of plugin, or ErrNotFound.
func (d *Database) RelativePaths(_ context.Context, plugin string) ([]string, error) {
	p, ok := d.Plugins[plugin]
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "plugin %q not found", plugin)
	}

	return slices.Clone(p.Paths), nil
}

// Narrow keeps the versions whose recorded digests agree with every matched
// probe of plugin that the database has a digest for. A version that does not
// record a digest for a path is not ruled out by that path.
func (d *Database) Narrow(plugin string, tally *domain.IdentificationTally) []string {
	p, ok := d.Plugins[plugin]
	if !ok || tally == nil || len(p.Versions) == 0 {
		return nil
	}

	observed := map[string]string{}
	for _, rec := range tally.Probes {
		if rec.Plugin == plugin && rec.Match == domain.Match && rec.BodyMD5 != "" {
			observed[rec.Path] = rec.BodyMD5
		}
	}
	if len(observed) == 0 {
		return nil
	}

	var (
		out    []string
		usable bool
	)
	for version, hashes := range p.Versions {
		consistent := true
		for path, got := range observed {
			want, known := hashes[path]
			if !known {
				continue
			}
			usable = true
			if want != got {
				consistent = false

				break
			}
		}
		if consistent {
			out = append(out, version)
		}
	}
	if !usable {
		return nil
	}

	sortVersions(out)

	return out
}

// sortVersions orders dotted versions numerically where possible ("7.9" < "7.10").
func sortVersions(versions []string) {
	sort.Slice(versions, func(i, j int) bool {
		a, b := strings.Split(versions[i], "."), strings.Split(versions[j], ".")
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] == b[k] {
				continue
			}
			var x, y int
			_, errA := fmt.Sscanf(a[k], "%d", &x)
			_, errB := fmt.Sscanf(b[k], "%d", &y)
			if errA == nil && errB == nil && x != y {
				return x < y
			}

			return a[k] < b[k]
		}

		return len(a) < len(b)
	})
}
