// Package domain contains the core domain entities and types used by the
// scanner. These types represent probes, their outcomes and the per-line
// identification results, and are intentionally free of infrastructure
// concerns so they can be shared across packages.
package domain
