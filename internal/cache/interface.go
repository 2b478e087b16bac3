// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package cache

import "time"

// Cacher is the subset of Cache used by query executors, so tests and
// alternative stores can stand in for it.
type Cacher interface {
	// Get retrieves a value from the cache.
	// Returns the value and true if found and not expired.
	Get(key string) (any, bool)

	// Set stores a value in the cache with the default TTL.
	Set(key string, value any)

	// SetWithTTL stores a value with a custom TTL.
	SetWithTTL(key string, value any, ttl time.Duration)

	// Clear removes all entries from the cache.
	Clear()

	// Len returns the number of stored entries.
	Len() int

	// GetStats returns cache statistics.
	GetStats() Stats

	// HitRate returns the cache hit rate as a percentage.
	HitRate() float64
}

var _ Cacher = (*Cache)(nil)
