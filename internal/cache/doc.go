// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package cache provides the in-memory TTL cache that fronts the query engine.

Every query result depends only on the immutable dataset and the normalized
request parameter, so responses can be memoized by operation and parameter
for the configured api.cache_ttl. The cache is bounded by entry count and
evicts the oldest entry when full.

# Keys

Executors build keys with GenerateKey, which hashes the JSON encoding of the
parameters:

	key := cache.GenerateKey("top_user_by_genre", map[string]any{"genre": "rpg"})

# Expiry

Get drops expired entries on access. Serve runs a periodic sweep and is
registered with the supervisor tree as the "cache-janitor" service:

	tree.AddMaintenanceService(c)

# Thread Safety

All methods are safe for concurrent use. Statistics are kept under a separate
lock so readers of GetStats never block lookups.
*/
package cache
