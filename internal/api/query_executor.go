// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/steamlens/internal/cache"
	"github.com/tomtom215/steamlens/internal/metrics"
	"github.com/tomtom215/steamlens/internal/models"
	"github.com/tomtom215/steamlens/internal/query"
)

// QueryFunc runs one engine operation. found reports whether the input
// matched any data; it only feeds metrics.
type QueryFunc func(e *query.Engine) (result any, found bool)

// QueryExecutor encapsulates the cache-first pattern shared by the query
// handlers:
//
//  1. Build a cache key from the operation name and validated parameters
//  2. Return the cached result if present (Cached: true in metadata)
//  3. Otherwise run the query against the current engine
//  4. Cache the result and respond with query timing
//
// Results depend only on the dataset, which is immutable once installed, so
// the cache is cleared on SetDataset and never otherwise invalidated. Keys
// carry the dataset generation the query ran against.
//
// Example usage:
//
//	executor := NewQueryExecutor(h)
//	executor.Execute(w, r, "sentiment_tally", year, func(e *query.Engine) (any, bool) {
//	    tally := e.SentimentTally(year)
//	    return tally, tally.Total() > 0
//	})
type QueryExecutor struct {
	handler *Handler
	cache   cache.Cacher
	// raw skips the APIResponse envelope; used by the legacy routes.
	raw bool
}

// NewQueryExecutor creates an executor that responds with the APIResponse envelope.
func NewQueryExecutor(h *Handler) *QueryExecutor {
	return &QueryExecutor{handler: h, cache: cacherOf(h)}
}

// NewLegacyQueryExecutor creates an executor that responds with the bare result.
func NewLegacyQueryExecutor(h *Handler) *QueryExecutor {
	return &QueryExecutor{handler: h, cache: cacherOf(h), raw: true}
}

func cacherOf(h *Handler) cache.Cacher {
	if h.cache == nil {
		return nil
	}
	return h.cache
}

// Execute runs queryFunc for operation with automatic caching. params must
// identify the result uniquely for the operation.
func (e *QueryExecutor) Execute(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	params any,
	queryFunc QueryFunc,
) {
	current := e.handler.data.Load()
	if current == nil {
		metrics.RecordQuery(operation, 0, false, ErrDatasetNotLoaded)
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Dataset not loaded", nil, ErrDatasetNotLoaded)
		return
	}

	engine := current.engine
	cacheKey := cache.GenerateKey(fmt.Sprintf("%s@%d", operation, current.generation), params)
	if e.cache != nil {
		if cached, found := e.cache.Get(cacheKey); found {
			metrics.RecordCacheLookup(operation, true)
			e.respond(w, r, cached, 0, true)
			return
		}
		metrics.RecordCacheLookup(operation, false)
	}

	start := time.Now()
	result, found, err := runQuery(engine, queryFunc)
	elapsed := time.Since(start)
	metrics.RecordQuery(operation, elapsed, found, err)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal,
			"Query failed", nil, fmt.Errorf("%s: %w", operation, err))
		return
	}

	if e.cache != nil {
		e.cache.Set(cacheKey, result)
		metrics.CacheEntries.Set(float64(e.cache.Len()))
	}

	e.respond(w, r, result, elapsed.Milliseconds(), false)
}

func (e *QueryExecutor) respond(w http.ResponseWriter, r *http.Request, result any, queryMS int64, cached bool) {
	if e.raw {
		respondRaw(w, r, http.StatusOK, result)
		return
	}
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   result,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: queryMS,
			Cached:      cached,
		},
	})
}

// runQuery converts a panic inside the engine into an error.
func runQuery(engine *query.Engine, fn QueryFunc) (result any, found bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("query panicked: %v", rec)
		}
	}()
	result, found = fn(engine)
	return result, found, nil
}
