// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package api provides HTTP handlers for the Steamlens application.
//
// errors.go - Common API error definitions
//
// This file contains error codes and sentinel errors for common API error conditions.
package api

import "errors"

// Error codes returned in APIError.Code.
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// Common API errors
var (
	// ErrDatasetNotLoaded indicates a query arrived before SetDataset
	ErrDatasetNotLoaded = errors.New("dataset not loaded")
)
