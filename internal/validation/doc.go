// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package validation provides request validation using go-playground/validator v10.
//
// A thread-safe singleton validator carries the custom "genre" tag (printable,
// not blank). ParseGenre and ParseYear validate the two path parameters the
// query API accepts against Limits taken from configuration:
//
//	year, verr := validation.ParseYear(chi.URLParam(r, "year"), limits)
//	if verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// Every failure converts to a VALIDATION_ERROR API error with the field, tag
// and offending value in Details.
package validation
