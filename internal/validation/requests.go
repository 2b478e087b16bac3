// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package validation

import (
	"fmt"
	"strconv"
)

// Limits bounds query parameters. It is built from config.APIConfig.
type Limits struct {
	MinYear        int `validate:"gte=0"`
	MaxYear        int `validate:"gtefield=MinYear"`
	MaxGenreLength int `validate:"gte=1"`
}

// DefaultLimits matches the configuration defaults.
var DefaultLimits = Limits{MinYear: 1970, MaxYear: 2100, MaxGenreLength: 64}

// NewLimits builds Limits from configured bounds. Unset bounds take the
// defaults. Bounds that fail validation yield DefaultLimits and the error.
func NewLimits(minYear, maxYear, maxGenreLength int) (Limits, *RequestValidationError) {
	l := Limits{MinYear: minYear, MaxYear: maxYear, MaxGenreLength: maxGenreLength}
	if l.MinYear == 0 && l.MaxYear == 0 {
		l.MinYear, l.MaxYear = DefaultLimits.MinYear, DefaultLimits.MaxYear
	}
	if l.MaxGenreLength == 0 {
		l.MaxGenreLength = DefaultLimits.MaxGenreLength
	}
	if err := ValidateStruct(&l); err != nil {
		return DefaultLimits, err
	}
	return l, nil
}

// ParseGenre validates a genre parameter. The value is returned unchanged:
// case folding is the query engine's job.
func ParseGenre(raw string, l Limits) (string, *RequestValidationError) {
	maxLen := l.MaxGenreLength
	if maxLen <= 0 {
		maxLen = DefaultLimits.MaxGenreLength
	}
	if err := ValidateVar("genre", raw, fmt.Sprintf("required,genre,max=%d", maxLen)); err != nil {
		return "", err
	}
	return raw, nil
}

// ParseYear validates a year parameter: digits only, within [MinYear, MaxYear].
func ParseYear(raw string, l Limits) (int, *RequestValidationError) {
	if err := ValidateVar("year", raw, "required,number"); err != nil {
		return 0, err
	}

	year, convErr := strconv.Atoi(raw)
	if convErr != nil {
		// Digits only, so this is an overflow.
		return 0, &RequestValidationError{errors: []ValidationError{{
			field:   "year",
			tag:     "lte",
			param:   strconv.Itoa(l.MaxYear),
			value:   raw,
			message: fmt.Sprintf("year must be less than or equal to %d", l.MaxYear),
		}}}
	}

	if err := ValidateVar("year", year, fmt.Sprintf("gte=%d,lte=%d", l.MinYear, l.MaxYear)); err != nil {
		return 0, err
	}
	return year, nil
}
