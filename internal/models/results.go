// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package models

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// Labels used as JSON keys in query results. The versioned and legacy routes
// render the same labels. The no-data label spells "available" correctly,
// unlike the key older clients of /PlayTimeGenre may have matched on.
const (
	labelTopYear   = "Release year with the most hours played for the genre %s"
	labelNoData    = "No data available for genre %s"
	labelTopUser   = "User with the most hours played for the genre %s"
	labelNoTopUser = "User with the most hours played for the genre"
	labelHoursYear = "Hours played per year"
	labelPosition  = "Position %d: %s"
)

// GenreYear is the result of a top-year-by-genre query.
//
// JSON shape when found:
//
//	{"Release year with the most hours played for the genre Action": 2012}
//
// and when nothing matched:
//
//	{"No data available for genre Action": null}
type GenreYear struct {
	Genre string
	Year  int
	Found bool
}

// MarshalJSON renders the single labeled key.
func (g GenreYear) MarshalJSON() ([]byte, error) {
	if !g.Found {
		return marshalSingle(fmt.Sprintf(labelNoData, g.Genre), nil)
	}
	return marshalSingle(fmt.Sprintf(labelTopYear, g.Genre), g.Year)
}

// YearHours is one entry of a user's per-year playtime breakdown.
type YearHours struct {
	Year  int     `json:"year"`
	Hours float64 `json:"hours"`
}

// GenreTopUser is the result of a top-user-by-genre query. HoursByYear keeps
// the order in which years were first seen in the source table.
//
// JSON shape:
//
//	{
//	  "User with the most hours played for the genre Action": "u1",
//	  "Hours played per year": {"2012": 30, "2015": 12.5}
//	}
//
// When nothing matched the user is null and the year map is empty.
type GenreTopUser struct {
	Genre       string
	UserID      string
	Found       bool
	HoursByYear []YearHours
}

// Hours returns the hours recorded for year and whether the year is present.
func (g GenreTopUser) Hours(year int) (float64, bool) {
	for _, yh := range g.HoursByYear {
		if yh.Year == year {
			return yh.Hours, true
		}
	}
	return 0, false
}

// MarshalJSON renders the user key followed by the ordered year map.
func (g GenreTopUser) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	if g.Found {
		if err := writeKeyValue(&buf, fmt.Sprintf(labelTopUser, g.Genre), g.UserID); err != nil {
			return nil, err
		}
	} else if err := writeKeyValue(&buf, labelNoTopUser, nil); err != nil {
		return nil, err
	}

	buf.WriteByte(',')
	if err := writeKey(&buf, labelHoursYear); err != nil {
		return nil, err
	}
	buf.WriteByte('{')
	for i, yh := range g.HoursByYear {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKeyValue(&buf, strconv.Itoa(yh.Year), yh.Hours); err != nil {
			return nil, err
		}
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

// RankedItem is one entry of a top-3 game ranking for a posting year.
//
// JSON shape:
//
//	{"Position 1: Counter-Strike": 42}
type RankedItem struct {
	Position int
	ItemName string
	Count    int
}

// Label returns the "Position k: name" key.
func (r RankedItem) Label() string {
	return fmt.Sprintf(labelPosition, r.Position, r.ItemName)
}

// MarshalJSON renders the single labeled key.
func (r RankedItem) MarshalJSON() ([]byte, error) {
	return marshalSingle(r.Label(), r.Count)
}

// SentimentTally counts reviews per sentiment class for one release year.
// All three keys are always present.
type SentimentTally struct {
	Negative int `json:"Negative"`
	Neutral  int `json:"Neutral"`
	Positive int `json:"Positive"`
}

// Total returns the sum of all classes.
func (s SentimentTally) Total() int {
	return s.Negative + s.Neutral + s.Positive
}

func marshalSingle(key string, value any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeKeyValue(&buf, key, value); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	k, err := json.Marshal(key)
	if err != nil {
		return fmt.Errorf("marshal key %q: %w", key, err)
	}
	buf.Write(k)
	buf.WriteByte(':')
	return nil
}

func writeKeyValue(buf *bytes.Buffer, key string, value any) error {
	if err := writeKey(buf, key); err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for %q: %w", key, err)
	}
	buf.Write(v)
	return nil
}
