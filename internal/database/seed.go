// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package database

import (
	"fmt"

	"github.com/tomtom215/steamlens/internal/models"
)

// Seed layout. Values are derived arithmetically so every call returns the
// same dataset, and results for a given query are stable across runs.
var (
	seedGenres = []string{"Action", "Adventure", "Casual", "Indie", "RPG", "Simulation", "Strategy"}
	seedTitles = []string{
		"Counter-Strike", "Team Fortress 2", "Terraria", "Garry's Mod", "Portal 2",
		"Left 4 Dead 2", "The Elder Scrolls V: Skyrim", "Stardew Valley", "Rust",
		"Civilization V", "Dota 2", "Unturned",
	}
)

const (
	seedFirstYear = 2008
	seedLastYear  = 2017
	seedUsers     = 12
)

// SeedDataset returns a small deterministic demo dataset covering every
// genre, year and sentiment class. It is used when data.seed_mock_data is
// set and by the export command to produce sample files.
func SeedDataset() *models.Dataset {
	ds := &models.Dataset{}

	for gi, genre := range seedGenres {
		for year := seedFirstYear; year <= seedLastYear; year++ {
			off := year - seedFirstYear
			hours := float64((gi+1)*1000 + ((off*37+gi*11)%17)*250)
			ds.PlaytimeByGenre = append(ds.PlaytimeByGenre, models.PlaytimeGenreRow{
				Genre:           genre,
				ReleaseYear:     year,
				PlaytimeForever: hours,
			})
		}
	}

	for gi, genre := range seedGenres {
		for u := 0; u < seedUsers; u++ {
			if (u+gi)%3 == 0 {
				continue
			}
			user := fmt.Sprintf("steam_user_%02d", u+1)
			for year := seedFirstYear; year <= seedLastYear; year += 1 + (u % 3) {
				hours := float64(((u*13+gi*7+year)%23)*3 + 1)
				ds.UserGenrePlaytime = append(ds.UserGenrePlaytime, models.UserGenreRow{
					Genre:         genre,
					UserID:        user,
					ReleaseYear:   year,
					PlaytimeHours: hours,
				})
			}
		}
	}

	for year := seedFirstYear + 2; year <= seedLastYear; year++ {
		for ti, title := range seedTitles {
			reviews := 1 + (ti*5+year)%4
			for r := 0; r < reviews; r++ {
				sentiment := (ti + r + year) % 3
				ds.UserReviews = append(ds.UserReviews, models.UserReviewRow{
					ItemName:   title,
					PostedYear: year,
					Recommend:  sentiment != models.SentimentNegative || (ti+r)%5 == 0,
					Sentiment:  sentiment,
				})
			}
		}
	}

	for year := seedFirstYear; year <= seedLastYear; year++ {
		n := 6 + (year % 5)
		for i := 0; i < n; i++ {
			ds.SentimentByYear = append(ds.SentimentByYear, models.SentimentYearRow{
				ReleaseYear: year,
				Sentiment:   (i*i + year) % 3,
			})
		}
	}

	return ds
}
