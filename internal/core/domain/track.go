package domain

import (
	"strings"
)

const (
	// UnknownArtist is shown when the catalog does not credit an artist.
	UnknownArtist = "Unknown Artist"
	// UnknownReleaseDate is shown when the catalog has no release date.
	UnknownReleaseDate = "N/A"
)

// Track is one entry of a playlist. ID is unique per add action, while
// CatalogID is the stable external identifier the entry was built from.
type Track struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	ReleaseDate string `json:"releaseDate"`
	CatalogID   string `json:"catalogId"`
	CoverArtURL string `json:"coverArtUrl,omitempty"`
}

// NewTrack builds a draft track from a catalog entry. suffix makes the id
// distinct when the same entry is added more than once.
func NewTrack(entry CatalogEntry, suffix string, coverArtURL string) Track {
	return Track{
		ID:          entry.ID + "-" + suffix,
		Title:       entry.Title,
		Artist:      fallback(entry.Artist, UnknownArtist),
		ReleaseDate: fallback(entry.ReleaseYear, UnknownReleaseDate),
		CatalogID:   entry.ID,
		CoverArtURL: coverArtURL,
	}
}

// ReleaseYear reduces a catalog date ("2004-05-11", "2004-05", "2004") to its year.
func ReleaseYear(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return UnknownReleaseDate
	}
	year, _, _ := strings.Cut(date, "-")
	if year == "" {
		return UnknownReleaseDate
	}
	return year
}

func fallback(value string, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
