package domain

import "strings"

// CatalogEntry is a single recording returned by the catalog search service.
type CatalogEntry struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Artist           string   `json:"artist"`
	FirstReleaseDate string   `json:"firstReleaseDate,omitempty"`
	ReleaseYear      string   `json:"releaseYear"`
	ReleaseIDs       []string `json:"releaseIds,omitempty"`
	LengthMs         int      `json:"lengthMs,omitempty"`
	Disambiguation   string   `json:"disambiguation,omitempty"`

	// Filled from the art cache when the entry is surfaced to the UI.
	CoverArtURL string `json:"coverArtUrl,omitempty"`
	ArtLoading  bool   `json:"artLoading,omitempty"`
}

// PrimaryReleaseID is the release used for cover art lookups.
func (e CatalogEntry) PrimaryReleaseID() string {
	if len(e.ReleaseIDs) == 0 {
		return ""
	}
	return e.ReleaseIDs[0]
}

// SearchFilter holds the three optional, conjunctive search fields.
type SearchFilter struct {
	SongName   string `json:"songName,omitempty"`
	ArtistName string `json:"artistName,omitempty"`
	AlbumName  string `json:"albumName,omitempty"`
}

// Trimmed returns the filter with surrounding whitespace removed from every field.
func (f SearchFilter) Trimmed() SearchFilter {
	return SearchFilter{
		SongName:   strings.TrimSpace(f.SongName),
		ArtistName: strings.TrimSpace(f.ArtistName),
		AlbumName:  strings.TrimSpace(f.AlbumName),
	}
}

// IsEmpty reports whether no field has a non-blank term.
func (f SearchFilter) IsEmpty() bool {
	t := f.Trimmed()
	return t.SongName == "" && t.ArtistName == "" && t.AlbumName == ""
}

// SearchPage is one offset-paginated page of catalog matches.
type SearchPage struct {
	Results    []CatalogEntry `json:"results"`
	TotalCount int            `json:"totalCount"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
}

// TotalPages is the number of pages needed to show TotalCount results.
func (p SearchPage) TotalPages() int {
	if p.PageSize <= 0 || p.TotalCount <= 0 {
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

// ArtStatus is the progressive-loading view of one entry's cover art.
type ArtStatus struct {
	URL     string `json:"url,omitempty"`
	Loading bool   `json:"loading"`
}
