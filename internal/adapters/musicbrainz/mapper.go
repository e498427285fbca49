package musicbrainz

import (
	"strings"

	"github.com/vaibhavuttam8/jam-rating/internal/core/domain"
)

// mapRecordingToDomain converts a raw recording to a catalog entry.
func mapRecordingToDomain(r recording) domain.CatalogEntry {
	releaseIDs := make([]string, 0, len(r.Releases))
	for _, rel := range r.Releases {
		if rel.ID != "" {
			releaseIDs = append(releaseIDs, rel.ID)
		}
	}

	entry := domain.CatalogEntry{
		ID:               r.ID,
		Title:            r.Title,
		Artist:           primaryArtist(r.ArtistCredit),
		FirstReleaseDate: r.FirstReleaseDate,
		ReleaseYear:      domain.ReleaseYear(r.FirstReleaseDate),
		ReleaseIDs:       releaseIDs,
		Disambiguation:   r.Disambiguation,
	}
	if r.Length != nil {
		entry.LengthMs = *r.Length
	}
	return entry
}

// primaryArtist is the first credited artist's name.
func primaryArtist(credits []artistCredit) string {
	if len(credits) == 0 {
		return domain.UnknownArtist
	}
	if name := strings.TrimSpace(credits[0].Artist.Name); name != "" {
		return name
	}
	if name := strings.TrimSpace(credits[0].Name); name != "" {
		return name
	}
	return domain.UnknownArtist
}
