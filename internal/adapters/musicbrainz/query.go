package musicbrainz

import (
	"strings"

	"github.com/vaibhavuttam8/jam-rating/internal/core/domain"
)

// buildQuery turns the non-blank filter fields into a Lucene query such as
// recording:"yesterday" AND artist:"the beatles".
func buildQuery(f domain.SearchFilter) string {
	f = f.Trimmed()
	parts := make([]string, 0, 3)
	if f.SongName != "" {
		parts = append(parts, term("recording", f.SongName))
	}
	if f.ArtistName != "" {
		parts = append(parts, term("artist", f.ArtistName))
	}
	if f.AlbumName != "" {
		parts = append(parts, term("release", f.AlbumName))
	}
	return strings.Join(parts, " AND ")
}

func term(field, value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(value)
	return field + `:"` + escaped + `"`
}
