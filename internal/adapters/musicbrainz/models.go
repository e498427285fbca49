package musicbrainz

// searchResponse is the body of GET /recording?query=...
type searchResponse struct {
	Recordings []recording `json:"recordings"`
	Count      int         `json:"count"`
	Offset     int         `json:"offset"`
}

type recording struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Length           *int           `json:"length,omitempty"`
	Disambiguation   string         `json:"disambiguation,omitempty"`
	FirstReleaseDate string         `json:"first-release-date,omitempty"`
	ArtistCredit     []artistCredit `json:"artist-credit,omitempty"`
	Releases         []release      `json:"releases,omitempty"`
}

type artistCredit struct {
	Name       string `json:"name"`
	JoinPhrase string `json:"joinphrase,omitempty"`
	Artist     struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"artist"`
}

type release struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}
