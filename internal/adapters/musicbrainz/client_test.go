package musicbrainz

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vaibhavuttam8/jam-rating/internal/adapters/httpclient"
	"github.com/vaibhavuttam8/jam-rating/internal/core/domain"
	"github.com/vaibhavuttam8/jam-rating/internal/core/ports"
)

const searchBody = `{
  "count": 42,
  "offset": 10,
  "recordings": [
    {
      "id": "rec-1",
      "title": "Yesterday",
      "length": 125000,
      "first-release-date": "1965-08-06",
      "artist-credit": [{"name": "Beatles", "artist": {"id": "a-1", "name": "The Beatles"}}],
      "releases": [{"id": "rel-1", "title": "Help!"}, {"id": "rel-2"}]
    },
    {
      "id": "rec-2",
      "title": "Untitled"
    }
  ]
}`

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(httpclient.New(httpclient.WithHTTPClient(srv.Client())), srv.URL)
}

func TestSearchRecordings(t *testing.T) {
	var gotQuery, gotOffset, gotLimit, gotFmt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recording" {
			t.Errorf("path = %q, want /recording", r.URL.Path)
		}
		q := r.URL.Query()
		gotQuery, gotOffset, gotLimit, gotFmt = q.Get("query"), q.Get("offset"), q.Get("limit"), q.Get("fmt")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchBody))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	entries, total, err := c.SearchRecordings(context.Background(), domain.SearchFilter{
		SongName:   "Yesterday",
		ArtistName: " The Beatles ",
	}, 10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := `recording:"Yesterday" AND artist:"The Beatles"`; gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
	if gotOffset != "10" || gotLimit != "10" || gotFmt != "json" {
		t.Errorf("offset/limit/fmt = %s/%s/%s", gotOffset, gotLimit, gotFmt)
	}
	if total != 42 {
		t.Errorf("total = %d, want 42", total)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	first := entries[0]
	if first.Artist != "The Beatles" {
		t.Errorf("Artist = %q", first.Artist)
	}
	if first.ReleaseYear != "1965" {
		t.Errorf("ReleaseYear = %q", first.ReleaseYear)
	}
	if first.LengthMs != 125000 {
		t.Errorf("LengthMs = %d", first.LengthMs)
	}
	if first.PrimaryReleaseID() != "rel-1" {
		t.Errorf("PrimaryReleaseID = %q", first.PrimaryReleaseID())
	}

	second := entries[1]
	if second.Artist != domain.UnknownArtist {
		t.Errorf("missing credit: Artist = %q", second.Artist)
	}
	if second.ReleaseYear != domain.UnknownReleaseDate {
		t.Errorf("missing date: ReleaseYear = %q", second.ReleaseYear)
	}
	if second.PrimaryReleaseID() != "" {
		t.Errorf("missing releases: PrimaryReleaseID = %q", second.PrimaryReleaseID())
	}
}

func TestSearchRecordings_EmptyFilterSkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty filter")
	}))
	defer srv.Close()

	entries, total, err := newTestClient(srv).SearchRecordings(context.Background(), domain.SearchFilter{SongName: "  "}, 0, 10)
	if err != nil || total != 0 || len(entries) != 0 {
		t.Errorf("got %v, %d, %v", entries, total, err)
	}
}

func TestSearchRecordings_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv).SearchRecordings(context.Background(), domain.SearchFilter{SongName: "x"}, 0, 10)
	if !errors.Is(err, ports.ErrCatalogUnavailable) {
		t.Fatalf("err = %v, want ErrCatalogUnavailable", err)
	}
	var ue *ports.CatalogUnavailableError
	if !errors.As(err, &ue) || ue.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status not carried: %v", err)
	}
}

func TestSearchRecordings_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"recordings": [`))
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv).SearchRecordings(context.Background(), domain.SearchFilter{SongName: "x"}, 0, 10)
	if !errors.Is(err, ports.ErrCatalogUnavailable) {
		t.Errorf("err = %v, want ErrCatalogUnavailable", err)
	}
}

func TestGetRecording(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recording/rec-1":
			if inc := r.URL.Query().Get("inc"); inc != "artist-credits+releases" {
				t.Errorf("inc = %q", inc)
			}
			_, _ = w.Write([]byte(`{"id":"rec-1","title":"Yesterday","artist-credit":[{"name":"Beatles","artist":{"name":""}}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv)
	entry, err := c.GetRecording(context.Background(), "rec-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Title != "Yesterday" || entry.Artist != "Beatles" {
		t.Errorf("entry = %+v", entry)
	}

	_, err = c.GetRecording(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.SearchFilter
		want   string
	}{
		{"empty", domain.SearchFilter{}, ""},
		{"song only", domain.SearchFilter{SongName: "Help"}, `recording:"Help"`},
		{"album only", domain.SearchFilter{AlbumName: "Abbey Road"}, `release:"Abbey Road"`},
		{
			"all three",
			domain.SearchFilter{SongName: "a", ArtistName: "b", AlbumName: "c"},
			`recording:"a" AND artist:"b" AND release:"c"`,
		},
		{"escapes quotes", domain.SearchFilter{SongName: `say "hi"`}, `recording:"say \"hi\""`},
		{"escapes backslash", domain.SearchFilter{SongName: `a\b`}, `recording:"a\\b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildQuery(tt.filter); got != tt.want {
				t.Errorf("buildQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}
