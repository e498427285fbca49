// Package musicbrainz implements the catalog search port against the
// MusicBrainz web service (ws/2).
package musicbrainz

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vaibhavuttam8/jam-rating/internal/adapters/httpclient"
	"github.com/vaibhavuttam8/jam-rating/internal/core/domain"
	"github.com/vaibhavuttam8/jam-rating/internal/core/ports"
)

// DefaultBaseURL is the public MusicBrainz web service root.
const DefaultBaseURL = "https://musicbrainz.org/ws/2"

// Client is an HTTP client for the MusicBrainz adapter.
type Client struct {
	http    *httpclient.Client
	baseURL string
}

// compile-time interface assertion
var _ ports.CatalogSearcher = (*Client)(nil)

// NewClient constructs a new MusicBrainz client.
func NewClient(hc *httpclient.Client, baseURL string) *Client {
	if hc == nil {
		hc = httpclient.New(httpclient.WithName("musicbrainz adapter"))
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{http: hc, baseURL: baseURL}
}

// SearchRecordings runs a field-qualified conjunctive recording search.
func (c *Client) SearchRecordings(ctx context.Context, filter domain.SearchFilter, offset, limit int) ([]domain.CatalogEntry, int, error) {
	query := buildQuery(filter)
	if query == "" {
		return []domain.CatalogEntry{}, 0, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("fmt", "json")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	searchURL := fmt.Sprintf("%s/recording?%s", c.baseURL, params.Encode())

	log.Printf("DEBUG musicbrainz adapter: search request URL: %s", searchURL)

	var body searchResponse
	if err := c.getJSON(ctx, searchURL, &body); err != nil {
		return nil, 0, err
	}

	entries := make([]domain.CatalogEntry, 0, len(body.Recordings))
	for _, r := range body.Recordings {
		entries = append(entries, mapRecordingToDomain(r))
	}
	return entries, body.Count, nil
}

// GetRecording fetches one recording with its artist credits and releases.
func (c *Client) GetRecording(ctx context.Context, id string) (domain.CatalogEntry, error) {
	params := url.Values{}
	params.Set("fmt", "json")
	params.Set("inc", "artist-credits+releases")
	lookupURL := fmt.Sprintf("%s/recording/%s?%s", c.baseURL, url.PathEscape(id), params.Encode())

	var body recording
	if err := c.getJSON(ctx, lookupURL, &body); err != nil {
		return domain.CatalogEntry{}, err
	}
	return mapRecordingToDomain(body), nil
}

func (c *Client) getJSON(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("musicbrainz adapter: failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("musicbrainz adapter: %w", &ports.CatalogUnavailableError{Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("musicbrainz adapter: %w", domain.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("musicbrainz adapter: %w", &ports.CatalogUnavailableError{StatusCode: resp.StatusCode})
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("musicbrainz adapter: decode error: %w", &ports.CatalogUnavailableError{Err: err})
	}
	return nil
}
