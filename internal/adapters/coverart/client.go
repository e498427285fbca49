// Package coverart looks up release artwork on the Cover Art Archive.
package coverart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/vaibhavuttam8/jam-rating/internal/adapters/httpclient"
	"github.com/vaibhavuttam8/jam-rating/internal/core/ports"
)

// DefaultBaseURL is the public Cover Art Archive root.
const DefaultBaseURL = "https://coverartarchive.org"

// thumbnailSizes lists thumbnail keys from smallest to largest. The archive
// has used both numeric and named keys over time.
var thumbnailSizes = []string{"250", "small", "500", "large", "1200"}

type releaseImages struct {
	Images []image `json:"images"`
}

type image struct {
	Front      bool              `json:"front"`
	Image      string            `json:"image"`
	Thumbnails map[string]string `json:"thumbnails"`
}

// Client fetches release artwork.
type Client struct {
	http    *httpclient.Client
	baseURL string
}

var _ ports.CoverArtProvider = (*Client)(nil)

// NewClient constructs a Cover Art Archive client.
func NewClient(hc *httpclient.Client, baseURL string) *Client {
	if hc == nil {
		hc = httpclient.New(httpclient.WithName("coverart adapter"))
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{http: hc, baseURL: baseURL}
}

// FetchCoverArt returns the smallest thumbnail of the release's front image.
// A release without artwork yields "", nil.
func (c *Client) FetchCoverArt(ctx context.Context, releaseID string) (string, error) {
	if releaseID == "" {
		return "", nil
	}
	target := fmt.Sprintf("%s/release/%s", c.baseURL, url.PathEscape(releaseID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("coverart adapter: failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("coverart adapter: %w", &ports.CatalogUnavailableError{Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("coverart adapter: %w", &ports.CatalogUnavailableError{StatusCode: resp.StatusCode})
	}

	var body releaseImages
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("coverart adapter: decode error: %w", err)
	}
	return pickImageURL(body.Images), nil
}

func pickImageURL(images []image) string {
	if len(images) == 0 {
		return ""
	}
	chosen := images[0]
	for _, img := range images {
		if img.Front {
			chosen = img
			break
		}
	}
	for _, size := range thumbnailSizes {
		if u := chosen.Thumbnails[size]; u != "" {
			return u
		}
	}
	return chosen.Image
}
