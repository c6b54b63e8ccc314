package sources

// YouTube Data API v3 access is split across files by responsibility:
//   youtube.go              Client, URL building, shared pagination loop
//   youtube_types.go        response payload types
//   youtube_collection.go   uploads lookup and playlist enumeration
//   youtube_broadcasts.go   live/completed broadcast search
//   youtube_details.go      batch video detail lookup (durations)

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/anatolykoptev/go_tubehub/internal/engine"
)

// MaxPageSize is the largest maxResults the Data API accepts, and the
// largest id batch videos.list accepts.
const MaxPageSize = 50

// Client talks to the Data API through an engine.Fetcher.
type Client struct {
	fetcher engine.Fetcher
	apiBase string
	apiKey  string
}

// NewClient creates a client. An empty apiBase selects the public endpoint.
func NewClient(f engine.Fetcher, apiBase, apiKey string) *Client {
	if apiBase == "" {
		apiBase = engine.DefaultYouTubeAPIBase
	}
	return &Client{fetcher: f, apiBase: apiBase, apiKey: apiKey}
}

// NewClientFromConfig wires a client from engine.Cfg.
func NewClientFromConfig() *Client {
	f := engine.NewHTTPFetcher(engine.Cfg.HTTPClient, engine.Cfg.APIRateLimit, engine.Cfg.APIRateBurst)
	return NewClient(f, engine.Cfg.YouTubeAPIBase, engine.Cfg.YouTubeAPIKey)
}

func (c *Client) endpoint(resource string, params url.Values) string {
	params.Set("key", c.apiKey)
	return c.apiBase + "/" + resource + "?" + params.Encode()
}

// pageDecoder maps one decoded page into items and the continuation token.
type pageDecoder[T any] func(page *T) (items []engine.Item, nextPageToken string)

// readAllPages requests pages of resource until one omits nextPageToken.
// Items accumulate in page-arrival order; there is no upper bound.
func readAllPages[T any](ctx context.Context, c *Client, resource string, params url.Values, decode pageDecoder[T], progress engine.ProgressFunc) ([]engine.Item, error) {
	params.Set("maxResults", strconv.Itoa(MaxPageSize))

	var all []engine.Item
	pageToken := ""
	for pageNum := 1; ; pageNum++ {
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		} else {
			params.Del("pageToken")
		}

		var page T
		if err := c.fetcher.FetchJSON(ctx, c.endpoint(resource, params), &page); err != nil {
			return nil, fmt.Errorf("%s page %d: %w", resource, pageNum, err)
		}

		batch, next := decode(&page)
		all = append(all, batch...)
		progress.Report(fmt.Sprintf("Loaded %d...", len(all)))

		if next == "" {
			break
		}
		pageToken = next
	}
	return all, nil
}
