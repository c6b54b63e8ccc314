package sources

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/anatolykoptev/go_tubehub/internal/engine"
)

// ErrMissingUploads is returned when a channel lookup has no uploads playlist.
var ErrMissingUploads = errors.New("could not find uploads playlist for this channel")

// UploadsPlaylistID resolves the channel's default uploads playlist.
// The id is never configured statically; every call performs one request.
func (c *Client) UploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	params := url.Values{}
	params.Set("part", "contentDetails")
	params.Set("id", channelID)

	var resp channelsResp
	if err := c.fetcher.FetchJSON(ctx, c.endpoint("channels", params), &resp); err != nil {
		return "", fmt.Errorf("channel lookup: %w", err)
	}
	uploads := resp.uploadsID()
	if uploads == "" {
		return "", fmt.Errorf("channel %s: %w", channelID, ErrMissingUploads)
	}
	return uploads, nil
}

// PlaylistItems returns every item of a playlist across all pages.
func (c *Client) PlaylistItems(ctx context.Context, playlistID string, progress engine.ProgressFunc) ([]engine.Item, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails")
	params.Set("playlistId", playlistID)
	return readAllPages(ctx, c, "playlistItems", params, decodePlaylistPage, progress)
}

func decodePlaylistPage(page *playlistItemsResp) ([]engine.Item, string) {
	items := make([]engine.Item, 0, len(page.Items))
	for _, it := range page.Items {
		if item, ok := playlistItemToItem(it); ok {
			items = append(items, item)
		}
	}
	return items, page.NextPageToken
}

// playlistItemToItem prefers the video's own publish time over the time it
// was added to the playlist.
func playlistItemToItem(it playlistItemWrap) (engine.Item, bool) {
	if it.ContentDetails == nil {
		return engine.Item{}, false
	}
	var title, published string
	if it.Snippet != nil {
		title, published = it.Snippet.Title, it.Snippet.PublishedAt
	}
	if it.ContentDetails.VideoPublishedAt != "" {
		published = it.ContentDetails.VideoPublishedAt
	}
	return engine.NewItem(it.ContentDetails.VideoID, title, published)
}
