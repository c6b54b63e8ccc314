package sources

import (
	"context"
	"net/url"

	"github.com/anatolykoptev/go_tubehub/internal/engine"
)

// EventType selects broadcasts by state in search.list.
type EventType string

const (
	EventLive      EventType = "live"
	EventCompleted EventType = "completed"
	EventUpcoming  EventType = "upcoming"
)

// SearchBroadcasts returns the channel's videos in the given broadcast state,
// newest first, across all result pages.
func (c *Client) SearchBroadcasts(ctx context.Context, channelID string, event EventType, progress engine.ProgressFunc) ([]engine.Item, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("channelId", channelID)
	params.Set("eventType", string(event))
	params.Set("type", "video")
	params.Set("order", "date")
	return readAllPages(ctx, c, "search", params, decodeSearchPage, progress)
}

func decodeSearchPage(page *searchResp) ([]engine.Item, string) {
	items := make([]engine.Item, 0, len(page.Items))
	for _, it := range page.Items {
		if it.ID == nil {
			continue
		}
		title, published := it.Snippet.fields()
		if item, ok := engine.NewItem(it.ID.VideoID, title, published); ok {
			items = append(items, item)
		}
	}
	return items, page.NextPageToken
}
