package sources

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_tubehub/internal/engine"
)

// ErrTooManyIDs is returned when VideoDetails receives more than MaxPageSize ids.
var ErrTooManyIDs = errors.New("videos.list accepts at most 50 ids")

// VideoDetails looks up title, publish time and duration for up to 50 ids.
// Callers chunk longer lists with ChunkIDs.
func (c *Client) VideoDetails(ctx context.Context, ids []string) ([]engine.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > MaxPageSize {
		return nil, fmt.Errorf("%d ids: %w", len(ids), ErrTooManyIDs)
	}

	params := url.Values{}
	params.Set("part", "contentDetails,snippet")
	params.Set("id", strings.Join(ids, ","))

	var resp videosResp
	if err := c.fetcher.FetchJSON(ctx, c.endpoint("videos", params), &resp); err != nil {
		return nil, fmt.Errorf("video details: %w", err)
	}

	items := make([]engine.Item, 0, len(resp.Items))
	for _, v := range resp.Items {
		title, published := v.Snippet.fields()
		item, ok := engine.NewItem(v.ID, title, published)
		if !ok {
			continue
		}
		var duration string
		if v.ContentDetails != nil {
			duration = v.ContentDetails.Duration
		}
		items = append(items, item.WithDuration(ParseDuration(duration)))
	}
	return items, nil
}

// ChunkIDs splits ids into consecutive groups of at most size.
func ChunkIDs(ids []string, size int) [][]string {
	if size <= 0 {
		size = MaxPageSize
	}
	var chunks [][]string
	for i := 0; i < len(ids); i += size {
		j := min(i+size, len(ids))
		chunks = append(chunks, ids[i:j])
	}
	return chunks
}
