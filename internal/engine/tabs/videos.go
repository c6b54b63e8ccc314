package tabs

import (
	"context"

	"github.com/anatolykoptev/go_tubehub/internal/engine"
)

// VideosResolver lists every upload, unfiltered, in playlist order.
type VideosResolver struct {
	src       Source
	channelID string
}

func (r *VideosResolver) Resolve(ctx context.Context, progress engine.ProgressFunc) (Result, error) {
	progress.Report("Loading videos...")
	items, err := allUploads(ctx, r.src, r.channelID, progress)
	if err != nil {
		return Result{}, err
	}
	return Result{Items: items}, nil
}
