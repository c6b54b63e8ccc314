package tabs

import (
	"context"

	"github.com/anatolykoptev/go_tubehub/internal/engine"
)

// StatusPodcastsNotConfigured is shown instead of loading when no podcast
// playlist is configured.
const StatusPodcastsNotConfigured = "Podcasts playlist not set."

// PodcastsResolver lists the configured podcast playlist.
type PodcastsResolver struct {
	src        Source
	playlistID string
}

func (r *PodcastsResolver) Resolve(ctx context.Context, progress engine.ProgressFunc) (Result, error) {
	if !engine.IsConfiguredID(r.playlistID) {
		return Result{NotConfigured: true, Status: StatusPodcastsNotConfigured}, nil
	}
	progress.Report("Loading podcasts...")
	items, err := r.src.PlaylistItems(ctx, r.playlistID, progress)
	if err != nil {
		return Result{}, err
	}
	return Result{Items: items}, nil
}
