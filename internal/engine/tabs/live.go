package tabs

import (
	"context"
	"log/slog"

	"github.com/anatolykoptev/go_tubehub/internal/engine"
	"github.com/anatolykoptev/go_tubehub/internal/engine/sources"
)

// LiveResolver shows current broadcasts, or past ones when nothing is live.
// An empty live-now result must never render as "nothing found" while
// completed broadcasts exist.
type LiveResolver struct {
	src       Source
	channelID string
}

func (r *LiveResolver) Resolve(ctx context.Context, progress engine.ProgressFunc) (Result, error) {
	progress.Report("Loading live...")
	live, err := r.src.SearchBroadcasts(ctx, r.channelID, sources.EventLive, progress)
	if err != nil {
		return Result{}, err
	}
	if len(live) > 0 {
		return Result{Items: live}, nil
	}

	slog.Debug("live: nothing on air, falling back to completed broadcasts",
		slog.String("channel", r.channelID))
	progress.Report("No live right now, loading past live streams...")
	completed, err := r.src.SearchBroadcasts(ctx, r.channelID, sources.EventCompleted, progress)
	if err != nil {
		return Result{}, err
	}
	return Result{Items: completed}, nil
}
