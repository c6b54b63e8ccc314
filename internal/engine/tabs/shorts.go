package tabs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_tubehub/internal/engine"
	"github.com/anatolykoptev/go_tubehub/internal/engine/sources"
)

// PinnedShortTitle is the placeholder title of a pinned item added without
// metadata.
const PinnedShortTitle = "Short"

// ShortsResolver reads an explicit Shorts playlist when one is configured.
// Otherwise it probes upload durations and keeps short-form items. A scan
// limit below the uploads count only checks the most recent uploads and can
// under-report; that trade-off bounds API quota use.
type ShortsResolver struct {
	src        Source
	channelID  string
	playlistID string
	pinnedID   string
	scanLimit  int
}

func (r *ShortsResolver) Resolve(ctx context.Context, progress engine.ProgressFunc) (Result, error) {
	var (
		shorts []engine.Item
		err    error
	)
	if engine.IsConfiguredID(r.playlistID) {
		progress.Report("Loading shorts...")
		shorts, err = r.src.PlaylistItems(ctx, r.playlistID, progress)
	} else {
		shorts, err = r.scanUploads(ctx, progress)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Items: r.withPinned(shorts)}, nil
}

// scanUploads classifies uploads by duration, 50 ids per details request.
func (r *ShortsResolver) scanUploads(ctx context.Context, progress engine.ProgressFunc) ([]engine.Item, error) {
	progress.Report("Loading shorts (may take a moment)...")
	uploads, err := allUploads(ctx, r.src, r.channelID, progress)
	if err != nil {
		return nil, err
	}

	if r.scanLimit > 0 && r.scanLimit < len(uploads) {
		uploads = uploads[:r.scanLimit]
	}
	ids := make([]string, len(uploads))
	for i, it := range uploads {
		ids[i] = it.ID
	}

	var shorts []engine.Item
	scanned := 0
	for _, chunk := range sources.ChunkIDs(ids, sources.MaxPageSize) {
		scanned += len(chunk)
		progress.Report(fmt.Sprintf("Checking shorts... (%d/%d)", scanned, len(ids)))

		details, err := r.src.VideoDetails(ctx, chunk)
		if err != nil {
			return nil, err
		}
		engine.AddShortsScanned(len(chunk))
		for _, d := range details {
			if d.DurationSeconds != nil && sources.IsShortForm(*d.DurationSeconds) {
				shorts = append(shorts, d)
			}
		}
	}
	slog.Debug("shorts: scan complete",
		slog.Int("scanned", len(ids)), slog.Int("shorts", len(shorts)))
	return shorts, nil
}

// withPinned prepends the pinned item when it is configured and missing.
// The pinned item bypasses duration classification.
func (r *ShortsResolver) withPinned(items []engine.Item) []engine.Item {
	if r.pinnedID == "" || engine.ContainsItem(items, r.pinnedID) {
		return items
	}
	pinned := engine.Item{ID: r.pinnedID, Title: PinnedShortTitle}
	return append([]engine.Item{pinned}, items...)
}
