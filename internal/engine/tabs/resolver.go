// Package tabs builds the ordered item list behind each channel tab and
// coordinates which tab load is allowed to reach the display.
package tabs

import (
	"context"

	"github.com/anatolykoptev/go_tubehub/internal/engine"
	"github.com/anatolykoptev/go_tubehub/internal/engine/sources"
)

// Source is the upstream surface the resolvers compose.
// *sources.Client implements it.
type Source interface {
	UploadsPlaylistID(ctx context.Context, channelID string) (string, error)
	PlaylistItems(ctx context.Context, playlistID string, progress engine.ProgressFunc) ([]engine.Item, error)
	SearchBroadcasts(ctx context.Context, channelID string, event sources.EventType, progress engine.ProgressFunc) ([]engine.Item, error)
	VideoDetails(ctx context.Context, ids []string) ([]engine.Item, error)
}

// Result is the outcome of a successful resolve. NotConfigured marks a
// degraded empty result whose Status explains why nothing was loaded.
type Result struct {
	Items         []engine.Item
	NotConfigured bool
	Status        string
}

// Resolver produces the ordered item list for one tab. Each call starts from
// scratch and owns its own accumulator.
type Resolver interface {
	Resolve(ctx context.Context, progress engine.ProgressFunc) (Result, error)
}

// Settings are the process-wide, read-only inputs of the resolvers.
type Settings struct {
	ChannelID          string
	ShortsPlaylistID   string
	PodcastsPlaylistID string
	PinnedShortID      string
	ShortsScanLimit    int // 0 = unbounded
}

// SettingsFromConfig copies resolver settings out of engine.Cfg.
func SettingsFromConfig() Settings {
	return Settings{
		ChannelID:          engine.Cfg.ChannelID,
		ShortsPlaylistID:   engine.Cfg.ShortsPlaylistID,
		PodcastsPlaylistID: engine.Cfg.PodcastsPlaylistID,
		PinnedShortID:      engine.Cfg.PinnedShortID,
		ShortsScanLimit:    engine.Cfg.ShortsScanLimit,
	}
}

// NewResolvers returns one resolver per tab.
func NewResolvers(src Source, s Settings) map[engine.Tab]Resolver {
	return map[engine.Tab]Resolver{
		engine.TabVideos:   &VideosResolver{src: src, channelID: s.ChannelID},
		engine.TabShorts:   &ShortsResolver{src: src, channelID: s.ChannelID, playlistID: s.ShortsPlaylistID, pinnedID: s.PinnedShortID, scanLimit: s.ShortsScanLimit},
		engine.TabLive:     &LiveResolver{src: src, channelID: s.ChannelID},
		engine.TabPodcasts: &PodcastsResolver{src: src, playlistID: s.PodcastsPlaylistID},
	}
}

// allUploads resolves the channel's uploads playlist and reads it fully.
func allUploads(ctx context.Context, src Source, channelID string, progress engine.ProgressFunc) ([]engine.Item, error) {
	uploads, err := src.UploadsPlaylistID(ctx, channelID)
	if err != nil {
		return nil, err
	}
	return src.PlaylistItems(ctx, uploads, progress)
}
