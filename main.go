// go_tubehub: YouTube channel tab aggregator MCP server.
//
// Exposes two MCP tools: channel_tab and channel_view.
// Each tab (videos, shorts, live, podcasts) is rebuilt from the YouTube Data
// API on selection; only the latest selection is ever displayed.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_tubehub/internal/engine"
	"github.com/anatolykoptev/go_tubehub/internal/engine/sources"
	"github.com/anatolykoptev/go_tubehub/internal/engine/tabs"
	"github.com/anatolykoptev/go_tubehub/internal/tubeserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initLogging()
	initEngine()

	slog.Info("starting go_tubehub",
		slog.String("port", mcpPort),
		slog.String("channel", engine.Cfg.ChannelID),
	)

	view := tubeserver.NewView()
	resolvers := tabs.NewResolvers(sources.NewClientFromConfig(), tabs.SettingsFromConfig())
	coord := tabs.NewCoordinator(view, resolvers)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_tubehub",
		Version: version,
	}, nil)

	tubeserver.RegisterTools(server, tubeserver.NewTools(coord, view, engine.Cfg.DefaultTab))
	slog.Info("tools registered", slog.Int("count", 2))

	// Initial load of the default tab, as on first page open.
	go coord.Select(context.Background(), engine.Cfg.DefaultTab)

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_tubehub",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initLogging() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(env.Str("LOG_LEVEL", "info"))); err != nil {
		slog.Warn("invalid LOG_LEVEL, using info", slog.Any("error", err))
		level = slog.LevelInfo
	}
	slog.SetLogLoggerLevel(level)
}

func initEngine() {
	timeout := env.Duration("HTTP_TIMEOUT", 15*time.Second)
	c := engine.Config{
		YouTubeAPIKey:      env.Str("YOUTUBE_API_KEY", ""),
		YouTubeAPIBase:     env.Str("YOUTUBE_API_BASE", engine.DefaultYouTubeAPIBase),
		ChannelID:          env.Str("CHANNEL_ID", ""),
		ShortsPlaylistID:   env.Str("SHORTS_PLAYLIST_ID", ""),
		PodcastsPlaylistID: env.Str("PODCASTS_PLAYLIST_ID", ""),
		PinnedShortID:      env.Str("PINNED_SHORT_ID", ""),
		ShortsScanLimit:    env.Int("SHORTS_SCAN_LIMIT", 200),
		HTTPTimeout:        timeout,
		APIRateLimit:       env.Float("API_RATE_LIMIT", 0),
		APIRateBurst:       env.Int("API_RATE_BURST", 5),
		HTTPClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	tab, ok := engine.ParseTab(env.Str("DEFAULT_TAB", string(engine.TabVideos)))
	if !ok {
		slog.Warn("unknown DEFAULT_TAB, using videos", slog.String("tab", string(tab)))
		tab = engine.TabVideos
	}
	c.DefaultTab = tab

	if c.YouTubeAPIKey == "" {
		slog.Warn("YOUTUBE_API_KEY is not set, every load will fail")
	}
	if !engine.IsConfiguredID(c.ChannelID) {
		slog.Warn("CHANNEL_ID is not set, videos, live and shorts fallback will fail")
	}

	engine.Init(c)
}
