package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	YouTubeAPIKey      string
	YouTubeAPIBase     string
	ChannelID          string // uploads source channel
	ShortsPlaylistID   string // optional; empty = duration-probe fallback
	PodcastsPlaylistID string
	PinnedShortID      string // optional
	ShortsScanLimit    int    // 0 = scan all uploads
	DefaultTab         Tab
	HTTPTimeout        time.Duration
	APIRateLimit       float64 // requests per second, 0 = unlimited
	APIRateBurst       int
	HTTPClient         *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources, tabs).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.YouTubeAPIBase == "" {
		c.YouTubeAPIBase = DefaultYouTubeAPIBase
	}
	if c.DefaultTab == "" {
		c.DefaultTab = TabVideos
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.HTTPTimeout}
	}
	cfg = c
	Cfg = &cfg
}
