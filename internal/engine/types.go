package engine

import (
	"strings"
	"time"
)

// DefaultYouTubeAPIBase is the Data API v3 root used when none is configured.
const DefaultYouTubeAPIBase = "https://www.googleapis.com/youtube/v3"

// UntitledTitle replaces missing upstream titles.
const UntitledTitle = "Untitled"

// --- Tabs ---

// Tab names one of the channel content categories.
type Tab string

const (
	TabVideos   Tab = "videos"
	TabShorts   Tab = "shorts"
	TabLive     Tab = "live"
	TabPodcasts Tab = "podcasts"
)

// Tabs lists every known tab in display order.
var Tabs = []Tab{TabVideos, TabShorts, TabLive, TabPodcasts}

// ParseTab normalizes a tab name. ok is false for unknown names.
func ParseTab(s string) (Tab, bool) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Tabs {
		if t == known {
			return t, true
		}
	}
	return t, false
}

// --- Items ---

// Item is a single piece of channel content. Only ID is required.
type Item struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	PublishedAt     time.Time `json:"published_at,omitzero"`
	DurationSeconds *int      `json:"duration_seconds,omitempty"`
}

// NewItem builds an Item, applying the title default and parsing an RFC 3339
// timestamp. ok is false when id is empty.
func NewItem(id, title, publishedAt string) (Item, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Item{}, false
	}
	if strings.TrimSpace(title) == "" {
		title = UntitledTitle
	}
	item := Item{ID: id, Title: title}
	if publishedAt != "" {
		if t, err := time.Parse(time.RFC3339, publishedAt); err == nil {
			item.PublishedAt = t
		}
	}
	return item, true
}

// WithDuration returns a copy of the item carrying a duration.
func (it Item) WithDuration(seconds int) Item {
	it.DurationSeconds = &seconds
	return it
}

// ContainsItem reports whether items holds an item with the given id.
func ContainsItem(items []Item, id string) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// ProgressFunc receives human-readable status updates during a load.
// A nil ProgressFunc is valid and discards updates.
type ProgressFunc func(status string)

// Report calls p when it is set.
func (p ProgressFunc) Report(status string) {
	if p != nil {
		p(status)
	}
}
