// Package toolutil provides shared helpers for go_tubehub MCP tools.
package toolutil

import (
	"time"

	"github.com/anatolykoptev/go_tubehub/internal/engine"
)

const (
	embedBase  = "https://www.youtube.com/embed/"
	dateLayout = "Jan 2, 2006"
)

// NormTab normalises a tab field: empty string → def. Unknown names are
// passed through so the coordinator can report them.
func NormTab(raw string, def engine.Tab) engine.Tab {
	tab, _ := engine.ParseTab(raw)
	if tab == "" {
		return def
	}
	return tab
}

// EmbedURL returns the player embed URL for a video id.
func EmbedURL(id string) string {
	return embedBase + id
}

// FormatDate renders a publish date for display, or "" when unknown.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
