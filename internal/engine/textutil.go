package engine

import (
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// User-Agent sent to the Data API.
const UserAgentBot = "GoTubeHub/1.0"

// placeholderMarker flags ids copied from sample configs, e.g. "PUT_PLAYLIST_ID_HERE".
const placeholderMarker = "PUT_"

// IsConfiguredID reports whether a playlist id looks real: longer than 10
// characters and not a placeholder.
func IsConfiguredID(id string) bool {
	id = strings.TrimSpace(id)
	return len(id) > 10 && !strings.Contains(id, placeholderMarker)
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Safe for UTF-8 titles (Cyrillic, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}
