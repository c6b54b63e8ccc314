package sources

import (
	"regexp"
	"strconv"
)

// ShortFormMaxSeconds is the longest duration still classified as a Short.
const ShortFormMaxSeconds = 60

var durationRe = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDuration converts an ISO 8601 duration such as "PT1H2M3S" to seconds.
// Missing components count as zero; unparseable input yields 0.
func ParseDuration(s string) int {
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	return atoiOrZero(m[1])*3600 + atoiOrZero(m[2])*60 + atoiOrZero(m[3])
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// IsShortForm reports whether seconds falls in (0, 60]. Zero-length items
// (live streams, private or deleted videos) are never Shorts.
func IsShortForm(seconds int) bool {
	return seconds > 0 && seconds <= ShortFormMaxSeconds
}
