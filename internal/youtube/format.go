package youtube

import (
	"fmt"
	"regexp"
	"strconv"
)

var durationRE = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// FormatDuration renders an ISO-8601 duration like "PT1H2M3S" as "1:02:03".
// Unparsable input renders as "0:00".
func FormatDuration(iso string) string {
	m := durationRE.FindStringSubmatch(iso)
	if m == nil {
		return "0:00"
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatViewCount renders a numeric view count as "1.5M views" style text.
func FormatViewCount(count string) string {
	n, err := strconv.ParseInt(count, 10, 64)
	if err != nil {
		return "0 views"
	}
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM views", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK views", float64(n)/1_000)
	}
	return fmt.Sprintf("%d views", n)
}
