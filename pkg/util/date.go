package util

import (
	"fmt"
	"time"
)

// RelativeTime renders how long ago t was relative to now, in the coarse
// human buckets report bodies use ("a few seconds ago", "5 minutes ago",
// "a day ago"). Future timestamps are treated as "a few seconds ago".
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}

	switch {
	case d < 45*time.Second:
		return "a few seconds ago"
	case d < 90*time.Second:
		return "a minute ago"
	case d < 45*time.Minute:
		return fmt.Sprintf("%d minutes ago", int(d.Round(time.Minute)/time.Minute))
	case d < 90*time.Minute:
		return "an hour ago"
	case d < 22*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Round(time.Hour)/time.Hour))
	case d < 36*time.Hour:
		return "a day ago"
	case d < 25*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(d.Round(24*time.Hour)/(24*time.Hour)))
	case d < 45*24*time.Hour:
		return "a month ago"
	case d < 319*24*time.Hour:
		return fmt.Sprintf("%d months ago", months(d))
	case d < 548*24*time.Hour:
		return "a year ago"
	default:
		return fmt.Sprintf("%d years ago", int(float64(d)/float64(365*24*time.Hour)+0.5))
	}
}

func months(d time.Duration) int {
	m := int(float64(d)/float64(30*24*time.Hour) + 0.5)
	if m < 2 {
		m = 2
	}
	return m
}
