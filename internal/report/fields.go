package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/StillKrisi/bgsbot/internal/ebgs"
	"github.com/StillKrisi/bgsbot/pkg/util"
)

// FieldRecord is one rendering-ready report entry: an embed field plus the
// keys it can be sorted by.
type FieldRecord struct {
	Title     string
	Body      string
	Name      string
	Influence float64
}

// presenceDetail renders the multi-line body for one faction-in-system
// snapshot. updatedAt is whatever timestamp the caller anchors the report
// on; for system reports that is the system's own.
func presenceDetail(p *ebgs.FactionPresence, updatedAt, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Last Updated : %s \n", util.RelativeTime(updatedAt, now))
	fmt.Fprintf(&b, "State : %s\n", p.State)
	fmt.Fprintf(&b, "Influence : %.1f%%\n", p.Influence*100)
	fmt.Fprintf(&b, "Pending States : %s\n", trendList(p.PendingStates))
	fmt.Fprintf(&b, "Recovering States : %s", trendList(p.RecoveringStates))
	return b.String()
}

// trendList renders states as "State⬆️, Other⬇️", or "None" when empty.
func trendList(states []ebgs.TrendState) string {
	if len(states) == 0 {
		return "None"
	}
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = s.State + trendIcon(s.Trend)
	}
	return strings.Join(parts, ", ")
}

// trendIcon maps a trend to its glyph. Total over all integers.
func trendIcon(trend int) string {
	switch {
	case trend > 0:
		return "⬆️"
	case trend < 0:
		return "⬇️"
	default:
		return "↔️"
	}
}
