package trips

import (
	"strings"
	"time"
)

// invalidDateKey is the degenerate daily-series bucket for start timestamps
// that cannot be parsed. Such rows still count toward every other aggregate.
const invalidDateKey = "Invalid Date"

var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
}

// parseStartTime interprets a trip timestamp in local time; the source files
// carry no zone information.
func parseStartTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// monthToken formats local calendar fields as the YYYY-MM filter token.
func monthToken(t time.Time) string {
	return t.Format("2006-01")
}

// dateKey is the UTC date portion used to group the daily trip series.
func dateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
