package checks

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// freshnessWindow is how recent a modification date must be to count as
// fresh, shared by the schema, sitemap and visible-date checks.
const freshnessWindow = 180 * 24 * time.Hour

// parseDate is the shared date helper. Every evaluator that needs a date
// parses it independently, there is no cross-check plumbing of parsed
// values.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.Trim(strings.TrimSpace(raw), ".,;")
	if raw == "" {
		return time.Time{}, false
	}
	t, errParse := dateparse.ParseAny(raw)
	if errParse != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseLooseDate handles dates followed by prose ("May 10, 2024 by the
// owner") by dropping trailing words until something parses.
func parseLooseDate(raw string) (time.Time, bool) {
	fields := strings.Fields(raw)
	for i := len(fields); i >= 1; i-- {
		if t, ok := parseDate(strings.Join(fields[:i], " ")); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func isFresh(t time.Time, now time.Time) bool {
	return !t.IsZero() && now.Sub(t) <= freshnessWindow
}

func daysOld(t time.Time, now time.Time) int {
	return int(now.Sub(t).Hours() / 24)
}
