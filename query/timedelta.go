package query

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the formats the intake forms have historically submitted.
// Anything else is treated as an absent date.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"02/01/2006",
}

// parseDate parses a stored date string. ok is false for empty or
// unparseable values, which the matchers treat as absence.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// hasDate reports whether a stored date string carries a usable date
func hasDate(s string) bool {
	_, ok := parseDate(s)
	return ok
}

// olderThan reports whether date lies more than thresholdDays whole days away
// from now. The day count is the absolute difference rounded up. An absent or
// unparseable date or threshold never satisfies the filter.
func olderThan(date, thresholdDays string, now time.Time) bool {
	n, err := strconv.Atoi(strings.TrimSpace(thresholdDays))
	if err != nil {
		return false
	}
	t, ok := parseDate(date)
	if !ok {
		return false
	}
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	return days > n
}
