package allen

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DateLayout renders dates as "Thursday : 01 January 1970".
const DateLayout = "Monday : 02 January 2006"

// ParseDate parses a raw date as sent by the API. Slashed dates are read day
// first, as the platform writes them; an impossible day/month is an error.
func ParseDate(raw string) (time.Time, error) {
	return dateparse.ParseIn(strings.TrimSpace(raw), time.Local,
		dateparse.PreferMonthFirst(false),
		dateparse.RetryAmbiguousDateWithSwap(false),
	)
}

// formatDate returns "" when raw is not a date.
func formatDate(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := ParseDate(raw)
	if err != nil {
		return ""
	}
	return t.Format(DateLayout)
}
