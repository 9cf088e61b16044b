package report

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts is the ordered list of accepted date formats. Upstream exports
// mix US-style and day-first dates plus ISO; the first layout that parses to
// a valid calendar date wins.
var dateLayouts = []string{
	"1/2/2006",
	"01/02/2006",
	"2006-01-02",
	"2/1/2006",
	"02/01/2006",
	"1/2/2006 15:04:05",
	"01/02/2006 15:04:05",
	"2006-01-02 15:04:05",
	"2/1/2006 15:04:05",
	"02/01/2006 15:04:05",
	"1/2/2006 15:04",
	"2006-01-02T15:04:05",
}

// ParseDate parses a free-form date string from the upstream exports.
// Empty or unparseable input returns ok=false, never an error; callers are
// expected to handle the missing case explicitly.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	// Permissive fallback: retry the date part alone when a time suffix in
	// an unlisted shape trips the full-layout parse.
	if i := strings.IndexByte(s, ' '); i > 0 {
		head := s[:i]
		for _, layout := range dateLayouts[:5] {
			if t, err := time.Parse(layout, head); err == nil {
				return t, true
			}
		}
	}

	return time.Time{}, false
}

// ParseQty parses an integer quantity defensively. Thousand separators and a
// trailing decimal point are tolerated; non-numeric input yields 0.
func ParseQty(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}

// ParseClock parses a wall-clock string ("7:30", "07:30:15") into minutes
// since midnight.
func ParseClock(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}

	return h*60 + m, true
}

// FormatDuration renders a minute count as "Xh Ym" for dashboard cards.
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}

	return strconv.Itoa(minutes/60) + "h " + strconv.Itoa(minutes%60) + "m"
}
