package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NoDate is the sentinel category for records whose reference date could not
// be parsed. It is distinct from "No Expiry Date" and is excluded from
// category-based sums.
const NoDate = "-"

// Expiry-note categories in canonical display order.
var EDCategories = []string{
	"Expired",
	"NED 1 Month",
	"NED 2 Month",
	"NED 3 Month",
	"3 - 6 Month",
	"6 - 12 Month",
	"1yr++",
	"No Expiry Date",
}

// CriticalEDCategories are the buckets counted into the critical stock card.
var CriticalEDCategories = EDCategories[:4]

var edCategoryRank = func() map[string]int {
	m := make(map[string]int, len(EDCategories))
	for i, c := range EDCategories {
		m[c] = i
	}
	return m
}()

// EDCategoryLess orders expiry categories canonically; unknown labels sort
// last.
func EDCategoryLess(a, b string) bool {
	ra, oka := edCategoryRank[a]
	rb, okb := edCategoryRank[b]
	if oka != okb {
		return oka
	}
	if !oka {
		return a < b
	}

	return ra < rb
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween is the whole-day difference exp minus ref, truncated.
func daysBetween(exp, ref time.Time) int {
	return int(truncateToDay(exp).Sub(truncateToDay(ref)).Hours() / 24)
}

// EDNoteAt buckets an expiry date string against a known reference date.
// Empty or unparseable expiry input resolves to "No Expiry Date".
func EDNoteAt(expStr string, ref time.Time) string {
	exp, ok := ParseDate(expStr)
	if !ok {
		return "No Expiry Date"
	}

	diff := daysBetween(exp, ref)
	switch {
	case diff < 0:
		return "Expired"
	case diff <= 30:
		return "NED 1 Month"
	case diff <= 60:
		return "NED 2 Month"
	case diff <= 90:
		return "NED 3 Month"
	case diff <= 180:
		return "3 - 6 Month"
	case diff <= 365:
		return "6 - 12 Month"
	default:
		return "1yr++"
	}
}

// EDNote buckets an expiry date against a reference date, both free-form
// strings. An unparseable reference yields the "-" sentinel.
func EDNote(expStr, refStr string) string {
	ref, ok := ParseDate(refStr)
	if !ok {
		return NoDate
	}

	return EDNoteAt(expStr, ref)
}

// EDNoteOrNow buckets like EDNote but falls back to now when the reference
// string does not parse. Used on the public aging page, which must always
// place a record in a bucket.
func EDNoteOrNow(expStr, refStr string, now time.Time) string {
	ref, ok := ParseDate(refStr)
	if !ok {
		ref = now
	}

	return EDNoteAt(expStr, ref)
}

// AgingNote buckets a warehouse arrival date into a quarter label. Years
// before baseYear collapse into a single "Under {baseYear}" bucket;
// unparseable input yields the "-" sentinel.
func AgingNote(arrivalStr string, baseYear int) string {
	t, ok := ParseDate(arrivalStr)
	if !ok {
		return NoDate
	}
	if t.Year() < baseYear {
		return fmt.Sprintf("Under %d", baseYear)
	}

	return fmt.Sprintf("Q%d %d", (int(t.Month())-1)/3+1, t.Year())
}

// AgingLess orders aging-note labels chronologically: "Under YYYY" buckets
// first, then quarters, with the "-" sentinel last.
func AgingLess(a, b string) bool {
	return agingRank(a) < agingRank(b)
}

func agingRank(label string) int {
	if label == NoDate {
		return 1 << 30
	}
	if rest, ok := strings.CutPrefix(label, "Under "); ok {
		if y, err := strconv.Atoi(rest); err == nil {
			return y*4 - 4
		}
		return 1 << 30
	}
	var q, y int
	if _, err := fmt.Sscanf(label, "Q%d %d", &q, &y); err == nil {
		return y*4 + q - 1
	}

	return 1 << 30
}

// Manpower divisions in canonical display order. The last entry is the
// catch-all for temporary staff.
var Divisions = []string{
	"Inbound",
	"Inventory",
	"Return",
	"Bongkaran/Project/Tambahan",
}

// DivisionTambahan is the catch-all division for temporary staff.
const DivisionTambahan = "Bongkaran/Project/Tambahan"

var jobDivisions = map[string]string{
	"Troubleshoot":      "Inventory",
	"Project Inventory": "Inventory",
	"Damage Project":    "Inventory",
	"Cycle Count":       "Inventory",
	"STO":               "Inventory",
	"Admin":             "Inbound",
	"VAS":               "Inbound",
	"Putaway":           "Inbound",
	"Inspect":           "Inbound",
	"Bongkaran":         "Inbound",
	"Receive":           "Inbound",
	"Return":            "Return",
}

// Division resolves an employee to a headcount division. Temporary staff
// (status "Tambahan") always land in the catch-all division. Only staff with
// status exactly "Reguler" route by job description; any other status is
// excluded (ok=false), as is a Reguler employee with an unmapped jobdesc.
func Division(status, jobdesc string) (string, bool) {
	if strings.EqualFold(strings.TrimSpace(status), "Tambahan") {
		return DivisionTambahan, true
	}
	if strings.TrimSpace(status) != "Reguler" {
		return "", false
	}
	div, ok := jobDivisions[strings.TrimSpace(jobdesc)]

	return div, ok
}

// WeekKey labels a date by its week-of-month, e.g. "W2 Aug".
func WeekKey(t time.Time) string {
	return fmt.Sprintf("W%d %s", (t.Day()+6)/7, t.Month().String()[:3])
}

var monthAbbrevRank = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4, "May": 5, "Jun": 6,
	"Jul": 7, "Aug": 8, "Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

// WeekLess orders WeekKey labels by month then week number.
func WeekLess(a, b string) bool {
	return weekRank(a) < weekRank(b)
}

func weekRank(label string) int {
	var w int
	var mon string
	if _, err := fmt.Sscanf(label, "W%d %s", &w, &mon); err != nil {
		return 1 << 30
	}

	return monthAbbrevRank[mon]*10 + w
}

// MonthKey labels a date by calendar month, e.g. "2026-08". Month keys sort
// chronologically as plain strings.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
