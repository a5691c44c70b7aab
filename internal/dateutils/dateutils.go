// Package dateutils provides the date arithmetic shared by the generator and
// the rendition builder. Wire dates are YYYYMMDD (FULL, settlement) or YYMMDD
// (BASIC); operator dates are YYYY-MM-DD.
package dateutils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date layouts used on the wire and in operator input.
const (
	DateLayoutISO     = "2006-01-02"
	DateLayoutCompact = "20060102"
	DateLayoutShort   = "060102"
	DateLayoutPeriod  = "0106"
)

// CenturyPivot is the two-digit year from which YYMMDD dates fall in the 1900s.
const CenturyPivot = 50

// ZeroDate is the placeholder for an absent YYYYMMDD date.
const ZeroDate = "00000000"

// ParseISO parses an operator date (YYYY-MM-DD) as UTC midnight.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(DateLayoutISO, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s': %w", s, err)
	}
	return t, nil
}

// ParseCompact reads an 8-digit YYYYMMDD date. Out-of-range month or day
// values roll over into the following month or year.
func ParseCompact(s string) (time.Time, bool) {
	if len(s) != 8 || !allDigits(s) {
		return time.Time{}, false
	}
	y, _ := strconv.Atoi(s[0:4])
	m, _ := strconv.Atoi(s[4:6])
	d, _ := strconv.Atoi(s[6:8])
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), true
}

// ToCompact formats t as YYYYMMDD.
func ToCompact(t time.Time) string {
	return t.Format(DateLayoutCompact)
}

// ToShort formats t as YYMMDD.
func ToShort(t time.Time) string {
	return t.Format(DateLayoutShort)
}

// CompactToShort drops the century of a YYYYMMDD date. Anything else yields
// "000000".
func CompactToShort(s string) string {
	if len(s) != 8 || !allDigits(s) {
		return "000000"
	}
	return s[2:]
}

// ExpandShort turns a YYMMDD date into YYYYMMDD using CenturyPivot.
func ExpandShort(s string) (string, bool) {
	if len(s) < 6 || !allDigits(s[:6]) {
		return "", false
	}
	yy, _ := strconv.Atoi(s[:2])
	year := 2000 + yy
	if yy >= CenturyPivot {
		year = 1900 + yy
	}
	return fmt.Sprintf("%d%s", year, s[2:6]), true
}

// NormalizeDate accepts YYYY-MM-DD, DD/MM/YYYY or YYYYMMDD and returns
// YYYYMMDD. Empty input yields ZeroDate.
func NormalizeDate(s string) string {
	if s == "" {
		return ZeroDate
	}
	clean := s
	switch {
	case strings.Contains(s, "-"):
		clean = strings.ReplaceAll(s, "-", "")
	case strings.Contains(s, "/"):
		parts := strings.Split(s, "/")
		for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
			parts[i], parts[j] = parts[j], parts[i]
		}
		clean = strings.Join(parts, "")
	}
	if len(clean) > 8 {
		clean = clean[:8]
	}
	return strings.Repeat("0", 8-len(clean)) + clean
}

// AddBusinessDays moves a YYYYMMDD date forward by n weekdays, counting from
// the following day. Saturdays and Sundays are skipped; holidays are not
// known. Input that is not 8 digits is returned unchanged.
func AddBusinessDays(yyyymmdd string, n int) string {
	t, ok := ParseCompact(yyyymmdd)
	if !ok {
		return yyyymmdd
	}
	return ToCompact(AddBusinessDaysTime(t, n))
}

// AddBusinessDaysTime is AddBusinessDays on a time.Time.
func AddBusinessDaysTime(t time.Time, n int) time.Time {
	added := 0
	for added < n {
		t = t.AddDate(0, 0, 1)
		if IsBusinessDay(t) {
			added++
		}
	}
	return t
}

// DaysBetween returns the whole days from one date to another, negative
// when to is before from.
func DaysBetween(from, to time.Time) int {
	from = StartOfDay(from)
	to = StartOfDay(to)
	return int(to.Sub(from).Hours() / 24)
}

// StartOfDay truncates t to midnight UTC of its calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekend checks if a date falls on a weekend (Saturday or Sunday)
func IsWeekend(date time.Time) bool {
	day := date.Weekday()
	return day == time.Saturday || day == time.Sunday
}

// IsBusinessDay checks if a date is a business day (not a weekend)
// Does not account for holidays
func IsBusinessDay(date time.Time) bool {
	return !IsWeekend(date)
}

// CompareDates compares two dates and returns:
//
//	-1 if date1 is before date2
//	 0 if date1 is equal to date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	date1 = StartOfDay(date1)
	date2 = StartOfDay(date2)

	if date1.Before(date2) {
		return -1
	} else if date1.After(date2) {
		return 1
	}
	return 0
}

// CurrentPeriod returns the MMYY billing period of t.
func CurrentPeriod(t time.Time) string {
	return t.Format(DateLayoutPeriod)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
