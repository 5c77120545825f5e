package document

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dayMonthYear matches dates like "08 January 2025" or "8 january 2025"
var dayMonthYear = regexp.MustCompile(`(?i)^(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})$`)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// fallbackLayouts is the closed set of additionally accepted date formats.
// Day-first slash dates are assumed; anything outside this list is treated
// as unparseable rather than handed to locale-dependent guessing.
var fallbackLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"02 Jan 2006",
}

// WeekdayName derives the English day-of-week name from a loosely
// formatted date string. It first tries the "<day> <month name> <year>"
// form against the fixed English month table, then the enumerated fallback
// layouts. It returns "" when no strategy yields a valid calendar date and
// never returns an error.
func WeekdayName(dateString string) string {
	s := strings.TrimSpace(dateString)
	if s == "" {
		return ""
	}

	if m := dayMonthYear.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		for i, name := range monthNames {
			if strings.EqualFold(m[2], name) {
				iso := fmt.Sprintf("%s-%02d-%02d", m[3], i+1, day)
				if t, err := time.Parse("2006-01-02", iso); err == nil {
					return t.Weekday().String()
				}
				break
			}
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Weekday().String()
		}
	}

	return ""
}

// FormatDateWithDay prefixes the date with its weekday name when requested
// and derivable, e.g. "Wednesday, 08 January 2025". When the weekday
// cannot be derived the date is returned unchanged, so output simply omits
// the day name.
func FormatDateWithDay(date string, includeDay bool) string {
	if !includeDay {
		return date
	}
	if day := WeekdayName(date); day != "" {
		return day + ", " + date
	}
	return date
}
