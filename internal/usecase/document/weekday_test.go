package document

import "testing"

func TestWeekdayName_DayMonthYear(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"15 March 2025", "Saturday"},
		{"08 January 2025", "Wednesday"},
		{"8 january 2025", "Wednesday"},
		{"1 December 2025", "Monday"},
	}
	for _, c := range cases {
		if got := WeekdayName(c.in); got != c.want {
			t.Fatalf("WeekdayName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWeekdayName_FallbackLayouts(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-01-08", "Wednesday"},
		{"15/03/2025", "Saturday"}, // day first
		{"March 15, 2025", "Saturday"},
		{"15 Mar 2025", "Saturday"},
	}
	for _, c := range cases {
		if got := WeekdayName(c.in); got != c.want {
			t.Fatalf("WeekdayName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWeekdayName_Unparseable(t *testing.T) {
	for _, in := range []string{"", "  ", "next tuesday", "32 January 2025", "15 Smarch 2025"} {
		if got := WeekdayName(in); got != "" {
			t.Fatalf("WeekdayName(%q) = %q, want empty", in, got)
		}
	}
}

func TestFormatDateWithDay(t *testing.T) {
	if got := FormatDateWithDay("08 January 2025", true); got != "Wednesday, 08 January 2025" {
		t.Fatalf("unexpected formatted date %q", got)
	}
	if got := FormatDateWithDay("08 January 2025", false); got != "08 January 2025" {
		t.Fatalf("date changed with includeDay=false: %q", got)
	}
	// Underivable dates pass through unchanged rather than erroring.
	if got := FormatDateWithDay("sometime soon", true); got != "sometime soon" {
		t.Fatalf("unparseable date mangled: %q", got)
	}
}
