package document

import (
	"strings"
	"testing"
)

func TestElaborate_Empty(t *testing.T) {
	if got := Elaborate(""); got != "" {
		t.Fatalf("Elaborate(empty) = %q, want empty", got)
	}
}

func TestElaborate_KeywordMatch(t *testing.T) {
	got := Elaborate("review syllabus")
	want := "The committee conducted a comprehensive review of review syllabus. " + keywordClosing
	if got != want {
		t.Fatalf("Elaborate(review) = %q, want %q", got, want)
	}
}

func TestElaborate_FirstKeywordWins(t *testing.T) {
	// "review" precedes "schedule" in the rule table, so the review
	// template applies even though both keywords appear.
	got := Elaborate("schedule a review")
	if !strings.HasPrefix(got, "The committee conducted a comprehensive review of ") {
		t.Fatalf("expected review prefix, got %q", got)
	}
}

func TestElaborate_LowercasesMatchedPoint(t *testing.T) {
	got := Elaborate("Approve Lab Budget")
	if !strings.Contains(got, "the committee approved approve lab budget.") {
		t.Fatalf("keyword elaboration should lowercase the point, got %q", got)
	}
}

func TestElaborate_FormalOpenerLeftAlone(t *testing.T) {
	for _, in := range []string{
		"The committee will review the syllabus",
		"It was decided to discuss workload",
		"Following approval of the budget",
	} {
		if got := Elaborate(in); got != in {
			t.Fatalf("formal point %q changed to %q", in, got)
		}
	}
}

func TestElaborate_LongPointLeftAlone(t *testing.T) {
	in := strings.Repeat("review the examination schedule and workload allocation ", 3)
	if len(in) <= elaborationLengthCap {
		t.Fatalf("test input not over cap")
	}
	if got := Elaborate(in); got != in {
		t.Fatalf("long point was elaborated")
	}
}

func TestElaborate_NoKeywordGetsGenericClosing(t *testing.T) {
	got := Elaborate("lab equipment maintenance")
	want := "lab equipment maintenance. " + genericClosing
	if got != want {
		t.Fatalf("Elaborate(no keyword) = %q, want %q", got, want)
	}
}

func TestElaborate_NeverShorterThanInput(t *testing.T) {
	for _, in := range []string{"", "x", "discuss", "The committee met", "plain point"} {
		if got := Elaborate(in); len(got) < len(in) {
			t.Fatalf("Elaborate(%q) shrank to %q", in, got)
		}
	}
}
