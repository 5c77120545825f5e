package document

import (
	"reflect"
	"testing"
)

func TestParsePoints_StripsPrefixesAndBlanks(t *testing.T) {
	in := "- review syllabus\n\n• discuss workload  \n2. examination duties\n* lab schedules\n   \n"
	want := []string{"review syllabus", "discuss workload", "examination duties", "lab schedules"}
	if got := ParsePoints(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("ParsePoints = %v, want %v", got, want)
	}
}

func TestParsePoints_OnePrefixPerLine(t *testing.T) {
	// Only the leading marker is stripped; inner numbering stays.
	got := ParsePoints("1. phase 2. rollout")
	want := []string{"phase 2. rollout"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParsePoints = %v, want %v", got, want)
	}
}

func TestParsePoints_Empty(t *testing.T) {
	if got := ParsePoints(""); got != nil {
		t.Fatalf("ParsePoints(empty) = %v, want nil", got)
	}
	if got := ParsePoints("- \n• \n"); got != nil {
		t.Fatalf("ParsePoints(markers only) = %v, want nil", got)
	}
}
