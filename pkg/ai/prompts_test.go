package ai

import (
	"strings"
	"testing"
)

func TestBuildMOMPrompt(t *testing.T) {
	prompt := BuildMOMPrompt(
		[]string{"End Semester Examination"},
		[]string{"review syllabus", "invigilation duties"},
		"The meeting concluded at noon.",
	)

	for _, want := range []string{
		"1. End Semester Examination",
		"1. review syllabus",
		"2. invigilation duties",
		`"The meeting concluded at noon."`,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
