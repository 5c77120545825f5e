package document

import "testing"

func TestEscapeRTF_ControlCharacters(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{`a\b`, `a\\b`},
		{"{group}", `\{group\}`},
		{`\{`, `\\\{`},
		{`C:\Users\hod`, `C:\\Users\\hod`},
	}
	for _, c := range cases {
		if got := EscapeRTF(c.in); got != c.want {
			t.Fatalf("EscapeRTF(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEscapeRTF_BackslashNotDoubleEscaped(t *testing.T) {
	// A brace escape must not have its introduced backslash re-escaped.
	got := EscapeRTF("{")
	if got != `\{` {
		t.Fatalf("EscapeRTF({) = %q, want %q", got, `\{`)
	}
}

func TestEscapeRTF_NormalizesCurlyQuotes(t *testing.T) {
	got := EscapeRTF("“Dean’s note”")
	want := `"Dean's note"`
	if got != want {
		t.Fatalf("EscapeRTF curly quotes = %q, want %q", got, want)
	}
}
