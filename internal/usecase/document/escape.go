package document

import "strings"

// rtfEscaper escapes the three RTF control characters. Backslash must be
// first so escapes introduced for braces are not re-escaped.
var rtfEscaper = strings.NewReplacer(
	`\`, `\\`,
	`{`, `\{`,
	`}`, `\}`,
)

// quoteNormalizer maps Unicode curly quotes to their straight ASCII
// equivalents so Word does not render stray smart quotes.
var quoteNormalizer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// EscapeRTF makes arbitrary user text safe to embed in an RTF document.
// Every user-supplied field must pass through here before it touches the
// output; literal template text never does. Empty input yields empty
// output.
func EscapeRTF(s string) string {
	if s == "" {
		return ""
	}
	return quoteNormalizer.Replace(rtfEscaper.Replace(s))
}
