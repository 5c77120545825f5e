package document

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-docgen/internal/domain/entities"
)

// Mathematical bold alphanumerics used to fake bold headings in plain
// text. Ranges are contiguous in Unicode, so offsets suffice.
const (
	boldCapitalA = 0x1D400 // 𝐀
	boldSmallA   = 0x1D41A // 𝐚
	boldDigit0   = 0x1D7CE // 𝟎
)

// ToBoldUnicode maps ASCII letters and digits to their mathematical-bold
// code points. Any other rune passes through unchanged, so punctuation in
// labels like "Date:" keeps its plain form.
func ToBoldUnicode(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 4)
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(boldCapitalA + (r - 'A'))
		case r >= 'a' && r <= 'z':
			b.WriteRune(boldSmallA + (r - 'a'))
		case r >= '0' && r <= '9':
			b.WriteRune(boldDigit0 + (r - '0'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NoticeText renders the plain-text fallback of a notice. Content mirrors
// BuildNoticeRTF line for line: same body sentence, same weekday rule,
// same fixed lines. Plain text has no control characters, so nothing is
// escaped.
func NoticeText(rec entities.NoticeRecord) string {
	var b strings.Builder

	b.WriteString(ToBoldUnicode("Date:") + " - " + rec.Date + "\n")
	b.WriteString(entities.DefaultDepartment + "\n")
	b.WriteString(noticeTitle + "\n")
	b.WriteString("\n")

	b.WriteString(bodySentence(rec) + "\n")
	b.WriteString("\n")
	b.WriteString(attendanceRequest + "\n")

	if rec.ExtraBlank {
		b.WriteString("\n")
	}

	b.WriteString(signatoryLine + "\n")
	b.WriteString(copyToLine + "\n")
	b.WriteString("• All faculty members of CSE\n")
	b.WriteString("• Principal – for kind Information\n")
	b.WriteString("• Chairman (BG) for kind information\n")

	return b.String()
}

// MOMText renders the plain-text fallback of Minutes of Meeting, reusing
// the same point parsing and elaboration pipeline as the RTF builder so
// the two outputs stay content-equivalent. Headings use Unicode bold
// glyphs in place of RTF bold tokens.
func MOMText(rec entities.MOMRecord) string {
	var b strings.Builder

	b.WriteString(rec.DepartmentOrDefault() + "\n")
	b.WriteString("\n")

	b.WriteString(ToBoldUnicode("Date:") + " - " + rec.Date + "\n")
	b.WriteString(ToBoldUnicode("Time:") + " " + rec.Time + "\n")
	b.WriteString(ToBoldUnicode("Venue:") + " " + rec.Venue + "\n")
	b.WriteString("\n")

	if len(rec.AgendaItems) > 0 {
		b.WriteString(ToBoldUnicode(agendaHeading) + "\n")
		for i, item := range rec.AgendaItems {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
		}
		b.WriteString("\n")
	}

	b.WriteString(ToBoldUnicode(momHeading) + "\n")

	if rec.Discussion != "" {
		for i, point := range ParsePoints(rec.Discussion) {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, Elaborate(point)))
		}
		b.WriteString("\n")
	}

	b.WriteString(closingStatement + "\n")

	return b.String()
}
