package document

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-docgen/internal/domain/entities"
)

// Fixed template lines shared by both renderers. User text never appears
// here; these are literal and therefore not escaped.
const (
	noticeTitle       = "NOTICE"
	attendanceRequest = "All faculty members are requested to attend the meeting on time."
	signatoryLine     = "HOD (CSE)"
	copyToLine        = "Copy to:"
	momHeading        = "Minutes of Meeting:"
	agendaHeading     = "Agenda:"
	closingStatement  = "The meeting concluded at 12:00 PM with positive remarks from the Head of Department"
)

// copyRecipients is the fixed distribution list on every notice. The
// second entry carries an RTF em-dash control word; its plain-text
// counterpart lives in plaintext.go.
var copyRecipients = []string{
	"All faculty members of CSE",
	`Principal \endash for kind Information`,
	"Chairman (BG) for kind information",
}

// bodySentence composes the single body sentence shared by the notice
// renderers. Fields arrive unescaped; each renderer escapes as needed.
func bodySentence(rec entities.NoticeRecord) string {
	dateWithDay := FormatDateWithDay(rec.Date, rec.IncludeDay)
	return fmt.Sprintf(
		"A departmental meeting is scheduled on %s at %s in the %s, regarding the preparation and coordination of %s.",
		dateWithDay, rec.Time, rec.Venue, rec.Agenda,
	)
}

// fontTable returns the RTF font table declaration for the chosen family
func fontTable(font entities.FontFamily) string {
	if font == entities.FontCalibri {
		return `{\fonttbl{\f0\fswiss\fcharset0 Calibri;}}`
	}
	return `{\fonttbl{\f0\froman\fcharset0 Times New Roman;}}`
}

// fontSizeToken maps the point size to the RTF half-point control word.
// Unrecognised sizes fall back to 12pt.
func fontSizeToken(size entities.FontSize) string {
	switch size {
	case entities.FontSize13:
		return `\fs26`
	case entities.FontSize14:
		return `\fs28`
	default:
		return `\fs24`
	}
}

// paragraphOpts controls alignment and styling of a single RTF paragraph
type paragraphOpts struct {
	align     string // "center", "right", "justify" or "" for left
	bold      bool
	underline bool
}

// paragraph emits one escaped, styled RTF paragraph ending in \par
func paragraph(text string, opts paragraphOpts) string {
	alignCtrl := `\pard`
	switch opts.align {
	case "center":
		alignCtrl = `\pard\qc`
	case "right":
		alignCtrl = `\pard\qr`
	case "justify":
		alignCtrl = `\pard\qj`
	}

	var styleStart, styleEnd string
	if opts.bold {
		styleStart += `\b `
		styleEnd = `\b0` + styleEnd
	}
	if opts.underline {
		styleStart += `\ul `
		styleEnd = `\ulnone` + styleEnd
	}

	return alignCtrl + " " + styleStart + EscapeRTF(text) + styleEnd + "\\par\n"
}

// bullet emits a bullet line using the \'95 bullet glyph and a
// non-breaking space. The text is expected to be pre-escaped or literal.
func bullet(text string) string {
	return `\pard \'95\~` + text + "\\par\n"
}

// tabRow emits the cells as one tab-separated RTF row
func tabRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = EscapeRTF(c)
	}
	return `\pard ` + strings.Join(escaped, `\tab `) + "\\par\n"
}

// BuildNoticeRTF renders a departmental meeting notice as a complete RTF
// document. The emitted structure is fixed: date line, centered bold
// department line, centered bold-underlined title, body sentence,
// attendance request, signatory, then the distribution list. Opening and
// closing braces stay balanced for any input because user text only enters
// through EscapeRTF.
func BuildNoticeRTF(rec entities.NoticeRecord) string {
	var b strings.Builder

	b.WriteString(`{\rtf1\ansi\deff0` + fontTable(rec.Font) + fontSizeToken(rec.Size) + "\n")

	b.WriteString(`\pard Date:\~\- ` + EscapeRTF(rec.Date) + "\\par\n")
	b.WriteString(paragraph(entities.DefaultDepartment, paragraphOpts{align: "center", bold: true}))
	b.WriteString(paragraph(noticeTitle, paragraphOpts{align: "center", bold: true, underline: true}))
	b.WriteString("\\par\n")

	b.WriteString(`\pard ` + EscapeRTF(bodySentence(rec)) + "\\par\n")
	b.WriteString("\\par\n")
	b.WriteString(`\pard ` + attendanceRequest + "\\par\n")

	if rec.ExtraBlank {
		b.WriteString("\\par\n")
	}

	b.WriteString(`\pard ` + signatoryLine + "\\par\n")
	b.WriteString(`\pard ` + copyToLine + "\\par\n")
	for _, recipient := range copyRecipients {
		b.WriteString(bullet(recipient))
	}

	b.WriteString("}")
	return b.String()
}

// BuildMOMRTF renders Minutes of Meeting as a complete RTF document:
// centered bold department, bold-labelled Date/Time/Venue meta lines, a
// numbered agenda when items are present, then the parsed and elaborated
// discussion points, each numbered and escaped. The closing line is always
// the fixed literal; rec.ClosingStatement is currently ignored (see
// DESIGN.md).
func BuildMOMRTF(rec entities.MOMRecord) string {
	var b strings.Builder

	b.WriteString(`{\rtf1\ansi\ansicpg1252\deff0\nouicompat` + fontTable(rec.Font) + "\n")
	b.WriteString(`{\*\generator Riched20;}\viewkind4\uc1` + "\n")
	b.WriteString(fontSizeToken(rec.Size) + `\lang1033\f0\par` + "\n")

	b.WriteString(`\pard\sa200\sl276\slmult1\qc\b\f0\fs24 ` + EscapeRTF(rec.DepartmentOrDefault()) + "\\b0\\par\n")
	b.WriteString(`\pard\sa200\sl276\slmult1\par` + "\n")

	b.WriteString(`\pard\sa200\sl276\slmult1\b Date:\b0  \- ` + EscapeRTF(rec.Date) + "\\par\n")
	b.WriteString(`\b Time:\b0  ` + EscapeRTF(rec.Time) + "\\par\n")
	b.WriteString(`\b Venue:\b0  ` + EscapeRTF(rec.Venue) + "\\par\n")
	b.WriteString("\\par\n")

	if len(rec.AgendaItems) > 0 {
		b.WriteString(`\b ` + agendaHeading + "\\b0\\par\n")
		for i, item := range rec.AgendaItems {
			b.WriteString(fmt.Sprintf("%d. %s\\par\n", i+1, EscapeRTF(item)))
		}
		b.WriteString("\\par\n")
	}

	b.WriteString(`\b ` + momHeading + "\\b0\\par\n")

	if rec.Discussion != "" {
		for i, point := range ParsePoints(rec.Discussion) {
			b.WriteString(fmt.Sprintf("%d. %s\\par\n", i+1, EscapeRTF(Elaborate(point))))
		}
		b.WriteString("\\par\n")
	}

	b.WriteString(EscapeRTF(closingStatement) + "\\par\n")

	b.WriteString("}")
	return b.String()
}
