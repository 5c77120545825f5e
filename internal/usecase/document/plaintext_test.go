package document

import (
	"strings"
	"testing"

	"github.com/johnquangdev/meeting-docgen/internal/domain/entities"
)

func TestToBoldUnicode_Alphanumerics(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"A", "𝐀"},
		{"Z", "𝐙"},
		{"a", "𝐚"},
		{"z", "𝐳"},
		{"0", "𝟎"},
		{"9", "𝟗"},
		{"Date:", "𝐃𝐚𝐭𝐞:"},
	}
	for _, c := range cases {
		if got := ToBoldUnicode(c.in); got != c.want {
			t.Fatalf("ToBoldUnicode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestToBoldUnicode_PassThrough(t *testing.T) {
	// Punctuation, spaces and non-ASCII runes are left untouched.
	in := " :–()&é"
	if got := ToBoldUnicode(in); got != in {
		t.Fatalf("non-alphanumerics changed: %q", got)
	}
}

func TestNoticeText_MirrorsRTFContent(t *testing.T) {
	rec := sampleNotice()
	rec.IncludeDay = true
	text := NoticeText(rec)

	for _, want := range []string{
		"𝐃𝐚𝐭𝐞: - 08 January 2025",
		entities.DefaultDepartment,
		noticeTitle,
		"Wednesday, 08 January 2025",
		attendanceRequest,
		signatoryLine,
		"• Principal – for kind Information",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("notice text missing %q", want)
		}
	}

	// No RTF control words may leak into the plain rendering.
	if strings.Contains(text, `\par`) || strings.Contains(text, `\endash`) {
		t.Fatalf("RTF control words leaked into plain text:\n%s", text)
	}
}

func TestMOMText_SharesElaborationPipeline(t *testing.T) {
	rec := sampleMOM()
	text := MOMText(rec)

	for _, want := range []string{
		ToBoldUnicode(agendaHeading),
		"1. End Semester Examination",
		ToBoldUnicode(momHeading),
		"1. The committee conducted a comprehensive review of review syllabus.",
		"2. invigilation duties. " + genericClosing,
		closingStatement,
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("MOM text missing %q", want)
		}
	}
}

func TestMOMText_OmitsEmptySections(t *testing.T) {
	rec := sampleMOM()
	rec.AgendaItems = nil
	rec.Discussion = ""
	text := MOMText(rec)
	if strings.Contains(text, ToBoldUnicode(agendaHeading)) {
		t.Fatalf("agenda heading emitted without items")
	}
	if !strings.Contains(text, closingStatement) {
		t.Fatalf("closing line missing")
	}
}
