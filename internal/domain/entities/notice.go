package entities

// FontFamily selects the font table emitted in the RTF preamble
type FontFamily string

const (
	FontTimes   FontFamily = "times"
	FontCalibri FontFamily = "calibri"
)

// FontSize is the document font size in points
type FontSize string

const (
	FontSize12 FontSize = "12"
	FontSize13 FontSize = "13"
	FontSize14 FontSize = "14"
)

// NoticeRecord holds the validated input for a departmental meeting notice.
// Fields are expected to be trimmed by the caller; the domain validator
// checks presence before generation.
type NoticeRecord struct {
	Date       string     `json:"date"`
	Time       string     `json:"time"`
	Venue      string     `json:"venue"`
	Agenda     string     `json:"agenda"`
	IncludeDay bool       `json:"include_day"`
	Font       FontFamily `json:"font"`
	Size       FontSize   `json:"size"`
	ExtraBlank bool       `json:"extra_blank"`
}
