package document

import (
	"strings"

	"github.com/johnquangdev/meeting-docgen/internal/domain/entities"
)

// GenerateNoticeRequest represents the request to generate a notice.
// Presence of the domain fields is checked by the domain validator so that
// every failing rule is reported together; the tags here only constrain
// enum shape.
type GenerateNoticeRequest struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	Venue      string `json:"venue"`
	Agenda     string `json:"agenda"`
	IncludeDay bool   `json:"include_day"`
	Font       string `json:"font" validate:"omitempty,oneof=times calibri"`
	Size       string `json:"size" validate:"omitempty,oneof=12 13 14"`
	ExtraBlank bool   `json:"extra_blank"`
}

// ToRecord converts the request into a domain record, trimming surrounding
// whitespace on free-text fields.
func (r GenerateNoticeRequest) ToRecord() entities.NoticeRecord {
	return entities.NoticeRecord{
		Date:       strings.TrimSpace(r.Date),
		Time:       strings.TrimSpace(r.Time),
		Venue:      strings.TrimSpace(r.Venue),
		Agenda:     strings.TrimSpace(r.Agenda),
		IncludeDay: r.IncludeDay,
		Font:       entities.FontFamily(r.Font),
		Size:       entities.FontSize(r.Size),
		ExtraBlank: r.ExtraBlank,
	}
}

// GenerateMOMRequest represents the request to generate Minutes of Meeting
type GenerateMOMRequest struct {
	Department       string   `json:"department"`
	Date             string   `json:"date"`
	Time             string   `json:"time"`
	Venue            string   `json:"venue"`
	AgendaItems      []string `json:"agenda_items"`
	Discussion       string   `json:"discussion"`
	ClosingStatement string   `json:"closing_statement"`
	IncludeDay       bool     `json:"include_day"`
	Font             string   `json:"font" validate:"omitempty,oneof=times calibri"`
	Size             string   `json:"size" validate:"omitempty,oneof=12 13 14"`
	UseAI            bool     `json:"use_ai"`
}

// ToRecord converts the request into a domain record. Agenda items are
// trimmed and blank entries dropped.
func (r GenerateMOMRequest) ToRecord() entities.MOMRecord {
	items := make([]string, 0, len(r.AgendaItems))
	for _, item := range r.AgendaItems {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return entities.MOMRecord{
		Department:       strings.TrimSpace(r.Department),
		Date:             strings.TrimSpace(r.Date),
		Time:             strings.TrimSpace(r.Time),
		Venue:            strings.TrimSpace(r.Venue),
		AgendaItems:      items,
		Discussion:       strings.TrimSpace(r.Discussion),
		ClosingStatement: strings.TrimSpace(r.ClosingStatement),
		IncludeDay:       r.IncludeDay,
		Font:             entities.FontFamily(r.Font),
		Size:             entities.FontSize(r.Size),
	}
}

// ListDocumentsRequest represents query parameters for listing the archive
type ListDocumentsRequest struct {
	Kind     *string `query:"kind" validate:"omitempty,oneof=notice mom"`
	Page     int     `query:"page" validate:"omitempty,min=1"`
	PageSize int     `query:"page_size" validate:"omitempty,min=1,max=100"`
}
