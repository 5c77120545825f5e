package document

import (
	"time"

	"github.com/johnquangdev/meeting-docgen/internal/domain/entities"
)

// DocumentResponse is the API representation of a generated document
type DocumentResponse struct {
	ID        string     `json:"id"`
	Kind      string     `json:"kind"`
	Source    string     `json:"source"`
	RTF       string     `json:"rtf"`
	PlainText string     `json:"plain_text"`
	FileURL   *string    `json:"file_url,omitempty"`
	TextURL   *string    `json:"text_url,omitempty"`
	Warning   string     `json:"warning,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// DocumentSummaryResponse omits the document bodies for listings
type DocumentSummaryResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Source    string    `json:"source"`
	FileURL   *string   `json:"file_url,omitempty"`
	TextURL   *string   `json:"text_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDocumentResponse builds the full response for a generation result
func NewDocumentResponse(doc *entities.GeneratedDocument, warning string) DocumentResponse {
	return DocumentResponse{
		ID:        doc.ID.String(),
		Kind:      string(doc.Kind),
		Source:    string(doc.Source),
		RTF:       doc.RTF,
		PlainText: doc.PlainText,
		FileURL:   doc.FileURL,
		TextURL:   doc.TextURL,
		Warning:   warning,
		CreatedAt: doc.CreatedAt,
	}
}

// NewDocumentSummaryResponse builds the listing representation
func NewDocumentSummaryResponse(doc *entities.GeneratedDocument) DocumentSummaryResponse {
	return DocumentSummaryResponse{
		ID:        doc.ID.String(),
		Kind:      string(doc.Kind),
		Source:    string(doc.Source),
		FileURL:   doc.FileURL,
		TextURL:   doc.TextURL,
		CreatedAt: doc.CreatedAt,
	}
}
