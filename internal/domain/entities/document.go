package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DocumentKind identifies which template produced a document
type DocumentKind string

const (
	DocumentKindNotice DocumentKind = "notice"
	DocumentKindMOM    DocumentKind = "mom"
)

// DocumentSource identifies where the plain-text body came from
type DocumentSource string

const (
	DocumentSourceTemplate DocumentSource = "template"
	DocumentSourceAI       DocumentSource = "ai"
)

// GeneratedDocument is an archived generation result. Both renderings are
// stored so a past document can be re-downloaded without re-running the
// builders.
type GeneratedDocument struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Kind      DocumentKind   `json:"kind" gorm:"type:varchar(10);not null;index"`
	Source    DocumentSource `json:"source" gorm:"type:varchar(10);not null;default:'template'"`
	RTF       string         `json:"rtf" gorm:"type:text;not null"`
	PlainText string         `json:"plain_text" gorm:"type:text;not null"`
	Payload   datatypes.JSON `json:"payload,omitempty" gorm:"type:jsonb;default:'{}'"`
	FileURL   *string        `json:"file_url,omitempty" gorm:"type:text"`
	TextURL   *string        `json:"text_url,omitempty" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (GeneratedDocument) TableName() string {
	return "generated_documents"
}

// NewGeneratedDocument creates an archive row for a generation result
func NewGeneratedDocument(kind DocumentKind, source DocumentSource, rtf, plainText string, payload datatypes.JSON) *GeneratedDocument {
	return &GeneratedDocument{
		ID:        uuid.New(),
		Kind:      kind,
		Source:    source,
		RTF:       rtf,
		PlainText: plainText,
		Payload:   payload,
	}
}
