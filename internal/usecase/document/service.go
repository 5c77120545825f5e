package document

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-docgen/errors"
	"github.com/johnquangdev/meeting-docgen/internal/domain/entities"
	"github.com/johnquangdev/meeting-docgen/internal/domain/repositories"
	pkgai "github.com/johnquangdev/meeting-docgen/pkg/ai"
	"github.com/johnquangdev/meeting-docgen/pkg/config"
)

// TextSource is an external provider of pre-formatted MOM body text. The
// service only consumes the returned string; how it was produced is the
// provider's business.
type TextSource interface {
	GenerateMOM(ctx context.Context, apiKey, model, userPrompt string) (string, error)
}

// Uploader stores rendered document files and returns an accessible URL
type Uploader interface {
	UploadDocument(ctx context.Context, objectName, content, contentType string) (string, error)
}

// GenerateOptions selects the text source for a MOM generation. The RTF
// output always comes from the template builder regardless.
type GenerateOptions struct {
	UseAI      bool
	Preference entities.AIPreference
}

// GenerationResult pairs the archived document with any non-fatal warning
// raised along the way (e.g. AI fallback).
type GenerationResult struct {
	Document *entities.GeneratedDocument
	Warning  string
}

// Service orchestrates document generation, archiving and file storage
type Service interface {
	GenerateNotice(ctx context.Context, rec entities.NoticeRecord) (*GenerationResult, error)
	GenerateMOM(ctx context.Context, rec entities.MOMRecord, opts GenerateOptions) (*GenerationResult, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*entities.GeneratedDocument, error)
	ListDocuments(ctx context.Context, filters repositories.DocumentFilters) ([]*entities.GeneratedDocument, error)
}

type documentService struct {
	docRepo  repositories.DocumentRepository
	gemini   TextSource
	openai   TextSource
	uploader Uploader // nil when object storage is disabled
	cfg      *config.Config
	logger   *zap.Logger
}

// NewService constructs the document generation service. uploader may be
// nil when object storage is disabled.
func NewService(
	docRepo repositories.DocumentRepository,
	gemini TextSource,
	openai TextSource,
	uploader Uploader,
	cfg *config.Config,
	logger *zap.Logger,
) Service {
	return &documentService{
		docRepo:  docRepo,
		gemini:   gemini,
		openai:   openai,
		uploader: uploader,
		cfg:      cfg,
		logger:   logger,
	}
}

// GenerateNotice validates, renders both formats and archives the result
func (s *documentService) GenerateNotice(ctx context.Context, rec entities.NoticeRecord) (*GenerationResult, error) {
	if result := ValidateNotice(rec); !result.Valid {
		return nil, apperrors.ErrValidationFailed(result.Errors)
	}

	rtf := BuildNoticeRTF(rec)
	text := NoticeText(rec)

	doc, err := s.archive(ctx, entities.DocumentKindNotice, entities.DocumentSourceTemplate, rtf, text, rec)
	if err != nil {
		return nil, err
	}
	return &GenerationResult{Document: doc}, nil
}

// GenerateMOM validates and renders a Minutes of Meeting document. When
// opts.UseAI is set and a provider is configured the plain-text body is
// requested from the external source with retries; on failure the template
// renderer takes over and the result carries a warning instead of an
// error.
func (s *documentService) GenerateMOM(ctx context.Context, rec entities.MOMRecord, opts GenerateOptions) (*GenerationResult, error) {
	if result := ValidateMOM(rec); !result.Valid {
		return nil, apperrors.ErrValidationFailed(result.Errors)
	}

	rtf := BuildMOMRTF(rec)
	text := MOMText(rec)
	source := entities.DocumentSourceTemplate
	warning := ""

	if opts.UseAI {
		if !opts.Preference.Configured() {
			return nil, apperrors.ErrAINotConfigured()
		}
		aiText, err := s.generateWithAI(ctx, rec, opts.Preference)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("AI generation failed, falling back to template renderer",
					zap.String("provider", string(opts.Preference.Provider)),
					zap.Error(err),
				)
			}
			warning = fmt.Sprintf("AI generation failed (%v); used template output instead", err)
		} else {
			text = aiText
			source = entities.DocumentSourceAI
		}
	}

	doc, err := s.archive(ctx, entities.DocumentKindMOM, source, rtf, text, rec)
	if err != nil {
		return nil, err
	}
	return &GenerationResult{Document: doc, Warning: warning}, nil
}

// GetDocument looks up an archived document
func (s *documentService) GetDocument(ctx context.Context, id uuid.UUID) (*entities.GeneratedDocument, error) {
	doc, err := s.docRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("find document", err)
	}
	if doc == nil {
		return nil, apperrors.ErrDocumentNotFound(id.String())
	}
	return doc, nil
}

// ListDocuments returns archived documents, newest first
func (s *documentService) ListDocuments(ctx context.Context, filters repositories.DocumentFilters) ([]*entities.GeneratedDocument, error) {
	docs, err := s.docRepo.List(ctx, filters)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list documents", err)
	}
	return docs, nil
}

// generateWithAI calls the preferred provider with exponential backoff
func (s *documentService) generateWithAI(ctx context.Context, rec entities.MOMRecord, pref entities.AIPreference) (string, error) {
	var src TextSource
	switch pref.Provider {
	case entities.AIProviderGemini:
		src = s.gemini
	case entities.AIProviderOpenAI:
		src = s.openai
	default:
		return "", fmt.Errorf("unknown provider %q", pref.Provider)
	}
	if src == nil {
		return "", fmt.Errorf("provider %s not available", pref.Provider)
	}

	prompt := pkgai.BuildMOMPrompt(rec.AgendaItems, ParsePoints(rec.Discussion), rec.ClosingStatement)

	var text string
	generateFn := func() error {
		var err error
		text, err = src.GenerateMOM(ctx, pref.APIKey, pref.Model, prompt)
		return err
	}

	// Retry logic with exponential backoff
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(generateFn, backoff.WithContext(bo, ctx)); err != nil {
		return "", apperrors.ErrAIGenerationFailed(string(pref.Provider), err)
	}
	return text, nil
}

// archive stores the generation result and, when object storage is
// enabled, uploads both renderings and records their URLs. Upload failures
// are logged, not fatal: the database copy is the source of truth.
func (s *documentService) archive(ctx context.Context, kind entities.DocumentKind, source entities.DocumentSource, rtf, text string, payload interface{}) (*entities.GeneratedDocument, error) {
	snapshot, err := json.Marshal(payload)
	if err != nil {
		snapshot = []byte("{}")
	}

	doc := entities.NewGeneratedDocument(kind, source, rtf, text, snapshot)

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, apperrors.ErrDBQueryFailed("create document", err)
	}

	if s.uploader != nil {
		if url, err := s.uploader.UploadDocument(ctx, objectName(doc.ID, "rtf"), rtf, "application/rtf"); err != nil {
			s.logUploadFailure(doc.ID, "rtf", err)
		} else {
			doc.FileURL = &url
		}
		if url, err := s.uploader.UploadDocument(ctx, objectName(doc.ID, "txt"), text, "text/plain"); err != nil {
			s.logUploadFailure(doc.ID, "txt", err)
		} else {
			doc.TextURL = &url
		}
		if doc.FileURL != nil || doc.TextURL != nil {
			if err := s.docRepo.Update(ctx, doc); err != nil {
				s.logUploadFailure(doc.ID, "url-update", err)
			}
		}
	}

	return doc, nil
}

func (s *documentService) logUploadFailure(id uuid.UUID, format string, err error) {
	if s.logger != nil {
		s.logger.Warn("document upload failed",
			zap.String("document_id", id.String()),
			zap.String("format", format),
			zap.Error(err),
		)
	}
}

func objectName(id uuid.UUID, format string) string {
	return "documents/" + id.String() + "." + format
}
