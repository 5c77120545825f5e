package document

import (
	"context"
	"errors"
	"strings"
	"testing"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	apperrors "github.com/johnquangdev/meeting-docgen/errors"
	"github.com/johnquangdev/meeting-docgen/internal/domain/entities"
	"github.com/johnquangdev/meeting-docgen/internal/domain/repositories"
	"github.com/johnquangdev/meeting-docgen/pkg/config"
)

// fakeDocRepo keeps created documents in memory
type fakeDocRepo struct {
	docs []*entities.GeneratedDocument
}

func (f *fakeDocRepo) Create(_ context.Context, doc *entities.GeneratedDocument) error {
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeDocRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.GeneratedDocument, error) {
	for _, d := range f.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDocRepo) List(_ context.Context, _ repositories.DocumentFilters) ([]*entities.GeneratedDocument, error) {
	return f.docs, nil
}

func (f *fakeDocRepo) Update(_ context.Context, _ *entities.GeneratedDocument) error {
	return nil
}

// stubTextSource returns a canned response or error
type stubTextSource struct {
	text  string
	err   error
	calls int
}

func (s *stubTextSource) GenerateMOM(_ context.Context, _, _, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func newTestService(repo repositories.DocumentRepository, gemini, openai TextSource) Service {
	return NewService(repo, gemini, openai, nil, &config.Config{}, nil)
}

func geminiPref() entities.AIPreference {
	return entities.AIPreference{Provider: entities.AIProviderGemini, APIKey: "key"}
}

func TestGenerateNotice_Archives(t *testing.T) {
	repo := &fakeDocRepo{}
	svc := newTestService(repo, nil, nil)

	result, err := svc.GenerateNotice(context.Background(), sampleNotice())
	if err != nil {
		t.Fatalf("GenerateNotice failed: %v", err)
	}
	if result.Warning != "" {
		t.Fatalf("unexpected warning %q", result.Warning)
	}
	if len(repo.docs) != 1 {
		t.Fatalf("expected 1 archived document, got %d", len(repo.docs))
	}

	doc := result.Document
	if doc.Kind != entities.DocumentKindNotice || doc.Source != entities.DocumentSourceTemplate {
		t.Fatalf("unexpected kind/source %s/%s", doc.Kind, doc.Source)
	}
	if !strings.HasPrefix(doc.RTF, `{\rtf1`) || doc.PlainText == "" {
		t.Fatalf("renderings not stored")
	}
}

func TestGenerateNotice_ValidationFailure(t *testing.T) {
	svc := newTestService(&fakeDocRepo{}, nil, nil)

	_, err := svc.GenerateNotice(context.Background(), entities.NoticeRecord{})
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.HTTPCode != 400 {
		t.Fatalf("expected 400, got %d", appErr.HTTPCode)
	}
	if !strings.Contains(appErr.Message, "Date is required") ||
		!strings.Contains(appErr.Message, "Agenda/Subject is required") {
		t.Fatalf("validation message incomplete: %q", appErr.Message)
	}
}

func TestGenerateMOM_TemplateSource(t *testing.T) {
	repo := &fakeDocRepo{}
	svc := newTestService(repo, nil, nil)

	result, err := svc.GenerateMOM(context.Background(), sampleMOM(), GenerateOptions{})
	if err != nil {
		t.Fatalf("GenerateMOM failed: %v", err)
	}
	if result.Document.Source != entities.DocumentSourceTemplate {
		t.Fatalf("expected template source, got %s", result.Document.Source)
	}
	if !strings.Contains(result.Document.PlainText, closingStatement) {
		t.Fatalf("template text missing closing line")
	}
}

func TestGenerateMOM_AISuccess(t *testing.T) {
	repo := &fakeDocRepo{}
	gemini := &stubTextSource{text: "AI generated minutes"}
	svc := newTestService(repo, gemini, nil)

	result, err := svc.GenerateMOM(context.Background(), sampleMOM(), GenerateOptions{
		UseAI:      true,
		Preference: geminiPref(),
	})
	if err != nil {
		t.Fatalf("GenerateMOM failed: %v", err)
	}
	if gemini.calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", gemini.calls)
	}
	if result.Document.Source != entities.DocumentSourceAI {
		t.Fatalf("expected ai source, got %s", result.Document.Source)
	}
	if result.Document.PlainText != "AI generated minutes" {
		t.Fatalf("AI text not stored: %q", result.Document.PlainText)
	}
	// The RTF rendering always comes from the template builder.
	if !strings.Contains(result.Document.RTF, closingStatement) {
		t.Fatalf("RTF should be template output")
	}
	if result.Warning != "" {
		t.Fatalf("unexpected warning %q", result.Warning)
	}
}

func TestGenerateMOM_AIFailureFallsBackWithWarning(t *testing.T) {
	repo := &fakeDocRepo{}
	gemini := &stubTextSource{err: backoff.Permanent(errors.New("provider down"))}
	svc := newTestService(repo, gemini, nil)

	result, err := svc.GenerateMOM(context.Background(), sampleMOM(), GenerateOptions{
		UseAI:      true,
		Preference: geminiPref(),
	})
	if err != nil {
		t.Fatalf("AI failure must not fail generation: %v", err)
	}
	if result.Warning == "" {
		t.Fatalf("expected fallback warning")
	}
	if result.Document.Source != entities.DocumentSourceTemplate {
		t.Fatalf("expected template fallback, got %s", result.Document.Source)
	}
	if !strings.Contains(result.Document.PlainText, closingStatement) {
		t.Fatalf("fallback text is not the template rendering")
	}
}

func TestGenerateMOM_AINotConfigured(t *testing.T) {
	svc := newTestService(&fakeDocRepo{}, nil, nil)

	_, err := svc.GenerateMOM(context.Background(), sampleMOM(), GenerateOptions{UseAI: true})
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != apperrors.ErrorCode_AI_NOT_CONFIGURED {
		t.Fatalf("unexpected code %s", appErr.Code)
	}
}

func TestGetDocument_NotFound(t *testing.T) {
	svc := newTestService(&fakeDocRepo{}, nil, nil)

	_, err := svc.GetDocument(context.Background(), uuid.New())
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.HTTPCode != 404 {
		t.Fatalf("expected 404, got %d", appErr.HTTPCode)
	}
}
