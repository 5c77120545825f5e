package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-docgen/errors"
	dto "github.com/johnquangdev/meeting-docgen/internal/adapter/dto/document"
	"github.com/johnquangdev/meeting-docgen/internal/domain/entities"
	"github.com/johnquangdev/meeting-docgen/internal/domain/repositories"
	docuse "github.com/johnquangdev/meeting-docgen/internal/usecase/document"
	prefuse "github.com/johnquangdev/meeting-docgen/internal/usecase/preference"
)

// DocumentHandler handles document generation and archive endpoints
type DocumentHandler struct {
	svc    docuse.Service
	prefs  prefuse.Service
	logger *zap.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(svc docuse.Service, prefs prefuse.Service, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{svc: svc, prefs: prefs, logger: logger}
}

// GenerateNotice generates a departmental meeting notice
// @Summary      Generate notice
// @Description  Renders a departmental meeting notice as RTF and plain text and archives the result
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        request  body      dto.GenerateNoticeRequest  true  "Notice fields"
// @Success      200      {object}  map[string]interface{}     "Generated document"
// @Failure      400      {object}  map[string]interface{}     "Missing required fields"
// @Router       /documents/notice [post]
func (h *DocumentHandler) GenerateNotice(c echo.Context) error {
	var req dto.GenerateNoticeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	rec := req.ToRecord()
	if result := docuse.ValidateNotice(rec); !result.Valid {
		return HandleValidationFailure(h.logger, c, result.Errors)
	}

	result, err := h.svc.GenerateNotice(c.Request().Context(), rec)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, dto.NewDocumentResponse(result.Document, result.Warning))
}

// GenerateMOM generates a Minutes of Meeting document
// @Summary      Generate Minutes of Meeting
// @Description  Renders Minutes of Meeting as RTF and plain text; with use_ai the plain text comes from the configured provider, falling back to the template on failure
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        request  body      dto.GenerateMOMRequest  true  "MOM fields"
// @Success      200      {object}  map[string]interface{}  "Generated document, possibly with warning"
// @Failure      400      {object}  map[string]interface{}  "Missing required fields or AI not configured"
// @Router       /documents/mom [post]
func (h *DocumentHandler) GenerateMOM(c echo.Context) error {
	var req dto.GenerateMOMRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	rec := req.ToRecord()
	if result := docuse.ValidateMOM(rec); !result.Valid {
		return HandleValidationFailure(h.logger, c, result.Errors)
	}

	opts := docuse.GenerateOptions{UseAI: req.UseAI}
	if req.UseAI {
		pref, err := h.prefs.Load(c.Request().Context())
		if err != nil {
			return HandleError(h.logger, c, err)
		}
		opts.Preference = pref
	}

	result, err := h.svc.GenerateMOM(c.Request().Context(), rec, opts)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, dto.NewDocumentResponse(result.Document, result.Warning))
}

// ListDocuments lists archived documents
// @Summary      List documents
// @Tags         Documents
// @Produce      json
// @Param        kind       query     string  false  "Filter by kind (notice|mom)"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  map[string]interface{}
// @Router       /documents [get]
func (h *DocumentHandler) ListDocuments(c echo.Context) error {
	var req dto.ListDocumentsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}

	filters := repositories.DocumentFilters{
		Limit:  req.PageSize,
		Offset: (req.Page - 1) * req.PageSize,
	}
	if req.Kind != nil {
		kind := entities.DocumentKind(*req.Kind)
		filters.Kind = &kind
	}

	docs, err := h.svc.ListDocuments(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	summaries := make([]dto.DocumentSummaryResponse, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, dto.NewDocumentSummaryResponse(doc))
	}
	return HandleSuccess(h.logger, c, summaries)
}

// GetDocument returns one archived document with both renderings
// @Summary      Get document
// @Tags         Documents
// @Produce      json
// @Param        id   path      string  true  "Document ID (UUID)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid document ID"))
	}

	doc, err := h.svc.GetDocument(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, dto.NewDocumentResponse(doc, ""))
}

// DownloadDocument serves one rendering of an archived document as an
// attachment
// @Summary      Download document
// @Tags         Documents
// @Produce      application/rtf
// @Produce      text/plain
// @Param        id      path      string  true   "Document ID (UUID)"
// @Param        format  query     string  false  "rtf (default) or txt"
// @Success      200     {string}  string
// @Failure      404     {object}  map[string]interface{}
// @Router       /documents/{id}/download [get]
func (h *DocumentHandler) DownloadDocument(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid document ID"))
	}

	format := c.QueryParam("format")
	if format == "" {
		format = "rtf"
	}

	doc, err := h.svc.GetDocument(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var body, contentType string
	switch format {
	case "rtf":
		body = doc.RTF
		contentType = "application/rtf"
	case "txt":
		body = doc.PlainText
		contentType = "text/plain; charset=utf-8"
	default:
		return HandleError(h.logger, c, errors.ErrUnsupportedFormat(format))
	}

	filename := fmt.Sprintf("%s-%s.%s", doc.Kind, doc.ID.String()[:8], format)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, contentType, []byte(body))
}
