package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-docgen/errors"
	dto "github.com/johnquangdev/meeting-docgen/internal/adapter/dto/preference"
	prefuse "github.com/johnquangdev/meeting-docgen/internal/usecase/preference"
)

// PreferenceHandler handles AI provider preference endpoints
type PreferenceHandler struct {
	svc    prefuse.Service
	logger *zap.Logger
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(svc prefuse.Service, logger *zap.Logger) *PreferenceHandler {
	return &PreferenceHandler{svc: svc, logger: logger}
}

// SaveAIPreference remembers the chosen provider and API key
// @Summary      Save AI preference
// @Tags         Preferences
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SaveAIPreferenceRequest  true  "Provider choice"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]interface{}
// @Router       /preferences/ai [put]
func (h *PreferenceHandler) SaveAIPreference(c echo.Context) error {
	var req dto.SaveAIPreferenceRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	if err := h.svc.Save(c.Request().Context(), req.ToPreference()); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"status": "saved"})
}

// GetAIPreference returns the stored provider choice with a masked key
// @Summary      Get AI preference
// @Tags         Preferences
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /preferences/ai [get]
func (h *PreferenceHandler) GetAIPreference(c echo.Context) error {
	pref, err := h.svc.Load(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, dto.NewAIPreferenceResponse(pref))
}

// ClearAIPreference forgets the stored provider choice
// @Summary      Clear AI preference
// @Tags         Preferences
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /preferences/ai [delete]
func (h *PreferenceHandler) ClearAIPreference(c echo.Context) error {
	if err := h.svc.Clear(c.Request().Context()); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"status": "cleared"})
}
