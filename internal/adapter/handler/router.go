package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-docgen/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg         *config.Config
	docHandler  *DocumentHandler
	prefHandler *PreferenceHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, docHandler *DocumentHandler, prefHandler *PreferenceHandler) *Router {
	return &Router{
		cfg:         cfg,
		docHandler:  docHandler,
		prefHandler: prefHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupDocumentRoutes(v1)
	rt.setupPreferenceRoutes(v1)
}

// setupDocumentRoutes configures document generation and archive routes
func (rt *Router) setupDocumentRoutes(g *echo.Group) {
	docGroup := g.Group("/documents")

	docGroup.POST("/notice", rt.docHandler.GenerateNotice)
	docGroup.POST("/mom", rt.docHandler.GenerateMOM)
	docGroup.GET("", rt.docHandler.ListDocuments)
	docGroup.GET("/:id", rt.docHandler.GetDocument)
	docGroup.GET("/:id/download", rt.docHandler.DownloadDocument)
}

// setupPreferenceRoutes configures AI preference routes
func (rt *Router) setupPreferenceRoutes(g *echo.Group) {
	prefGroup := g.Group("/preferences")

	prefGroup.PUT("/ai", rt.prefHandler.SaveAIPreference)
	prefGroup.GET("/ai", rt.prefHandler.GetAIPreference)
	prefGroup.DELETE("/ai", rt.prefHandler.ClearAIPreference)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
