package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmdantas/mail-triage-go/internal/config"
)

// HealthResponse is the shallow status payload. It reports resolved
// capabilities rather than probing dependencies on each request.
type HealthResponse struct {
	Status         string               `json:"status"`
	Capabilities   CapabilitiesResponse `json:"capabilities"`
	Model          string               `json:"model"`
	TimeoutSeconds int                  `json:"timeout_seconds"`
	TransportMode  string               `json:"transport_mode"`
}

// CapabilitiesResponse mirrors the startup capability resolution.
type CapabilitiesResponse struct {
	PDFExtraction bool `json:"pdf_extraction"`
	Stemming      bool `json:"stemming"`
	ExternalModel bool `json:"external_model"`
}

// RegisterHealthRoutes registers the status route.
func RegisterHealthRoutes(router *gin.Engine, cfg *config.Config) {
	router.GET("/health", func(c *gin.Context) {
		transportMode := "h1"
		if cfg.HTTP.HTTP2Enabled {
			transportMode = "h2c"
		}

		model := ""
		if cfg.Capabilities.ExternalModel {
			model = cfg.Gemini.Model
		}

		c.JSON(http.StatusOK, HealthResponse{
			Status: "ok",
			Capabilities: CapabilitiesResponse{
				PDFExtraction: cfg.Capabilities.PDFExtraction,
				Stemming:      cfg.Capabilities.Stemming,
				ExternalModel: cfg.Capabilities.ExternalModel,
			},
			Model:          model,
			TimeoutSeconds: cfg.Gemini.TimeoutSeconds,
			TransportMode:  transportMode,
		})
	})
}
