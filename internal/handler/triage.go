package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vmdantas/mail-triage-go/internal/httperror"
	"github.com/vmdantas/mail-triage-go/internal/metrics"
	"github.com/vmdantas/mail-triage-go/internal/textnorm"
	"github.com/vmdantas/mail-triage-go/internal/triage"
)

// TriageRequest is the JSON triage request body.
type TriageRequest struct {
	Text string `json:"text" binding:"required"`
}

// TriageResponse is the JSON triage response body.
type TriageResponse struct {
	Category         string `json:"category"`
	Explanation      string `json:"explanation"`
	Reply            string `json:"reply"`
	ClassifierSource string `json:"classifier_source"`
	ReplySource      string `json:"reply_source"`
	NormalizedText   string `json:"normalized_text"`
}

// TriageHandler serves the JSON triage API.
type TriageHandler struct {
	service    *triage.Service
	normalizer *textnorm.Normalizer
	metrics    *metrics.Store
	logger     *slog.Logger
}

// NewTriageHandler creates the JSON API handler.
func NewTriageHandler(
	service *triage.Service,
	normalizer *textnorm.Normalizer,
	metricsStore *metrics.Store,
	logger *slog.Logger,
) *TriageHandler {
	return &TriageHandler{
		service:    service,
		normalizer: normalizer,
		metrics:    metricsStore,
		logger:     logger,
	}
}

// RegisterRoutes registers the triage API routes.
func (h *TriageHandler) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api")
	group.POST("/triage", h.handleTriage)
	group.GET("/stats", h.handleStats)
}

func (h *TriageHandler) handleTriage(c *gin.Context) {
	var req TriageRequest
	if !bindJSON(c, &req) {
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeError(c, httperror.NewMissingField("text"))
		return
	}

	result := h.service.Process(c.Request.Context(), text)

	c.JSON(http.StatusOK, TriageResponse{
		Category:         string(result.Category),
		Explanation:      result.Explanation,
		Reply:            result.Reply,
		ClassifierSource: string(result.ClassifierSource),
		ReplySource:      string(result.ReplySource),
		NormalizedText:   h.normalizer.Preprocess(text),
	})
}

func (h *TriageHandler) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.Snapshot())
}
