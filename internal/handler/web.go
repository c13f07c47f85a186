package handler

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vmdantas/mail-triage-go/internal/config"
	"github.com/vmdantas/mail-triage-go/internal/extract"
	"github.com/vmdantas/mail-triage-go/internal/handler/shared"
	"github.com/vmdantas/mail-triage-go/internal/textnorm"
	"github.com/vmdantas/mail-triage-go/internal/triage"
	"github.com/vmdantas/mail-triage-go/internal/upload"
)

const previewRunes = 200

// WebHandler serves the HTML form and the form-driven triage flow.
type WebHandler struct {
	cfg        *config.Config
	templates  *template.Template
	service    *triage.Service
	normalizer *textnorm.Normalizer
	uploads    *upload.Store
	loader     *extract.Loader
	logger     *slog.Logger
}

// NewWebHandler creates the form handler.
func NewWebHandler(
	cfg *config.Config,
	templates *template.Template,
	service *triage.Service,
	normalizer *textnorm.Normalizer,
	uploads *upload.Store,
	loader *extract.Loader,
	logger *slog.Logger,
) *WebHandler {
	return &WebHandler{
		cfg:        cfg,
		templates:  templates,
		service:    service,
		normalizer: normalizer,
		uploads:    uploads,
		loader:     loader,
		logger:     logger,
	}
}

// RegisterRoutes registers the form routes.
func (h *WebHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.handleIndex)
	router.POST("/process", h.handleProcess)
}

type pageData struct {
	Result  *triage.Result
	Preview string
	Error   string
}

func (h *WebHandler) handleIndex(c *gin.Context) {
	h.render(c, http.StatusOK, pageData{})
}

// handleProcess mirrors the form contract: an allowed file wins over pasted
// text, pasted text wins over nothing, nothing redirects back to the form.
func (h *WebHandler) handleProcess(c *gin.Context) {
	textInput := strings.TrimSpace(c.PostForm("text"))

	original, fromFile, err := h.resolveInput(c, textInput)
	if err != nil {
		shared.LogError(h.logger, "process_input", err)
		h.render(c, http.StatusUnprocessableEntity, pageData{Error: publicErrorMessage(err)})
		return
	}
	// A supplied file is input even when its extracted text is empty; only
	// the fully empty form redirects.
	if original == "" && !fromFile {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	result := h.service.Process(c.Request.Context(), original)
	h.render(c, http.StatusOK, pageData{
		Result:  &result,
		Preview: truncatePreview(h.normalizer.Preprocess(original)),
	})
}

// resolveInput picks the email text for this request, reporting whether it
// came from an uploaded file. A file without an allowed extension is ignored
// in favor of pasted text, matching the form's lenient contract.
func (h *WebHandler) resolveInput(c *gin.Context, textInput string) (string, bool, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader == nil || fileHeader.Filename == "" {
		return textInput, false, nil
	}
	if !upload.AllowedExtension(fileHeader.Filename) {
		return textInput, false, nil
	}

	maxBytes := int64(h.cfg.Upload.MaxSizeMB) * 1024 * 1024
	if maxBytes > 0 && fileHeader.Size > maxBytes {
		return "", true, fmt.Errorf("upload exceeds %d MB limit", h.cfg.Upload.MaxSizeMB)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", true, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	path, err := h.uploads.Save(fileHeader.Filename, src)
	if err != nil {
		return "", true, err
	}
	defer h.uploads.Cleanup(path)

	content, err := h.loader.Load(path)
	if err != nil {
		return "", true, err
	}
	return strings.TrimSpace(content), true, nil
}

func (h *WebHandler) render(c *gin.Context, status int, data pageData) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(c.Writer, "index.html", data); err != nil {
		shared.LogError(h.logger, "render_page", err)
	}
}

// publicErrorMessage maps internal errors onto the PT-BR messages shown on
// the page.
func publicErrorMessage(err error) string {
	switch {
	case errors.Is(err, extract.ErrPDFSupportDisabled):
		return "A extração de PDF está desativada nesta instalação."
	case errors.Is(err, upload.ErrUnsafeFilename):
		return "Nome de arquivo inválido."
	default:
		return "Não foi possível processar o arquivo enviado."
	}
}

func truncatePreview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewRunes {
		return text
	}
	return string(runes[:previewRunes]) + "…"
}
