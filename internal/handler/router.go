package handler

import (
	"log/slog"
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vmdantas/mail-triage-go/internal/config"
	"github.com/vmdantas/mail-triage-go/internal/middleware"
)

// NewRouter assembles the HTTP router.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	webHandler *WebHandler,
	triageHandler *TriageHandler,
) *gin.Engine {
	setGinMode(cfg.Logging.Level)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		gin.Recovery(),
		middleware.RateLimit(cfg),
		gzip.Gzip(gzip.DefaultCompression),
	)

	RegisterHealthRoutes(router, cfg)
	webHandler.RegisterRoutes(router)
	triageHandler.RegisterRoutes(router)

	return router
}

func setGinMode(level string) {
	if strings.EqualFold(strings.TrimSpace(level), "debug") {
		gin.SetMode(gin.DebugMode)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}
