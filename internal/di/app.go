package di

import (
	"log/slog"
	"net/http"

	"github.com/vmdantas/mail-triage-go/internal/config"
)

// App bundles the long-lived application components.
type App struct {
	Server *http.Server
	Logger *slog.Logger
	Config *config.Config
}

// NewApp creates the App instance.
func NewApp(server *http.Server, logger *slog.Logger, cfg *config.Config) *App {
	return &App{
		Server: server,
		Logger: logger,
		Config: cfg,
	}
}
