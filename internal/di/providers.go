package di

import (
	"fmt"
	"log/slog"

	"github.com/vmdantas/mail-triage-go/internal/config"
	"github.com/vmdantas/mail-triage-go/internal/logging"
)

// ProvideLogger configures the application logger.
func ProvideLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}
