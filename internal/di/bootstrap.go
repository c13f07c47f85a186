package di

import (
	"fmt"

	"github.com/vmdantas/mail-triage-go/internal/config"
	"github.com/vmdantas/mail-triage-go/internal/extract"
	"github.com/vmdantas/mail-triage-go/internal/gemini"
	"github.com/vmdantas/mail-triage-go/internal/handler"
	"github.com/vmdantas/mail-triage-go/internal/metrics"
	"github.com/vmdantas/mail-triage-go/internal/server"
	"github.com/vmdantas/mail-triage-go/internal/textnorm"
	"github.com/vmdantas/mail-triage-go/internal/triage"
	"github.com/vmdantas/mail-triage-go/internal/upload"
	"github.com/vmdantas/mail-triage-go/internal/web"
)

// InitializeApp wires the application dependencies and returns an App.
func InitializeApp() (*App, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	metricsStore := metrics.NewStore()

	rules, err := triage.NewRuleClassifier()
	if err != nil {
		return nil, fmt.Errorf("rule classifier: %w", err)
	}

	prompts, err := triage.NewPrompts()
	if err != nil {
		return nil, fmt.Errorf("triage prompts: %w", err)
	}

	var external triage.ExternalClient
	if cfg.Capabilities.ExternalModel {
		geminiClient, err := gemini.NewClient(cfg, prompts, metricsStore, logger)
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		external = geminiClient
	}

	service := triage.NewService(cfg, external, rules, metricsStore, logger)

	normalizer, err := textnorm.NewNormalizer(cfg.Capabilities.Stemming, logger)
	if err != nil {
		return nil, fmt.Errorf("normalizer: %w", err)
	}

	uploads, err := upload.NewStore(cfg.Upload, logger)
	if err != nil {
		return nil, fmt.Errorf("upload store: %w", err)
	}

	loader := extract.NewLoader(cfg.Capabilities)

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("web templates: %w", err)
	}

	webHandler := handler.NewWebHandler(cfg, templates, service, normalizer, uploads, loader, logger)
	triageHandler := handler.NewTriageHandler(service, normalizer, metricsStore, logger)

	router := handler.NewRouter(cfg, logger, webHandler, triageHandler)
	httpServer := server.NewHTTPServer(cfg, router)

	return NewApp(httpServer, logger, cfg), nil
}
