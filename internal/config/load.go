package config

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/joho/godotenv"
)

var (
	configOnce  sync.Once
	configValue *Config
)

// Load reads the environment-backed configuration once per process.
func Load() *Config {
	configOnce.Do(func() {
		_ = godotenv.Load()
		configValue = buildConfig()
	})
	return configValue
}

// ProvideConfig loads and validates the configuration.
func ProvideConfig() (*Config, error) {
	cfg := Load()
	if cfg == nil {
		return nil, errors.New("config not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration consistency. A missing API key is not an
// error: the service must start in fallback-only mode without it.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port: %d", c.HTTP.Port)
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid gemini timeout: %d", c.Gemini.TimeoutSeconds)
	}
	if c.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("invalid upload max size: %d", c.Upload.MaxSizeMB)
	}
	return nil
}

// LogEnvStatus logs the resolved environment with secrets masked.
func LogEnvStatus(cfg *Config, logger *slog.Logger) {
	if logger == nil || cfg == nil {
		return
	}

	envFilePresent := fileExists(".env")
	logger.Debug(
		"env_status",
		"env_file", envFilePresent,
		"genai_keys", len(cfg.Gemini.APIKeys),
		"primary_key", maskSecret(cfg.Gemini.PrimaryKey()),
		"model", cfg.Gemini.Model,
		"timeout", cfg.Gemini.TimeoutSeconds,
		"upload_dir", cfg.Upload.Dir,
		"upload_retain", cfg.Upload.Retain,
		"pdf_extraction", cfg.Capabilities.PDFExtraction,
		"stemming", cfg.Capabilities.Stemming,
	)

	if !cfg.Capabilities.ExternalModel {
		logger.Warn("external_model_not_configured", "mode", "fallback-only")
	}
}

func buildConfig() *Config {
	gemini := GeminiConfig{
		APIKeys:         parseAPIKeys(),
		Model:           getEnvString("GEMINI_MODEL", "gemini-2.5-flash"),
		Temperature:     getEnvFloat("GEMINI_TEMPERATURE", 0.3),
		MaxOutputTokens: getEnvInt("GEMINI_MAX_TOKENS", 2048),
		TimeoutSeconds:  max(1, getEnvInt("GEMINI_TIMEOUT", 30)),
	}

	return &Config{
		Gemini: gemini,
		Upload: UploadConfig{
			Dir:       getEnvString("UPLOAD_DIR", defaultUploadDir()),
			MaxSizeMB: max(1, getEnvInt("UPLOAD_MAX_SIZE_MB", 10)),
			Retain:    getEnvBool("UPLOAD_RETAIN", false),
		},
		Triage: TriageConfig{
			CacheSize:       max(1, getEnvNonNegativeInt("TRIAGE_CACHE_SIZE", 1000)),
			CacheTTLSeconds: max(1, getEnvNonNegativeInt("TRIAGE_CACHE_TTL_SECONDS", 600)),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("LOG_LEVEL", "info"),
			LogDir:     getEnvString("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 1),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 30),
			MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_FILE_COMPRESS", true),
		},
		HTTP: HTTPConfig{
			Host:         getEnvString("HTTP_HOST", "127.0.0.1"),
			Port:         getEnvInt("HTTP_PORT", 8080),
			HTTP2Enabled: getEnvBool("HTTP2_ENABLED", true),
		},
		HTTPRateLimit: HTTPRateLimitConfig{
			RequestsPerMinute: getEnvNonNegativeInt("HTTP_RATE_LIMIT_RPM", 0),
			CacheSize:         max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_SIZE", 10000)),
			CacheTTLSeconds:   max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_TTL_SECONDS", 120)),
		},
		Capabilities: Capabilities{
			PDFExtraction: getEnvBool("PDF_EXTRACTION_ENABLED", true),
			Stemming:      getEnvBool("TEXT_STEMMING_ENABLED", true),
			ExternalModel: gemini.Configured(),
		},
	}
}
