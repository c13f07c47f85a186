package config

import "os"

// GeminiConfig holds the external model settings.
type GeminiConfig struct {
	APIKeys         []string
	Model           string
	Temperature     float64
	MaxOutputTokens int
	TimeoutSeconds  int
}

// PrimaryKey returns the first configured API key.
func (g GeminiConfig) PrimaryKey() string {
	if len(g.APIKeys) == 0 {
		return ""
	}
	return g.APIKeys[0]
}

// Configured reports whether the external model can be called at all.
func (g GeminiConfig) Configured() bool {
	return len(g.APIKeys) > 0
}

// UploadConfig holds upload persistence settings.
type UploadConfig struct {
	Dir       string
	MaxSizeMB int
	Retain    bool
}

// TriageConfig holds classification memoization settings.
type TriageConfig struct {
	CacheSize       int
	CacheTTLSeconds int
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Host         string
	Port         int
	HTTP2Enabled bool
}

// HTTPRateLimitConfig holds request throttling settings.
type HTTPRateLimitConfig struct {
	RequestsPerMinute int
	CacheSize         int
	CacheTTLSeconds   int
}

// Capabilities records which optional features were resolved at startup.
// It replaces ad-hoc runtime probing: components receive it as plain
// configuration and never re-check availability themselves.
type Capabilities struct {
	PDFExtraction bool
	Stemming      bool
	ExternalModel bool
}

// Config is the whole application configuration.
type Config struct {
	Gemini        GeminiConfig
	Upload        UploadConfig
	Triage        TriageConfig
	Logging       LoggingConfig
	HTTP          HTTPConfig
	HTTPRateLimit HTTPRateLimitConfig
	Capabilities  Capabilities
}

func defaultUploadDir() string {
	return os.TempDir()
}
