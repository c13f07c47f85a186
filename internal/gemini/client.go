package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"google.golang.org/genai"

	"github.com/vmdantas/mail-triage-go/internal/config"
	"github.com/vmdantas/mail-triage-go/internal/metrics"
	"github.com/vmdantas/mail-triage-go/internal/triage"
)

// ErrNotConfigured is returned when no Gemini API key is available.
var ErrNotConfigured = errors.New("gemini api key not configured")

// jsonPayloadPattern extracts the widest brace-delimited span from a model
// response. Models frequently wrap JSON in prose or code fences.
var jsonPayloadPattern = regexp.MustCompile(`(?s)\{.*\}`)

// maxHeuristicExplanation caps the explanation taken from an unparseable
// response.
const maxHeuristicExplanation = 300

// Client calls the Gemini API for classification and reply generation. It
// satisfies triage.ExternalClient.
type Client struct {
	cfg     *config.Config
	prompts *triage.Prompts
	metrics *metrics.Store
	logger  *slog.Logger

	mu        sync.Mutex
	clients   map[string]*genai.Client
	apiKeys   []string
	apiKeyIdx int
}

// NewClient creates the Gemini client. It does not validate the API keys
// against the service; a missing key only surfaces on the first call.
func NewClient(cfg *config.Config, prompts *triage.Prompts, metricsStore *metrics.Store, logger *slog.Logger) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if prompts == nil {
		return nil, errors.New("prompts is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:     cfg,
		prompts: prompts,
		metrics: metricsStore,
		logger:  logger,
		clients: make(map[string]*genai.Client),
		apiKeys: cfg.Gemini.APIKeys,
	}, nil
}

// Classify asks the model to categorize the email and parses the response
// leniently: any response at all yields a usable classification.
func (c *Client) Classify(ctx context.Context, text string) (triage.Classification, error) {
	prompt, err := c.prompts.Classify(text)
	if err != nil {
		return triage.Classification{}, err
	}

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return triage.Classification{}, err
	}

	return parseClassification(raw), nil
}

// Reply asks the model for a reply suggestion matching the category.
func (c *Client) Reply(ctx context.Context, category triage.Category, text string) (string, error) {
	prompt, err := c.prompts.Reply(category, text)
	if err != nil {
		return "", err
	}

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(raw), nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	client, err := c.selectClient(ctx)
	if err != nil {
		return "", err
	}

	timeout := time.Duration(c.cfg.Gemini.TimeoutSeconds) * time.Second
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	response, err := client.Models.GenerateContent(
		callCtx,
		c.cfg.Gemini.Model,
		genai.Text(prompt),
		c.buildGenerateConfig(),
	)
	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordError(time.Since(start))
		}
		return "", fmt.Errorf("generate content: %w", err)
	}

	if c.metrics != nil {
		c.metrics.RecordSuccess(time.Since(start), extractUsage(response))
	}
	return response.Text(), nil
}

// selectClient rotates through the configured API keys, lazily creating one
// genai client per key.
func (c *Client) selectClient(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.apiKeys) == 0 {
		return nil, ErrNotConfigured
	}

	key := c.apiKeys[c.apiKeyIdx%len(c.apiKeys)]
	c.apiKeyIdx++
	if client, ok := c.clients[key]; ok {
		return client, nil
	}

	timeout := time.Duration(c.cfg.Gemini.TimeoutSeconds) * time.Second
	client, err := genai.NewClient(context.WithoutCancel(ctx), &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			Timeout: genai.Ptr(timeout),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	c.clients[key] = client
	return client, nil
}

func (c *Client) buildGenerateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(c.cfg.Gemini.Temperature)),
		MaxOutputTokens: int32(c.cfg.Gemini.MaxOutputTokens),
	}
}

type rawClassification struct {
	Category string `json:"category"`
	Explain  string `json:"explain"`
}

// parseClassification turns a model response into a classification without
// ever failing. It first tries the widest JSON object in the response, then
// falls back to a substring heuristic over the raw text.
func parseClassification(raw string) triage.Classification {
	candidate := raw
	if match := jsonPayloadPattern.FindString(raw); match != "" {
		candidate = match
	}

	var parsed rawClassification
	if err := json.Unmarshal([]byte(candidate), &parsed); err == nil {
		return triage.Classification{
			Category:    triage.NormalizeCategory(parsed.Category),
			Explanation: parsed.Explain,
		}
	}

	category := triage.CategoryUnproductive
	if strings.Contains(strings.ToLower(raw), "produt") {
		category = triage.CategoryProductive
	}
	return triage.Classification{
		Category:    category,
		Explanation: truncateRunes(raw, maxHeuristicExplanation),
	}
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
