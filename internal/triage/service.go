package triage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/vmdantas/mail-triage-go/internal/cache"
	"github.com/vmdantas/mail-triage-go/internal/config"
	"github.com/vmdantas/mail-triage-go/internal/metrics"
)

// ExternalClient is the external-model side of the pipeline. Both methods
// may fail; the Service degrades to the rule path on any error.
type ExternalClient interface {
	Classify(ctx context.Context, text string) (Classification, error)
	Reply(ctx context.Context, category Category, text string) (string, error)
}

// Service is the triage orchestrator. Process is total: every input yields
// a valid category, explanation and non-empty reply, regardless of external
// failures.
type Service struct {
	external        ExternalClient
	externalEnabled bool
	rules           *RuleClassifier
	memo            *cache.TTLCache[string, Classification]
	metrics         *metrics.Store
	logger          *slog.Logger
}

// NewService wires the orchestrator. external may be nil; the service then
// runs fallback-only.
func NewService(
	cfg *config.Config,
	external ExternalClient,
	rules *RuleClassifier,
	metricsStore *metrics.Store,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	externalEnabled := cfg != nil && cfg.Capabilities.ExternalModel && external != nil

	cacheSize := 1000
	cacheTTL := 10 * time.Minute
	if cfg != nil {
		cacheSize = cfg.Triage.CacheSize
		cacheTTL = time.Duration(cfg.Triage.CacheTTLSeconds) * time.Second
	}

	return &Service{
		external:        external,
		externalEnabled: externalEnabled,
		rules:           rules,
		memo:            cache.NewTTLCache[string, Classification](cacheSize, cacheTTL),
		metrics:         metricsStore,
		logger:          logger,
	}
}

// Process classifies the email and produces a suggested reply. It never
// returns an error: any external failure silently degrades to the
// deterministic path.
func (s *Service) Process(ctx context.Context, rawInput string) Result {
	classification, classifierSource := s.classify(ctx, rawInput)
	reply, replySource := s.reply(ctx, classification.Category, rawInput)

	return Result{
		Classification:   classification,
		Reply:            reply,
		ClassifierSource: classifierSource,
		ReplySource:      replySource,
	}
}

func (s *Service) classify(ctx context.Context, text string) (Classification, Source) {
	if s.externalEnabled {
		classification, err := s.external.Classify(ctx, text)
		if err == nil {
			return classification, SourceGemini
		}
		if s.metrics != nil {
			s.metrics.RecordClassifyFallback()
		}
		s.logger.Warn("triage_classify_fallback", "err", err)
	}
	return s.classifyRules(text), SourceRules
}

// classifyRules memoizes the deterministic classification. Safe because the
// rule path is pure.
func (s *Service) classifyRules(text string) Classification {
	key := contentKey(text)
	if cached, ok := s.memo.Get(key); ok {
		return cached
	}
	classification := s.rules.Classify(text)
	s.memo.Set(key, classification)
	return classification
}

func (s *Service) reply(ctx context.Context, category Category, text string) (string, Source) {
	if s.externalEnabled {
		reply, err := s.external.Reply(ctx, category, text)
		if err == nil && reply == "" {
			err = errors.New("empty model reply")
		}
		if err == nil {
			return reply, SourceGemini
		}
		if s.metrics != nil {
			s.metrics.RecordReplyFallback()
		}
		s.logger.Warn("triage_reply_fallback", "err", err)
	}
	return RuleReply(category), SourceRules
}

func contentKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
