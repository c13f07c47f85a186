package triage

import (
	"embed"
	"fmt"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"gopkg.in/yaml.v3"
)

//go:embed keywords/*.yml
var keywordsFS embed.FS

const keywordPackPath = "keywords/actionable.yml"

const unproductiveExplanation = "Nenhum indício de ação detectado."

type rawKeywordPack struct {
	Version  int      `yaml:"version"`
	Keywords []string `yaml:"keywords"`
}

// RuleClassifier is the guaranteed-available fallback classifier: a
// case-insensitive substring count against a fixed keyword pack. It never
// errors after construction and performs no I/O.
type RuleClassifier struct {
	matcher  *ahocorasick.Matcher
	keywords []string
}

// NewRuleClassifier compiles the embedded keyword pack.
func NewRuleClassifier() (*RuleClassifier, error) {
	data, err := keywordsFS.ReadFile(keywordPackPath)
	if err != nil {
		return nil, fmt.Errorf("read keyword pack: %w", err)
	}

	var raw rawKeywordPack
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse keyword pack: %w", err)
	}

	keywords := make([]string, 0, len(raw.Keywords))
	patterns := make([][]byte, 0, len(raw.Keywords))
	for _, keyword := range raw.Keywords {
		trimmed := strings.ToLower(strings.TrimSpace(keyword))
		if trimmed == "" {
			continue
		}
		keywords = append(keywords, trimmed)
		patterns = append(patterns, []byte(trimmed))
	}
	if len(keywords) == 0 {
		return nil, fmt.Errorf("keyword pack %s: no keywords", keywordPackPath)
	}

	return &RuleClassifier{
		matcher:  ahocorasick.NewMatcher(patterns),
		keywords: keywords,
	}, nil
}

// Classify counts distinct keyword hits in the lowercased text. One or more
// hits yields Productive with the hit count; zero hits yields Unproductive.
func (c *RuleClassifier) Classify(text string) Classification {
	hits := c.matcher.MatchThreadSafe([]byte(strings.ToLower(text)))
	if len(hits) > 0 {
		return Classification{
			Category:    CategoryProductive,
			Explanation: fmt.Sprintf("Palavras-chave detectadas (%d).", len(hits)),
		}
	}
	return Classification{
		Category:    CategoryUnproductive,
		Explanation: unproductiveExplanation,
	}
}

// Keywords returns the compiled keyword stems.
func (c *RuleClassifier) Keywords() []string {
	return c.keywords
}
