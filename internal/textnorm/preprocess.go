package textnorm

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

const (
	languagePortuguese = "portuguese"
	languageEnglish    = "english"
)

// Word tokens must cover accented Latin letters; Go's \w is ASCII-only.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Normalizer turns raw email text into a normalized token stream. With
// stemming enabled it removes stopwords and stems each token; without it
// it degrades to plain word extraction. Both tiers are deliberate: the
// degraded path keeps preprocessing total when the NLP capability is off.
type Normalizer struct {
	stemming  bool
	language  string
	stopwords map[string]struct{}
}

// NewNormalizer builds a Normalizer. With stemming enabled it loads the
// Portuguese stopword set, falling back to English when the Portuguese
// pack cannot be loaded.
func NewNormalizer(stemming bool, logger *slog.Logger) (*Normalizer, error) {
	n := &Normalizer{stemming: stemming}
	if !stemming {
		return n, nil
	}

	language := languagePortuguese
	words, err := loadStopwords(language)
	if err != nil {
		if logger != nil {
			logger.Warn("stopwords_portuguese_unavailable", "err", err)
		}
		language = languageEnglish
		words, err = loadStopwords(language)
		if err != nil {
			return nil, err
		}
	}

	n.language = language
	n.stopwords = words
	return n, nil
}

// Preprocess lowercases the cleaned text and reduces it to a space-joined
// token stream.
func (n *Normalizer) Preprocess(text string) string {
	lowered := strings.ToLower(Clean(text))
	if n == nil || !n.stemming {
		return strings.Join(wordPattern.FindAllString(lowered, -1), " ")
	}

	tokens := wordPattern.FindAllString(lowered, -1)
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !isAlphabetic(token) {
			continue
		}
		if _, skip := n.stopwords[token]; skip {
			continue
		}
		result = append(result, n.stem(token))
	}
	return strings.Join(result, " ")
}

// Language reports the stopword language in use, empty when stemming is off.
func (n *Normalizer) Language() string {
	if n == nil {
		return ""
	}
	return n.language
}

func (n *Normalizer) stem(token string) string {
	stemmed, err := snowball.Stem(token, n.language, false)
	if err != nil || stemmed == "" {
		return token
	}
	return stemmed
}

func isAlphabetic(token string) bool {
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(token) > 0
}
