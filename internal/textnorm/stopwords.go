package textnorm

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed stopwords/*.yml
var stopwordsFS embed.FS

type rawStopwords struct {
	Language string   `yaml:"language"`
	Words    []string `yaml:"words"`
}

func loadStopwords(language string) (map[string]struct{}, error) {
	data, err := stopwordsFS.ReadFile("stopwords/" + language + ".yml")
	if err != nil {
		return nil, fmt.Errorf("read stopwords %s: %w", language, err)
	}

	var raw rawStopwords
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse stopwords %s: %w", language, err)
	}

	words := make(map[string]struct{}, len(raw.Words))
	for _, word := range raw.Words {
		trimmed := strings.ToLower(strings.TrimSpace(word))
		if trimmed != "" {
			words[trimmed] = struct{}{}
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("stopwords %s: empty word list", language)
	}
	return words, nil
}
