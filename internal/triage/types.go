package triage

import "strings"

// Category is the two-valued triage outcome. The user-facing labels are
// Portuguese, matching the reply templates.
type Category string

const (
	// CategoryProductive marks an email that requires a follow-up action.
	CategoryProductive Category = "Produtivo"
	// CategoryUnproductive marks an email with no required action.
	CategoryUnproductive Category = "Improdutivo"
)

// Source identifies which strategy produced a stage's output.
type Source string

const (
	// SourceGemini marks output produced by the external model.
	SourceGemini Source = "gemini"
	// SourceRules marks output produced by the deterministic fallback.
	SourceRules Source = "rules"
)

// NormalizeCategory maps any free-form category label onto the two-valued
// contract: values starting with p or P are Productive, everything else is
// Unproductive. Both classifiers share this normalization.
func NormalizeCategory(value string) Category {
	trimmed := strings.TrimSpace(value)
	if trimmed != "" && (trimmed[0] == 'p' || trimmed[0] == 'P') {
		return CategoryProductive
	}
	return CategoryUnproductive
}

// Classification pairs a category with the classifier's explanation.
// Immutable once created, scoped to one request.
type Classification struct {
	Category    Category `json:"category"`
	Explanation string   `json:"explanation"`
}

// Result is the complete triage outcome for one email.
type Result struct {
	Classification
	Reply            string `json:"reply"`
	ClassifierSource Source `json:"classifier_source"`
	ReplySource      Source `json:"reply_source"`
}
