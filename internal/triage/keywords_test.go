package triage

import (
	"strings"
	"testing"
)

func TestRuleClassifierProductive(t *testing.T) {
	classifier, err := NewRuleClassifier()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := classifier.Classify("Preciso de ajuda com meu pagamento, urgente")
	if got.Category != CategoryProductive {
		t.Fatalf("expected Produtivo, got %s", got.Category)
	}
	// preciso, ajuda, pagamento, urgente all match.
	if !strings.Contains(got.Explanation, "(4)") {
		t.Fatalf("expected 4 keyword hits, got explanation %q", got.Explanation)
	}
}

func TestRuleClassifierUnproductive(t *testing.T) {
	classifier, err := NewRuleClassifier()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := classifier.Classify("Feliz Natal a todos, obrigado pelo ano!")
	if got.Category != CategoryUnproductive {
		t.Fatalf("expected Improdutivo, got %s", got.Category)
	}
	if got.Explanation != unproductiveExplanation {
		t.Fatalf("unexpected explanation: %q", got.Explanation)
	}
}

func TestRuleClassifierCountsKeywordOnce(t *testing.T) {
	classifier, err := NewRuleClassifier()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := classifier.Classify("urgente urgente URGENTE!!!")
	if got.Category != CategoryProductive {
		t.Fatalf("expected Produtivo, got %s", got.Category)
	}
	if !strings.Contains(got.Explanation, "(1)") {
		t.Fatalf("expected single hit for repeated keyword, got %q", got.Explanation)
	}
}

func TestRuleClassifierAlwaysTwoValued(t *testing.T) {
	classifier, err := NewRuleClassifier()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inputs := []string{
		"",
		"   ",
		"\x00\xff\xfe",
		strings.Repeat("a", 1<<16),
		"Solicito atualização do contrato em anexo.",
		"느낌표! 😀 ?",
	}
	for _, input := range inputs {
		got := classifier.Classify(input)
		if got.Category != CategoryProductive && got.Category != CategoryUnproductive {
			t.Fatalf("unexpected category %q for input %q", got.Category, input)
		}
		if got.Explanation == "" {
			t.Fatalf("expected non-empty explanation for input %q", input)
		}
	}
}

func TestRuleClassifierKeywordPackLoaded(t *testing.T) {
	classifier, err := NewRuleClassifier()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(classifier.Keywords()) != 22 {
		t.Fatalf("expected 22 keyword stems, got %d", len(classifier.Keywords()))
	}
}
