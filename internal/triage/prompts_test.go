package triage

import (
	"strings"
	"testing"
)

func TestPromptsClassify(t *testing.T) {
	prompts, err := NewPrompts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rendered, err := prompts.Classify("Preciso de suporte.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rendered, "Preciso de suporte.") {
		t.Fatalf("expected email embedded in prompt")
	}
	if !strings.Contains(rendered, "category e explain") {
		t.Fatalf("expected JSON field instruction, got %q", rendered)
	}
	if !strings.HasSuffix(strings.TrimSpace(rendered), "JSON:") {
		t.Fatalf("expected JSON suffix, got %q", rendered)
	}
}

func TestPromptsReplySelectsInstruction(t *testing.T) {
	prompts, err := NewPrompts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	productive, err := prompts.Reply(CategoryProductive, "email")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(productive, "3-6 linhas") {
		t.Fatalf("expected professional instruction, got %q", productive)
	}

	unproductive, err := prompts.Reply(CategoryUnproductive, "email")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(unproductive, "curta e educada") {
		t.Fatalf("expected short courteous instruction, got %q", unproductive)
	}
	if !strings.Contains(unproductive, "RESPOSTA:") {
		t.Fatalf("expected reply marker, got %q", unproductive)
	}
}
