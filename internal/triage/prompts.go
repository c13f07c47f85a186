package triage

import (
	"embed"
	"fmt"

	"github.com/vmdantas/mail-triage-go/internal/prompt"
)

//go:embed prompts/*.yml
var promptsFS embed.FS

// Prompts holds the external-model instruction templates.
type Prompts struct {
	prompts map[string]map[string]string
}

// NewPrompts loads the embedded triage prompts.
func NewPrompts() (*Prompts, error) {
	loaded, err := prompt.LoadYAMLDir(promptsFS, "prompts")
	if err != nil {
		return nil, fmt.Errorf("load triage prompts: %w", err)
	}
	return &Prompts{prompts: loaded}, nil
}

// Classify renders the classification prompt for an email.
func (p *Prompts) Classify(email string) (string, error) {
	template, err := p.field("classify", "user")
	if err != nil {
		return "", err
	}
	formatted, err := prompt.FormatTemplate(template, map[string]string{"email": email})
	if err != nil {
		return "", fmt.Errorf("format classify prompt: %w", err)
	}
	return formatted, nil
}

// Reply renders the category-specific reply prompt for an email.
func (p *Prompts) Reply(category Category, email string) (string, error) {
	instructionKey := "instruction_unproductive"
	if category == CategoryProductive {
		instructionKey = "instruction_productive"
	}
	instruction, err := p.field("reply", instructionKey)
	if err != nil {
		return "", err
	}
	template, err := p.field("reply", "user")
	if err != nil {
		return "", err
	}
	formatted, err := prompt.FormatTemplate(template, map[string]string{
		"instruction": instruction,
		"email":       email,
	})
	if err != nil {
		return "", fmt.Errorf("format reply prompt: %w", err)
	}
	return formatted, nil
}

func (p *Prompts) field(name string, key string) (string, error) {
	data, ok := p.prompts[name]
	if !ok {
		return "", fmt.Errorf("prompt %s not found", name)
	}
	value, ok := data[key]
	if !ok || value == "" {
		return "", fmt.Errorf("prompt field %s.%s not found", name, key)
	}
	return value, nil
}
