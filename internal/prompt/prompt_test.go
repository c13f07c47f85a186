package prompt

import (
	"testing"
	"testing/fstest"
)

func TestFormatTemplate(t *testing.T) {
	output, err := FormatTemplate("Hello {name} {{test}}", map[string]string{"name": "Alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "Hello Alice {test}" {
		t.Fatalf("unexpected output: %s", output)
	}
}

func TestFormatTemplateMissingKey(t *testing.T) {
	if _, err := FormatTemplate("Hello {name}", map[string]string{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestFormatTemplateInvalidSyntax(t *testing.T) {
	if _, err := FormatTemplate("Hello {name", map[string]string{"name": "A"}); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := FormatTemplate("Hello name}", map[string]string{"name": "A"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadYAMLMapping(t *testing.T) {
	fsys := fstest.MapFS{
		"sample.yml": {Data: []byte("instruction: hello\nuser: hi\ncount: 3\n")},
	}

	mapping, err := LoadYAMLMapping(fsys, "sample.yml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mapping["instruction"] != "hello" {
		t.Fatalf("unexpected instruction: %s", mapping["instruction"])
	}
	if mapping["count"] != "3" {
		t.Fatalf("unexpected count: %s", mapping["count"])
	}
}

func TestLoadYAMLDir(t *testing.T) {
	fsys := fstest.MapFS{
		"prompts/a.yml":  {Data: []byte("instruction: alpha\n")},
		"prompts/b.yaml": {Data: []byte("instruction: beta\n")},
	}

	prompts, err := LoadYAMLDir(fsys, "prompts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prompts) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(prompts))
	}
	if prompts["a"]["instruction"] != "alpha" {
		t.Fatalf("unexpected prompt value")
	}
}
