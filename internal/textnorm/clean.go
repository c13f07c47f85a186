package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	blankLinesPattern = regexp.MustCompile(`\n{2,}`)
	urlPattern        = regexp.MustCompile(`https?://\S+`)
	emailPattern      = regexp.MustCompile(`\S+@\S+`)
	// Everything outside accented Latin letters, digits, whitespace and basic
	// punctuation becomes a single space.
	disallowedPattern = regexp.MustCompile(`[^0-9a-zA-ZÀ-ÿ\s.,;:!?()/-]`)
)

// Clean strips URLs, e-mail addresses and disallowed characters from text.
// It is pure and deterministic, and idempotent for input already free of
// URLs, e-mails and disallowed characters.
func Clean(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = blankLinesPattern.ReplaceAllString(text, "\n\n")
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = disallowedPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
