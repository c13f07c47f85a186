package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/vmdantas/mail-triage-go/internal/config"
)

// ErrPDFSupportDisabled is returned when a PDF is loaded while the PDF
// extraction capability is disabled.
var ErrPDFSupportDisabled = errors.New("pdf extraction disabled")

// Loader reads email text from txt and pdf files.
type Loader struct {
	pdfEnabled bool
}

// NewLoader builds a Loader from the resolved capabilities.
func NewLoader(caps config.Capabilities) *Loader {
	return &Loader{pdfEnabled: caps.PDFExtraction}
}

// Load reads the text content of a txt or pdf file. Unknown extensions are
// filtered by the HTTP boundary; if one slips through, Load returns an
// empty string rather than an error.
func (l *Loader) Load(path string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "txt":
		return loadText(path)
	case "pdf":
		if l == nil || !l.pdfEnabled {
			return "", ErrPDFSupportDisabled
		}
		return loadPDF(path)
	default:
		return "", nil
	}
}

func loadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read txt: %w", err)
	}
	// Invalid byte sequences are substituted, not rejected.
	return strings.ToValidUTF8(string(data), "�"), nil
}

func loadPDF(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer file.Close()

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		pages = append(pages, pageText(reader, i))
	}
	return strings.Join(pages, "\n"), nil
}

// pageText extracts one page's plain text. A page without extractable text
// contributes an empty string, never a failure.
func pageText(reader *pdf.Reader, number int) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	page := reader.Page(number)
	if page.V.IsNull() {
		return ""
	}
	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return content
}
