package upload

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vmdantas/mail-triage-go/internal/config"
)

// ErrUnsafeFilename is returned when nothing usable remains after
// sanitizing an uploaded filename.
var ErrUnsafeFilename = errors.New("unsafe filename")

var allowedExtensions = map[string]struct{}{
	"txt": {},
	"pdf": {},
}

var unsafeCharsPattern = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Store persists uploaded files under a single directory. Files are removed
// after processing unless retention is configured.
type Store struct {
	dir    string
	retain bool
	logger *slog.Logger
}

// NewStore creates the upload directory and returns a Store.
func NewStore(cfg config.UploadConfig, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: cfg.Dir, retain: cfg.Retain, logger: logger}, nil
}

// AllowedExtension reports whether the filename carries a processable
// extension (txt or pdf, case-insensitive).
func AllowedExtension(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	_, ok := allowedExtensions[ext]
	return ok && ext != ""
}

// SanitizeFilename reduces an uploaded filename to a safe basename: path
// components are dropped and runs of unsafe characters collapse to "_".
// Returns "" when nothing safe remains.
func SanitizeFilename(name string) string {
	// Uploads may carry Windows-style paths.
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = unsafeCharsPattern.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._-")
	if name == "" {
		return ""
	}
	return name
}

// Save writes src to the store under the sanitized filename and returns the
// stored path.
func (s *Store) Save(name string, src io.Reader) (string, error) {
	safe := SanitizeFilename(name)
	if safe == "" {
		return "", ErrUnsafeFilename
	}

	path := filepath.Join(s.dir, safe)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return path, nil
}

// Cleanup removes a stored file once processing finished. With retention
// enabled it is a no-op.
func (s *Store) Cleanup(path string) {
	if s == nil || s.retain || path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("upload_cleanup_failed", "path", path, "err", err)
	}
}
