// Package assets stores uploaded images (event branding, expert photos,
// company logos) on local disk and serves them back by public URL.
package assets

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnsupportedType is returned for files whose extension is not an
// accepted image format.
var ErrUnsupportedType = errors.New("unsupported file type: expected an image (jpg, jpeg, png, gif, webp, or svg)")

// ErrTooLarge is returned when an upload exceeds the configured size cap.
var ErrTooLarge = errors.New("file exceeds the maximum upload size")

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// Store writes uploaded images under a single directory and maps them
// to URLs below baseURL. Stored names are random, so uploads never
// collide and the original filename only contributes its extension.
type Store struct {
	dir     string
	baseURL string
	maxSize int64
}

// NewStore creates the upload directory if needed and returns a Store.
func NewStore(dir, baseURL string, maxSize int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		maxSize: maxSize,
	}, nil
}

// Save stores the upload and returns its public URL. filename is the
// client-supplied name; only its extension is kept.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().Unix(), uuid.New().String(), ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	// Read one byte past the cap to distinguish "exactly at the limit"
	// from "over it".
	written, err := io.Copy(dst, io.LimitReader(r, s.maxSize+1))
	if err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write file: %w", err)
	}
	if written > s.maxSize {
		os.Remove(dst.Name())
		return "", ErrTooLarge
	}

	// Plain concatenation: baseURL may be a full URL, which path.Join
	// would mangle ("https://" -> "https:/").
	return s.baseURL + "/" + name, nil
}

// Dir returns the directory uploads are written to, for mounting a
// static file server.
func (s *Store) Dir() string { return s.dir }
