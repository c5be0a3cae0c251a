// Package media stores recipe images on the local filesystem.
package media

import (
	"encoding/base64"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"droscher.com/Foodgram/pkg/model"
)

const (
	imageDir       = "recipes/images"
	dataURIPrefix  = "data:image/"
	base64Marker   = ";base64,"
	maxExtensionLn = 10
)

// Store writes image blobs under root/recipes/images and hands back paths
// relative to root, which is what a Recipe keeps.
type Store struct {
	root string
	mu   sync.Mutex
}

func NewStore(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("media root cannot be empty")
	}

	if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(imageDir)), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}

	return &Store{root: root}, nil
}

// IsDataURI reports whether value looks like an inline image.
func IsDataURI(value string) bool {
	return strings.HasPrefix(value, dataURIPrefix)
}

// SaveDataURI decodes data:image/<ext>;base64,<payload> and stores it with the
// extension taken from the declared MIME subtype.
func (s *Store) SaveDataURI(dataURI string) (string, error) {
	header, payload, found := strings.Cut(dataURI, base64Marker)
	if !found || !IsDataURI(header) {
		return "", model.NewValidationError(fmt.Errorf("image: must be a data:image/<type>;base64 URI")).Err()
	}

	subtype := strings.ToLower(strings.TrimPrefix(header, dataURIPrefix))

	extension := extensionFor(subtype)
	if !validExtension(extension) {
		return "", model.NewValidationError(fmt.Errorf("image: unsupported image type %q", subtype)).Err()
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", model.NewValidationError(fmt.Errorf("image: invalid base64 payload")).Err()
	}

	return s.write(extension, data)
}

// SaveUpload stores a raw uploaded file, naming it after its sniffed type.
func (s *Store) SaveUpload(data []byte) (string, error) {
	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return "", model.NewValidationError(fmt.Errorf("image: uploaded file is %s, not an image", detected.String())).Err()
	}

	return s.write(strings.TrimPrefix(detected.Extension(), "."), data)
}

func (s *Store) write(extension string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", model.NewValidationError(fmt.Errorf("image: is empty")).Err()
	}

	name := path.Join(imageDir, uuid.NewString()+"."+extension)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.Path(name), data, 0o644); err != nil { //nolint:gosec // images are public
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return name, nil
}

// Delete removes a stored image. Missing files are not an error.
func (s *Store) Delete(name string) error {
	if name == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image file: %w", err)
	}

	return nil
}

func (s *Store) Path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// extensionFor maps a MIME subtype to a file extension: the structured
// syntax suffix is dropped (svg+xml is svg) and vendor trees keep their last
// segment (vnd.microsoft.icon is icon).
func extensionFor(subtype string) string {
	base, _, _ := strings.Cut(subtype, "+")
	if index := strings.LastIndex(base, "."); index >= 0 {
		base = base[index+1:]
	}

	return base
}

func validExtension(extension string) bool {
	if extension == "" || len(extension) > maxExtensionLn {
		return false
	}

	for _, r := range extension {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}

	return true
}
