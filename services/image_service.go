package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var imageCategories = map[string]bool{
	"destinations": true,
	"hotels":       true,
	"packages":     true,
	"houseboats":   true,
	"taxis":        true,
	"activities":   true,
}

// SaveCatalogImage stores a base64-encoded image under uploads/<category>
// and returns the path relative to the uploads root, e.g. "hotels/169...jpg".
// The category must be one of the catalog item categories.
func SaveCatalogImage(b64 string, category string) (string, error) {
	if !imageCategories[category] {
		return "", fmt.Errorf("unknown image category %q", category)
	}

	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	dir := filepath.Join("uploads", category)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := fmt.Sprintf("%d.jpg", time.Now().UnixNano())
	fullpath := filepath.Join(dir, filename)

	if err := os.WriteFile(fullpath, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(category, filename)), nil
}
