package render

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/goregular"
)

// LoadFontFile reads a TrueType font able to shape Cyrillic and Latin
// text. An empty path selects the embedded Go Regular face.
func LoadFontFile(path string) ([]byte, error) {
	if path == "" {
		return goregular.TTF, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: read font %s: %w", path, err)
	}
	return data, nil
}
