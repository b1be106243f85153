// Package imagefile provides helpers for loading component photos for
// OCR providers.
package imagefile

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// mimeTypes maps supported photo extensions to their MIME type.
var mimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
}

// Supported reports whether the file extension is a supported photo
// format.
func Supported(path string) bool {
	_, ok := mimeTypes[strings.ToLower(filepath.Ext(path))]
	return ok
}

// MIMEType returns the MIME type for a photo path, defaulting to
// image/jpeg for unknown extensions.
func MIMEType(path string) string {
	if mt, ok := mimeTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mt
	}
	return "image/jpeg"
}

// ReadDataURL reads the photo at path and encodes it as a base64 data
// URL suitable for vision model APIs.
func ReadDataURL(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	return fmt.Sprintf("data:%s;base64,%s", MIMEType(path), base64.StdEncoding.EncodeToString(raw)), nil
}
