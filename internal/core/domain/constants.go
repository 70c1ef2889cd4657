package domain

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	ErrDecodeFailed = errors.New("failed to decode image")
	ErrEncodeFailed = errors.New("failed to encode image")
	ErrFileAccess   = errors.New("failed to access file")
)

const (
	DefaultQuality   = 75
	DefaultMethod    = 6
	DefaultOutputDir = "converted"
	OutputExtension  = ".webp"

	MaxQuality = 100
	MaxMethod  = 6
)

var supportedInputExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
}

// IsSupportedInput reports whether the file extension belongs to the set of
// formats picked up when scanning directories. Explicitly named files of other
// decodable formats are still accepted; decoding sniffs the content.
func IsSupportedInput(path string) bool {
	return supportedInputExtensions[strings.ToLower(filepath.Ext(path))]
}
