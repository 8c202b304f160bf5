package imageio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Format identifies an image container format.
type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatJPEG
	FormatBMP
	FormatTIFF
	FormatWebP
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatJPEG:
		return "JPEG"
	case FormatBMP:
		return "BMP"
	case FormatTIFF:
		return "TIFF"
	case FormatWebP:
		return "WebP"
	default:
		return "unknown"
	}
}

// CanEncode reports whether Encode can write the format.
func (f Format) CanEncode() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatBMP, FormatTIFF:
		return true
	default:
		return false
	}
}

// Lossless reports whether a decode of the encoded buffer reproduces it exactly.
func (f Format) Lossless() bool {
	return f.CanEncode() && f != FormatJPEG
}

var extFormats = map[string]Format{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
	".webp": FormatWebP,
}

// FormatFromPath selects the output format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extFormats[ext]
	if !ok || !f.CanEncode() {
		if ext == "" {
			ext = "(none)"
		}
		return FormatUnknown, fmt.Errorf("%w: cannot write extension %s for %s", ErrUnsupportedFormat, ext, path)
	}
	return f, nil
}

// formatByName maps an image package registry name to a Format.
func formatByName(name string) Format {
	switch name {
	case "png":
		return FormatPNG
	case "jpeg":
		return FormatJPEG
	case "bmp":
		return FormatBMP
	case "tiff":
		return FormatTIFF
	case "webp":
		return FormatWebP
	default:
		return FormatUnknown
	}
}
