package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ImageInfo describes an encoded image without transforming it.
type ImageInfo struct {
	Format     Format
	Width      int
	Height     int
	Channels   int
	ColorModel string
	ICC        []byte       // embedded ICC profile, nil if absent
	Profile    *ProfileInfo // parsed ICC header, nil if absent or invalid
	ProfileErr error        // why Profile is nil despite ICC being present
}

func colorModelName(m color.Model) string {
	switch m {
	case color.RGBAModel:
		return "RGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.AlphaModel:
		return "Alpha"
	case color.YCbCrModel:
		return "YCbCr"
	case color.NYCbCrAModel:
		return "NYCbCrA"
	case color.CMYKModel:
		return "CMYK"
	}
	if p, ok := m.(color.Palette); ok {
		return fmt.Sprintf("Paletted(%d)", len(p))
	}
	return fmt.Sprintf("%T", m)
}

// GetInfo decodes data to report its geometry, channel layout and any
// embedded ICC profile.
func GetInfo(data []byte) (*ImageInfo, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if errors.Is(err, image.ErrFormat) {
		return nil, fmt.Errorf("%w: unrecognized image data", ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	buf, f, err := DecodeBytes(data)
	if err != nil {
		return nil, err
	}

	info := &ImageInfo{
		Format:     f,
		Width:      buf.Width,
		Height:     buf.Height,
		Channels:   buf.Channels,
		ColorModel: colorModelName(cfg.ColorModel),
	}

	switch f {
	case FormatJPEG:
		info.ICC, err = JPEGICC(data)
	case FormatPNG:
		info.ICC, err = PNGICC(data)
	}
	if err != nil {
		return nil, fmt.Errorf("extracting ICC: %w", err)
	}
	if info.ICC != nil {
		info.Profile, info.ProfileErr = ParseProfileInfo(info.ICC)
	}
	return info, nil
}
