package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/ir"
)

// ReadFile reads an input image from disk.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: can't find image: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// Decode sniffs and decodes an image into an RGB or RGBA buffer. Images that
// report themselves opaque become 3-channel buffers; everything else keeps a
// straight (non-premultiplied) alpha channel.
func Decode(r io.Reader) (*ir.Buffer, Format, error) {
	img, name, err := image.Decode(r)
	if errors.Is(err, image.ErrFormat) {
		return nil, FormatUnknown, fmt.Errorf("%w: unrecognized image data", ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("decoding %s: %w", name, err)
	}
	return FromImage(img), formatByName(name), nil
}

// DecodeBytes decodes an in-memory image.
func DecodeBytes(data []byte) (*ir.Buffer, Format, error) {
	return Decode(bytes.NewReader(data))
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

// FromImage converts any image.Image into a buffer anchored at (0, 0).
func FromImage(img image.Image) *ir.Buffer {
	bounds := img.Bounds()
	channels := 4
	if isOpaque(img) {
		channels = 3
	}
	buf := ir.New(bounds.Dx(), bounds.Dy(), channels)

	if src, ok := img.(*image.NRGBA); ok && channels == 4 {
		rowLen := buf.Width * 4
		for y := 0; y < buf.Height; y++ {
			i := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.Pixels[y*rowLen:(y+1)*rowLen], src.Pix[i:i+rowLen])
		}
		return buf
	}

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			px := buf.At(x, y)
			px[ir.R], px[ir.G], px[ir.B] = c.R, c.G, c.B
			if channels == 4 {
				px[ir.A] = c.A
			}
		}
	}
	return buf
}
