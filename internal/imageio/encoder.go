package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/ir"
)

const DefaultQuality = 95

// EncoderOptions controls output encoding.
type EncoderOptions struct {
	Quality int    // JPEG quality (1-100), 0 selects DefaultQuality
	ICC     []byte // optional ICC profile to embed (PNG and JPEG only)
}

// ToImage converts a buffer into an *image.NRGBA. With keepAlpha false, or for
// 3-channel buffers, every pixel is fully opaque.
func ToImage(buf *ir.Buffer, keepAlpha bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			px := buf.At(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = px[ir.R]
			img.Pix[i+1] = px[ir.G]
			img.Pix[i+2] = px[ir.B]
			img.Pix[i+3] = 0xff
			if keepAlpha && buf.HasAlpha() {
				img.Pix[i+3] = px[ir.A]
			}
		}
	}
	return img
}

// Encode serializes buf in the given format. JPEG output drops alpha.
func Encode(w io.Writer, buf *ir.Buffer, f Format, opts EncoderOptions) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	if !f.CanEncode() {
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, f)
	}

	img := ToImage(buf, f != FormatJPEG)
	switch f {
	case FormatPNG:
		if opts.ICC == nil {
			return png.Encode(w, img)
		}
		var out bytes.Buffer
		if err := png.Encode(&out, img); err != nil {
			return err
		}
		data, err := EmbedPNGICC(out.Bytes(), opts.ICC)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case FormatJPEG:
		quality := opts.Quality
		if quality == 0 {
			quality = DefaultQuality
		}
		if quality < 1 || quality > 100 {
			return fmt.Errorf("JPEG quality %d out of range (1-100)", quality)
		}
		var out bytes.Buffer
		if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: quality}); err != nil {
			return err
		}
		data := out.Bytes()
		if opts.ICC != nil {
			var err error
			if data, err = EmbedJPEGICC(data, opts.ICC); err != nil {
				return err
			}
		}
		_, err := w.Write(data)
		return err

	case FormatBMP:
		return bmp.Encode(w, img)

	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return nil
}

// EncodeBytes encodes buf into memory.
func EncodeBytes(buf *ir.Buffer, f Format, opts EncoderOptions) ([]byte, error) {
	var out bytes.Buffer
	if err := Encode(&out, buf, f, opts); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
