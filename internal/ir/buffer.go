package ir

import (
	"errors"
	"fmt"
)

// Channel indices within an interleaved pixel.
const (
	R = 0
	G = 1
	B = 2
	A = 3
)

// ErrMalformedBuffer reports a buffer whose geometry and pixel data disagree.
var ErrMalformedBuffer = errors.New("malformed image buffer")

// Buffer is the intermediate representation passed between the decoder, the
// pixel transform and the encoder. Pixels are stored as interleaved R,G,B
// (Channels == 3) or R,G,B,A (Channels == 4) bytes, row-major order.
type Buffer struct {
	Width    int
	Height   int
	Channels int
	Pixels   []byte // len = Width * Height * Channels
}

// New allocates a zeroed buffer.
func New(width, height, channels int) *Buffer {
	return &Buffer{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pixels:   make([]byte, width*height*channels),
	}
}

// Validate checks the buffer geometry.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrMalformedBuffer)
	}
	if b.Channels != 3 && b.Channels != 4 {
		return fmt.Errorf("%w: %d channels (want 3 or 4)", ErrMalformedBuffer, b.Channels)
	}
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrMalformedBuffer, b.Width, b.Height)
	}
	if expected := b.Width * b.Height * b.Channels; len(b.Pixels) != expected {
		return fmt.Errorf("%w: expected %d bytes for %dx%dx%d, got %d",
			ErrMalformedBuffer, expected, b.Width, b.Height, b.Channels, len(b.Pixels))
	}
	return nil
}

// HasAlpha reports whether the fourth channel is alpha.
func (b *Buffer) HasAlpha() bool { return b.Channels == 4 }

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	c := *b
	c.Pixels = make([]byte, len(b.Pixels))
	copy(c.Pixels, b.Pixels)
	return &c
}

// RGB returns the buffer without its alpha channel. 3-channel buffers are
// returned as is.
func (b *Buffer) RGB() *Buffer {
	if !b.HasAlpha() {
		return b
	}
	out := New(b.Width, b.Height, 3)
	for i, j := 0, 0; i < len(b.Pixels); i, j = i+4, j+3 {
		copy(out.Pixels[j:j+3], b.Pixels[i:i+3])
	}
	return out
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return (y*b.Width + x) * b.Channels
}

// At returns the channel values of the pixel at (x, y). The slice aliases the
// buffer.
func (b *Buffer) At(x, y int) []byte {
	i := b.PixOffset(x, y)
	return b.Pixels[i : i+b.Channels : i+b.Channels]
}

// Diff counts channel samples that differ between two buffers of identical
// geometry.
func Diff(a, b *Buffer) (int, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	if a.Width != b.Width || a.Height != b.Height || a.Channels != b.Channels {
		return 0, fmt.Errorf("geometry mismatch: %dx%dx%d vs %dx%dx%d",
			a.Width, a.Height, a.Channels, b.Width, b.Height, b.Channels)
	}
	n := 0
	for i := range a.Pixels {
		if a.Pixels[i] != b.Pixels[i] {
			n++
		}
	}
	return n, nil
}
