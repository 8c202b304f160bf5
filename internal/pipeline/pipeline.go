package pipeline

import (
	"fmt"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/cipher"
	"github.com/ritikkr220-wq/SCT-CS-2/internal/imageio"
	"github.com/ritikkr220-wq/SCT-CS-2/internal/ir"
)

// Options controls a single transform run.
type Options struct {
	Op          cipher.Op
	Direction   cipher.Direction
	Format      imageio.Format // output container
	Quality     int            // JPEG quality (1-100), 0 for default
	PreserveICC bool           // carry an embedded ICC profile into PNG/JPEG output
}

// Result holds the output of a pipeline run.
type Result struct {
	Data         []byte // encoded output image
	Width        int
	Height       int
	Channels     int // channels of the transformed buffer, before encoding
	InputFormat  imageio.Format
	OutputFormat imageio.Format
	Op           cipher.Op // forward-equivalent operation that was applied
	ICC          []byte    // profile carried into the output, nil if none
}

// Run executes decode → pixel transform → encode. The operation is validated
// before the input is decoded.
func Run(data []byte, opts Options) (*Result, error) {
	// 1. Validate the operation and output format
	xform, err := cipher.NewTransformer(opts.Op, opts.Direction)
	if err != nil {
		return nil, err
	}
	if !opts.Format.CanEncode() {
		return nil, fmt.Errorf("%w: cannot encode %s", imageio.ErrUnsupportedFormat, opts.Format)
	}

	// 2. Decode
	src, inFormat, err := imageio.DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// 3. Transform
	out, err := xform.TransformPixels(src)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}

	// 4. Encode, optionally re-embedding the source profile
	var icc []byte
	if opts.PreserveICC {
		icc = sourceICC(data, inFormat)
	}
	encoded, err := imageio.EncodeBytes(out, opts.Format, imageio.EncoderOptions{
		Quality: opts.Quality,
		ICC:     icc,
	})
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:         encoded,
		Width:        out.Width,
		Height:       out.Height,
		Channels:     out.Channels,
		InputFormat:  inFormat,
		OutputFormat: opts.Format,
		Op:           xform.Op(),
		ICC:          icc,
	}, nil
}

// sourceICC returns the profile embedded in a PNG or JPEG input. A damaged
// profile is dropped rather than failing the run.
func sourceICC(data []byte, f imageio.Format) []byte {
	var (
		icc []byte
		err error
	)
	switch f {
	case imageio.FormatJPEG:
		icc, err = imageio.JPEGICC(data)
	case imageio.FormatPNG:
		icc, err = imageio.PNGICC(data)
	}
	if err != nil || len(icc) == 0 {
		return nil
	}
	return icc
}

// Verification reports how closely a decrypted image matches its original.
type Verification struct {
	Width     int
	Height    int
	Channels  int // channels compared
	Samples   int // total channel samples compared
	Differing int // samples that differ
}

// Exact reports whether the decrypted image reproduces the original.
func (v *Verification) Exact() bool { return v.Differing == 0 }

// Verify decrypts encrypted with op and compares it against original. When
// one side has lost its alpha channel (JPEG), only R, G and B are compared.
func Verify(original, encrypted []byte, op cipher.Op) (*Verification, error) {
	xform, err := cipher.NewTransformer(op, cipher.Decrypt)
	if err != nil {
		return nil, err
	}

	want, _, err := imageio.DecodeBytes(original)
	if err != nil {
		return nil, fmt.Errorf("decode original: %w", err)
	}
	enc, _, err := imageio.DecodeBytes(encrypted)
	if err != nil {
		return nil, fmt.Errorf("decode encrypted: %w", err)
	}
	got, err := xform.TransformPixels(enc)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}

	if want.Channels != got.Channels {
		want, got = want.RGB(), got.RGB()
	}
	n, err := ir.Diff(want, got)
	if err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}
	return &Verification{
		Width:     want.Width,
		Height:    want.Height,
		Channels:  want.Channels,
		Samples:   len(want.Pixels),
		Differing: n,
	}, nil
}
