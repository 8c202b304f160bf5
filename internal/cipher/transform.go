package cipher

import (
	"fmt"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/ir"
)

// Transformer applies one resolved operation to image buffers. It holds no
// per-image state and may be reused.
type Transformer struct {
	op   Op // forward-equivalent descriptor
	lut  [256]byte
	swap [2]int
}

// NewTransformer validates op and direction and precomputes the per-channel
// lookup table.
func NewTransformer(op Op, dir Direction) (*Transformer, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	resolved, err := op.Resolve(dir)
	if err != nil {
		return nil, err
	}

	t := &Transformer{op: resolved}
	key := byte(resolved.Key)
	switch resolved.Kind {
	case KindXOR:
		for i := range t.lut {
			t.lut[i] = byte(i) ^ key
		}
	case KindAdd:
		for i := range t.lut {
			t.lut[i] = byte(i) + key
		}
	case KindSub:
		for i := range t.lut {
			t.lut[i] = byte(i) - key
		}
	case KindSwap:
		a, b, _ := resolved.Pair.channels()
		t.swap = [2]int{a, b}
	}
	return t, nil
}

// Op returns the forward-equivalent descriptor the transformer applies.
func (t *Transformer) Op() Op { return t.op }

// TransformPixels returns a new buffer with the operation applied to the
// R, G and B channels of every pixel. Alpha is copied unchanged and src is
// never modified.
func (t *Transformer) TransformPixels(src *ir.Buffer) (*ir.Buffer, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	dst := src.Clone()
	px := dst.Pixels
	stride := dst.Channels

	if t.op.Kind == KindSwap {
		a, b := t.swap[0], t.swap[1]
		for i := 0; i < len(px); i += stride {
			px[i+a], px[i+b] = px[i+b], px[i+a]
		}
		return dst, nil
	}

	for i := 0; i < len(px); i += stride {
		px[i+ir.R] = t.lut[px[i+ir.R]]
		px[i+ir.G] = t.lut[px[i+ir.G]]
		px[i+ir.B] = t.lut[px[i+ir.B]]
	}
	return dst, nil
}

// Transform applies op in direction dir to buf and returns a new buffer of
// identical geometry. All validation happens before any pixel is touched.
func Transform(buf *ir.Buffer, op Op, dir Direction) (*ir.Buffer, error) {
	t, err := NewTransformer(op, dir)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", dir, op, err)
	}
	return t.TransformPixels(buf)
}
