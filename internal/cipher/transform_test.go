package cipher

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/ir"
)

func rgb(pixels ...byte) *ir.Buffer {
	return &ir.Buffer{Width: len(pixels) / 3, Height: 1, Channels: 3, Pixels: pixels}
}

// gradient builds a buffer covering every byte value in every channel.
func gradient(channels int) *ir.Buffer {
	b := ir.New(256, 2, channels)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			px := b.At(x, y)
			px[ir.R] = byte(x)
			px[ir.G] = byte(255 - x)
			px[ir.B] = byte(x*7 + y)
			if channels == 4 {
				px[ir.A] = byte(x*3 + 1)
			}
		}
	}
	return b
}

func allOps() []Op {
	var ops []Op
	for _, k := range []int{0, 1, 75, 123, 128, 255} {
		ops = append(ops, XOR(k), Add(k), Sub(k))
	}
	return append(ops, Swap(SwapRG), Swap(SwapRB), Swap(SwapGB))
}

func TestTransformXORScenario(t *testing.T) {
	src := rgb(10, 20, 30, 200, 210, 220)

	enc, err := Transform(src, XOR(123), Encrypt)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	want := []byte{10 ^ 123, 20 ^ 123, 30 ^ 123, 200 ^ 123, 210 ^ 123, 220 ^ 123}
	if diff := cmp.Diff(want, enc.Pixels); diff != "" {
		t.Errorf("encrypted pixels mismatch (-want +got):\n%s", diff)
	}

	dec, err := Transform(enc, XOR(123), Decrypt)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if diff := cmp.Diff(src, dec); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformAddScenario(t *testing.T) {
	src := rgb(100, 150, 200)

	enc, err := Transform(src, Add(75), Encrypt)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if diff := cmp.Diff([]byte{175, 225, 19}, enc.Pixels); diff != "" {
		t.Errorf("encrypted pixel mismatch (-want +got):\n%s", diff)
	}

	dec, err := Transform(enc, Add(75), Decrypt)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if diff := cmp.Diff([]byte{100, 150, 200}, dec.Pixels); diff != "" {
		t.Errorf("decrypted pixel mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformSubIsNegatedAdd(t *testing.T) {
	src := rgb(100, 10, 0)

	enc, err := Transform(src, Sub(20), Encrypt)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if diff := cmp.Diff([]byte{80, 246, 236}, enc.Pixels); diff != "" {
		t.Errorf("sub encrypt mismatch (-want +got):\n%s", diff)
	}

	viaAdd, err := Transform(src, Add(20), Decrypt)
	if err != nil {
		t.Fatalf("add decrypt: %v", err)
	}
	if diff := cmp.Diff(enc, viaAdd); diff != "" {
		t.Errorf("sub encrypt != add decrypt (-sub +add):\n%s", diff)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	for _, channels := range []int{3, 4} {
		src := gradient(channels)
		for _, op := range allOps() {
			enc, err := Transform(src, op, Encrypt)
			if err != nil {
				t.Fatalf("[%s/%d] encrypt: %v", op, channels, err)
			}
			dec, err := Transform(enc, op, Decrypt)
			if err != nil {
				t.Fatalf("[%s/%d] decrypt: %v", op, channels, err)
			}
			if diff := cmp.Diff(src, dec); diff != "" {
				t.Errorf("[%s/%d] round trip mismatch (-want +got):\n%s", op, channels, diff)
			}
		}
	}
}

func TestTransformSelfInverse(t *testing.T) {
	src := gradient(4)

	for k := 0; k <= 255; k++ {
		enc, err := Transform(src, XOR(k), Encrypt)
		if err != nil {
			t.Fatalf("xor(%d) encrypt: %v", k, err)
		}
		dec, err := Transform(src, XOR(k), Decrypt)
		if err != nil {
			t.Fatalf("xor(%d) decrypt: %v", k, err)
		}
		if !cmp.Equal(enc, dec) {
			t.Fatalf("xor(%d): encrypt and decrypt differ", k)
		}
	}

	for _, p := range []SwapPair{SwapRG, SwapRB, SwapGB} {
		once, err := Transform(src, Swap(p), Encrypt)
		if err != nil {
			t.Fatalf("swap(%s): %v", p, err)
		}
		if cmp.Equal(src, once) {
			t.Errorf("swap(%s) left the gradient unchanged", p)
		}
		twice, err := Transform(once, Swap(p), Encrypt)
		if err != nil {
			t.Fatalf("swap(%s) again: %v", p, err)
		}
		if diff := cmp.Diff(src, twice); diff != "" {
			t.Errorf("swap(%s) twice mismatch (-want +got):\n%s", p, diff)
		}
	}
}

func TestTransformSwapChannels(t *testing.T) {
	src := &ir.Buffer{Width: 1, Height: 1, Channels: 4, Pixels: []byte{1, 2, 3, 4}}
	cases := map[SwapPair][]byte{
		SwapRG: {2, 1, 3, 4},
		SwapRB: {3, 2, 1, 4},
		SwapGB: {1, 3, 2, 4},
	}
	for p, want := range cases {
		got, err := Transform(src, Swap(p), Decrypt)
		if err != nil {
			t.Fatalf("swap(%s): %v", p, err)
		}
		if diff := cmp.Diff(want, got.Pixels); diff != "" {
			t.Errorf("swap(%s) mismatch (-want +got):\n%s", p, diff)
		}
	}
}

func TestTransformPreservesAlpha(t *testing.T) {
	src := gradient(4)
	for _, op := range allOps() {
		for _, dir := range []Direction{Encrypt, Decrypt} {
			out, err := Transform(src, op, dir)
			if err != nil {
				t.Fatalf("[%s %s] %v", dir, op, err)
			}
			for y := 0; y < src.Height; y++ {
				for x := 0; x < src.Width; x++ {
					if got, want := out.At(x, y)[ir.A], src.At(x, y)[ir.A]; got != want {
						t.Fatalf("[%s %s] alpha at (%d,%d) = %d, want %d", dir, op, x, y, got, want)
					}
				}
			}
		}
	}
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	src := gradient(3)
	orig := src.Clone()

	out, err := Transform(src, Add(42), Encrypt)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if diff := cmp.Diff(orig, src); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
	if out.Width != src.Width || out.Height != src.Height || out.Channels != src.Channels {
		t.Errorf("geometry changed: %dx%dx%d", out.Width, out.Height, out.Channels)
	}

	again, err := Transform(src, Add(42), Encrypt)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if !cmp.Equal(out, again) {
		t.Error("repeated transform is not deterministic")
	}
}

func TestTransformValidation(t *testing.T) {
	src := rgb(1, 2, 3)
	cases := []struct {
		name string
		op   Op
		dir  Direction
		want error
	}{
		{"xor 256", XOR(256), Encrypt, ErrInvalidKey},
		{"xor -1", XOR(-1), Encrypt, ErrInvalidKey},
		{"add 300", Add(300), Decrypt, ErrInvalidKey},
		{"sub -5", Sub(-5), Encrypt, ErrInvalidKey},
		{"swap zero", Swap(0), Encrypt, ErrInvalidSwapPair},
		{"swap 9", Swap(9), Encrypt, ErrInvalidSwapPair},
		{"no kind", Op{}, Encrypt, ErrInvalidOperation},
		{"bad direction", XOR(1), Direction(7), ErrInvalidMode},
	}
	for _, tc := range cases {
		out, err := Transform(src, tc.op, tc.dir)
		if !errors.Is(err, tc.want) {
			t.Errorf("[%s] expected %v, got %v", tc.name, tc.want, err)
		}
		if out != nil {
			t.Errorf("[%s] expected nil buffer on error", tc.name)
		}
	}

	bad := &ir.Buffer{Width: 2, Height: 1, Channels: 3, Pixels: []byte{1, 2, 3}}
	if _, err := Transform(bad, XOR(1), Encrypt); !errors.Is(err, ir.ErrMalformedBuffer) {
		t.Errorf("expected ErrMalformedBuffer, got %v", err)
	}
}

func TestTransformEmptyBuffer(t *testing.T) {
	out, err := Transform(ir.New(0, 0, 4), XOR(9), Encrypt)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if len(out.Pixels) != 0 {
		t.Errorf("expected no pixels, got %d", len(out.Pixels))
	}
}
