package cipher

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidKey       = errors.New("invalid key")
	ErrInvalidSwapPair  = errors.New("invalid swap pair")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrInvalidMode      = errors.New("invalid mode")
)

// Kind selects the per-channel operation.
type Kind int

const (
	KindXOR Kind = iota + 1
	KindAdd
	KindSub
	KindSwap
)

func (k Kind) String() string {
	switch k {
	case KindXOR:
		return "xor"
	case KindAdd:
		return "add"
	case KindSub:
		return "sub"
	case KindSwap:
		return "swap"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// usesKey reports whether the kind takes a numeric key.
func (k Kind) usesKey() bool {
	return k == KindXOR || k == KindAdd || k == KindSub
}

// ParseKind converts an operation token (xor, add, sub, swap) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "xor":
		return KindXOR, nil
	case "add":
		return KindAdd, nil
	case "sub":
		return KindSub, nil
	case "swap":
		return KindSwap, nil
	default:
		return 0, fmt.Errorf("%w: unknown operation %q (want xor, add, sub or swap)", ErrInvalidOperation, s)
	}
}

// SwapPair names the two color channels exchanged by a swap.
type SwapPair int

const (
	SwapRG SwapPair = iota + 1
	SwapRB
	SwapGB
)

func (p SwapPair) String() string {
	switch p {
	case SwapRG:
		return "rg"
	case SwapRB:
		return "rb"
	case SwapGB:
		return "gb"
	default:
		return fmt.Sprintf("SwapPair(%d)", int(p))
	}
}

// channels returns the interleaved channel indices exchanged by the pair.
func (p SwapPair) channels() (int, int, bool) {
	switch p {
	case SwapRG:
		return 0, 1, true
	case SwapRB:
		return 0, 2, true
	case SwapGB:
		return 1, 2, true
	default:
		return 0, 0, false
	}
}

// ParseSwapPair converts a swap token (rg, rb, gb) to a SwapPair.
func ParseSwapPair(s string) (SwapPair, error) {
	switch strings.ToLower(s) {
	case "rg":
		return SwapRG, nil
	case "rb":
		return SwapRB, nil
	case "gb":
		return SwapGB, nil
	case "":
		return 0, fmt.Errorf("%w: need to specify swap type: rg, rb, or gb", ErrInvalidSwapPair)
	default:
		return 0, fmt.Errorf("%w: %q (want rg, rb or gb)", ErrInvalidSwapPair, s)
	}
}

// Direction selects the forward or inverse transform.
type Direction int

const (
	Encrypt Direction = iota + 1
	Decrypt
)

func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a mode token (encrypt, decrypt) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "encrypt":
		return Encrypt, nil
	case "decrypt":
		return Decrypt, nil
	default:
		return 0, fmt.Errorf("%w: %q (want encrypt or decrypt)", ErrInvalidMode, s)
	}
}

// Op is an operation descriptor. Key is meaningful for XOR, Add and Sub;
// Pair only for Swap.
type Op struct {
	Kind Kind
	Key  int
	Pair SwapPair
}

func XOR(key int) Op { return Op{Kind: KindXOR, Key: key} }
func Add(key int) Op { return Op{Kind: KindAdd, Key: key} }
func Sub(key int) Op { return Op{Kind: KindSub, Key: key} }
func Swap(pair SwapPair) Op { return Op{Kind: KindSwap, Pair: pair} }

// NewOp builds a descriptor from command-line tokens. key is nil when the
// user supplied none.
func NewOp(kind string, key *int, pair string) (Op, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Op{}, err
	}
	if k == KindSwap {
		p, err := ParseSwapPair(pair)
		if err != nil {
			return Op{}, err
		}
		return Swap(p), nil
	}
	if key == nil {
		return Op{}, fmt.Errorf("%w: need a key value (0-255) for %s", ErrInvalidKey, k)
	}
	op := Op{Kind: k, Key: *key}
	if err := op.Validate(); err != nil {
		return Op{}, err
	}
	return op, nil
}

// Validate checks the descriptor's parameters.
func (o Op) Validate() error {
	switch {
	case o.Kind.usesKey():
		if o.Key < 0 || o.Key > 255 {
			return fmt.Errorf("%w: %d (key needs to be an integer from 0 to 255)", ErrInvalidKey, o.Key)
		}
	case o.Kind == KindSwap:
		if _, _, ok := o.Pair.channels(); !ok {
			return fmt.Errorf("%w: %s", ErrInvalidSwapPair, o.Pair)
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidOperation, o.Kind)
	}
	return nil
}

// Resolve returns the descriptor whose forward transform performs o in
// direction d. Decrypting Add is encrypting Sub and vice versa; XOR and Swap
// are their own inverses.
func (o Op) Resolve(d Direction) (Op, error) {
	switch d {
	case Encrypt:
		return o, nil
	case Decrypt:
		switch o.Kind {
		case KindAdd:
			o.Kind = KindSub
		case KindSub:
			o.Kind = KindAdd
		}
		return o, nil
	default:
		return Op{}, fmt.Errorf("%w: %s", ErrInvalidMode, d)
	}
}

func (o Op) String() string {
	if o.Kind == KindSwap {
		return fmt.Sprintf("swap(%s)", o.Pair)
	}
	return fmt.Sprintf("%s(%d)", o.Kind, o.Key)
}
