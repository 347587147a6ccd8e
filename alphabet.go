package orderkey

import "fmt"

const (
	base62Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	base10Digits = "0123456789"
)

// Predefined alphabets. Base62 is the default used by the package-level
// functions.
var (
	Base62 = MustAlphabet(base62Digits)
	Base10 = MustAlphabet(base10Digits)
	Base95 = MustAlphabet(printableASCII())
)

// Alphabet is an ordered set of single-byte digits. It sets the base of both
// the integer and the fractional part of a key. The digits must be given in
// ascending byte order; this is not checked.
//
// An Alphabet is an immutable value and is safe for concurrent use.
type Alphabet struct {
	digits string
	index  [256]int16
}

// NewAlphabet builds an alphabet from digits. It needs at least two distinct
// single-byte characters.
func NewAlphabet(digits string) (Alphabet, error) {
	var al Alphabet
	if len(digits) < 2 {
		return al, newError(ErrInvalidAlphabet, "invalid alphabet: need at least 2 digits, got %d", len(digits))
	}
	for i := range al.index {
		al.index[i] = -1
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c >= 0x80 {
			return Alphabet{}, newError(ErrInvalidAlphabet, "invalid alphabet: non-ASCII digit at %d", i)
		}
		if al.index[c] != -1 {
			return Alphabet{}, newError(ErrInvalidAlphabet, "invalid alphabet: duplicate digit %q", c)
		}
		al.index[c] = int16(i)
	}
	al.digits = digits
	return al, nil
}

// MustAlphabet is like NewAlphabet but panics on error.
func MustAlphabet(digits string) Alphabet {
	al, err := NewAlphabet(digits)
	if err != nil {
		panic(fmt.Sprintf("orderkey: %v", err))
	}
	return al
}

// IndexOf returns the position of c, and false if c is not a digit.
func (al Alphabet) IndexOf(c byte) (int, bool) {
	i := al.index[c]
	return int(i), i >= 0
}

// At returns the digit at position i.
func (al Alphabet) At(i int) byte { return al.digits[i] }

// Zero returns the smallest digit.
func (al Alphabet) Zero() byte { return al.digits[0] }

// Max returns the largest digit.
func (al Alphabet) Max() byte { return al.digits[len(al.digits)-1] }

// Len returns the base.
func (al Alphabet) Len() int { return len(al.digits) }

func (al Alphabet) String() string { return al.digits }

// smallestInt is the reserved integer part "A" followed by 26 zero digits.
func (al Alphabet) smallestInt() string {
	b := make([]byte, 27)
	b[0] = 'A'
	for i := 1; i < len(b); i++ {
		b[i] = al.Zero()
	}
	return string(b)
}

// first is the canonical key returned when neither bound is given.
func (al Alphabet) first() string {
	return string([]byte{'a', al.Zero()})
}

func printableASCII() string {
	b := make([]byte, 0, '~'-' '+1)
	for c := byte(' '); c <= '~'; c++ {
		b = append(b, c)
	}
	return string(b)
}
