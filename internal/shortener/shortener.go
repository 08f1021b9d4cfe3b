package shortener

import (
	"errors"
	"fmt"
	"math"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Alphabet maps digit values to symbols: the symbol at index i has value i.
	Alphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	DefaultLength = 6
	MaxLength     = 10

	base = uint64(len(Alphabet))
)

var (
	ErrInvalidLength    = errors.New("invalid code length")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrEmptyCode        = errors.New("code is empty")
	ErrOverflow         = errors.New("code value overflows uint64")
	ErrCodeTooLong      = errors.New("code exceeds maximum length")
)

var digitValues = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = int8(i)
	}
	return t
}()

// Generate returns length symbols drawn uniformly from Alphabet using
// crypto/rand. A zero length selects DefaultLength.
func Generate(length int) (string, error) {
	if length == 0 {
		length = DefaultLength
	}
	if length < 0 || length > MaxLength {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	return gonanoid.Generate(Alphabet, length)
}

// Encode renders n in base 62, most significant symbol first.
func Encode(n uint64) string {
	if n == 0 {
		return Alphabet[:1]
	}
	var buf [11]byte // 62^11 > 2^64
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = Alphabet[n%base]
		n /= base
	}
	return string(buf[i:])
}

// Decode is the inverse of Encode.
func Decode(code string) (uint64, error) {
	if code == "" {
		return 0, ErrEmptyCode
	}
	var n uint64
	for i := 0; i < len(code); i++ {
		d := digitValues[code[i]]
		if d < 0 {
			return 0, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, code[i], i)
		}
		if n > (math.MaxUint64-uint64(d))/base {
			return 0, ErrOverflow
		}
		n = n*base + uint64(d)
	}
	return n, nil
}

// IsValid reports whether code is non-empty and made of Alphabet symbols only.
func IsValid(code string) bool {
	if code == "" {
		return false
	}
	for i := 0; i < len(code); i++ {
		if digitValues[code[i]] < 0 {
			return false
		}
	}
	return true
}
