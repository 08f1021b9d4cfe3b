package shortener_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/shortener"
)

var alphanumeric = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

func TestGenerate_DefaultLength(t *testing.T) {
	code, err := shortener.Generate(0)
	require.NoError(t, err)
	assert.Len(t, code, shortener.DefaultLength)
	assert.Regexp(t, alphanumeric, code)
}

func TestGenerate_Lengths(t *testing.T) {
	for _, n := range []int{1, 6, 10} {
		code, err := shortener.Generate(n)
		require.NoError(t, err)
		assert.Len(t, code, n)
		assert.True(t, shortener.IsValid(code))
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	_, err := shortener.Generate(-1)
	require.ErrorIs(t, err, shortener.ErrInvalidLength)

	_, err = shortener.Generate(shortener.MaxLength + 1)
	require.ErrorIs(t, err, shortener.ErrInvalidLength)
}

func TestGenerate_Uniqueness(t *testing.T) {
	codes := make(map[string]struct{}, 1000)
	for range 1000 {
		code, err := shortener.Generate(6)
		require.NoError(t, err)
		_, dup := codes[code]
		require.False(t, dup, "duplicate code %s", code)
		codes[code] = struct{}{}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "a"},
		{61, "9"},
		{62, "BA"},
		{62*62 - 1, "99"},
		{62 * 62, "BAA"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, shortener.Encode(tt.n), "Encode(%d)", tt.n)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	for _, n := range []uint64{0, 1, 61, 62, 12345, 56_800_235_583, 1<<63 + 12345, ^uint64(0)} {
		got, err := shortener.Decode(shortener.Encode(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestDecode_InvalidCharacter(t *testing.T) {
	for _, code := range []string{"ab-c", "abc!", "héllo", " abc"} {
		_, err := shortener.Decode(code)
		assert.ErrorIs(t, err, shortener.ErrInvalidCharacter, "Decode(%q)", code)
	}
}

func TestDecode_Empty(t *testing.T) {
	_, err := shortener.Decode("")
	assert.ErrorIs(t, err, shortener.ErrEmptyCode)
}

func TestDecode_Overflow(t *testing.T) {
	_, err := shortener.Decode("99999999999")
	assert.ErrorIs(t, err, shortener.ErrOverflow)
}

func TestIsValid(t *testing.T) {
	assert.True(t, shortener.IsValid("Ab3xQ9"))
	assert.True(t, shortener.IsValid("0"))
	assert.False(t, shortener.IsValid(""))
	assert.False(t, shortener.IsValid("Ab3_Q9"))
	assert.False(t, shortener.IsValid("abc/def"))
}
