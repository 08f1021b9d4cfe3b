package shortener_test

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/shortener"
)

type counter struct {
	n   atomic.Uint64
	err error
}

func (c *counter) NextID(context.Context) (uint64, error) {
	if c.err != nil {
		return 0, c.err
	}
	return c.n.Add(1), nil
}

func TestNewRandom_InvalidLength(t *testing.T) {
	_, err := shortener.NewRandom(11)
	assert.ErrorIs(t, err, shortener.ErrInvalidLength)
}

func TestRandom_Next(t *testing.T) {
	r, err := shortener.NewRandom(8)
	require.NoError(t, err)

	code, err := r.Next(context.Background())
	require.NoError(t, err)
	assert.Len(t, code, 8)
	assert.True(t, shortener.IsValid(code))
}

func TestSequential_Next(t *testing.T) {
	s, err := shortener.NewSequential(&counter{}, 6)
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for range 100 {
		code, err := s.Next(context.Background())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(code), 6)
		assert.True(t, shortener.IsValid(code), "code %q outside alphabet", code)
		_, dup := seen[code]
		require.False(t, dup)
		seen[code] = struct{}{}
	}
}

func TestSequential_Deterministic(t *testing.T) {
	a, err := shortener.NewSequential(&counter{}, 6)
	require.NoError(t, err)
	b, err := shortener.NewSequential(&counter{}, 6)
	require.NoError(t, err)

	codeA, err := a.Next(context.Background())
	require.NoError(t, err)
	codeB, err := b.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, codeA, codeB)
}

func TestSequential_SequenceError(t *testing.T) {
	seqErr := errors.New("sequence unavailable")
	s, err := shortener.NewSequential(&counter{err: seqErr}, 6)
	require.NoError(t, err)

	_, err = s.Next(context.Background())
	assert.ErrorIs(t, err, seqErr)
}

func TestSequential_CodeTooLong(t *testing.T) {
	c := &counter{}
	c.n.Store(math.MaxUint64 - 1)
	s, err := shortener.NewSequential(c, 6)
	require.NoError(t, err)

	_, err = s.Next(context.Background())
	assert.ErrorIs(t, err, shortener.ErrCodeTooLong)
}
