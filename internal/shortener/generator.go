package shortener

import (
	"context"
	"fmt"

	"github.com/sqids/sqids-go"
)

const (
	StrategyRandom     = "random"
	StrategySequential = "sequential"
)

// Random produces independent random codes of a fixed length.
type Random struct {
	length int
}

func NewRandom(length int) (*Random, error) {
	if length == 0 {
		length = DefaultLength
	}
	if length < 0 || length > MaxLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	return &Random{length: length}, nil
}

func (r *Random) Next(_ context.Context) (string, error) {
	return Generate(r.length)
}

type Sequence interface {
	NextID(ctx context.Context) (uint64, error)
}

// Sequential turns ids from a store sequence into codes. Sqids shuffles the
// output so neighbouring ids do not produce neighbouring codes.
type Sequential struct {
	seq   Sequence
	sqids *sqids.Sqids
}

func NewSequential(seq Sequence, length int) (*Sequential, error) {
	if length == 0 {
		length = DefaultLength
	}
	if length < 0 || length > MaxLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	s, err := sqids.New(sqids.Options{
		Alphabet:  Alphabet,
		MinLength: uint8(length),
	})
	if err != nil {
		return nil, err
	}
	return &Sequential{seq: seq, sqids: s}, nil
}

func (s *Sequential) Next(ctx context.Context) (string, error) {
	id, err := s.seq.NextID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get next id: %w", err)
	}
	code, err := s.sqids.Encode([]uint64{id})
	if err != nil {
		return "", fmt.Errorf("failed to encode id: %w", err)
	}
	if len(code) > MaxLength {
		return "", fmt.Errorf("%w: id %d", ErrCodeTooLong, id)
	}
	return code, nil
}
