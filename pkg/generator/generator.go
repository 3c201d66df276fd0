// Package generator maps MT19937 output onto uniform reals and bounded
// integers.
//
// A Generator is not safe for concurrent use. Batches drawn through one
// Generator by several goroutines must be serialized by the caller.
package generator

import (
	"errors"
	"fmt"

	"randgen/pkg/mt19937"
)

const (
	// 1/2^32
	uint32Scale = 1.0 / 4294967296.0

	// widest span Int can map, the full 32-bit output domain
	maxSpan = int64(1) << 32
)

var (
	ErrInvalidRange  = errors.New("min must be less than or equal to max")
	ErrRangeTooWide  = errors.New("range exceeds the 32-bit domain")
	ErrInvalidCount  = errors.New("count must not be negative")
	ErrCountExceeded = errors.New("count exceeds the batch limit")
)

type Generator struct {
	mt       *mt19937.MT
	maxCount int
}

type Option func(*Generator)

// WithMaxCount caps the batch size accepted by Generate. n <= 0 means no cap.
func WithMaxCount(n int) Option {
	return func(g *Generator) {
		g.maxCount = n
	}
}

func New(seed uint32, opts ...Option) *Generator {
	g := &Generator{
		mt: mt19937.New(seed),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Seed discards the current state and restarts the sequence from seed.
func (g *Generator) Seed(seed uint32) {
	g.mt.Seed(seed)
}

func (g *Generator) MaxCount() int {
	return g.maxCount
}

func (g *Generator) Uint32() uint32 {
	return g.mt.Uint32()
}

// Float64 returns a value in [0, 1) carrying 32 bits of entropy.
func (g *Generator) Float64() float64 {
	return float64(g.mt.Uint32()) * uint32Scale
}

func checkRange(min, max int) (int64, error) {
	if min > max {
		return 0, fmt.Errorf("%w: min=%d max=%d", ErrInvalidRange, min, max)
	}
	// max-min can overflow int64 but is exact as uint64
	d := uint64(int64(max) - int64(min))
	if d >= uint64(maxSpan) {
		return 0, fmt.Errorf("%w: min=%d max=%d", ErrRangeTooWide, min, max)
	}
	return int64(d) + 1, nil
}

// ranged maps one uniform draw onto [min, min+span).
func (g *Generator) ranged(min int, span int64) int {
	// truncation is floor here, the product is never negative
	return min + int(int64(g.Float64()*float64(span)))
}

// Int returns a value in [min, max]. Spans close to 2^32 are mapped
// with bias since a draw holds only 32 bits.
func (g *Generator) Int(min, max int) (int, error) {
	span, err := checkRange(min, max)
	if err != nil {
		return 0, err
	}
	return g.ranged(min, span), nil
}

// Generate draws count values in [min, max] in generation order. Invalid
// arguments are rejected before any state is consumed.
func (g *Generator) Generate(min, max, count int) ([]int, error) {
	span, err := checkRange(min, max)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: count=%d", ErrInvalidCount, count)
	}
	if g.maxCount > 0 && count > g.maxCount {
		return nil, fmt.Errorf("%w: count=%d limit=%d", ErrCountExceeded, count, g.maxCount)
	}

	nums := make([]int, 0, count)
	for i := 0; i < count; i++ {
		nums = append(nums, g.ranged(min, span))
	}
	return nums, nil
}
