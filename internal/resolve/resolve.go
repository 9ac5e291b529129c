// Package resolve tries an ordered list of sources and returns the first result
// that both arrives and passes a validity check. Sources run one after another;
// each is attempted at most once per Resolve call.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"reliva/internal/platform/upstream"
)

// ErrInvalid marks an attempt whose result arrived but failed the validity check.
var ErrInvalid = errors.New("resolve: result failed validation")

// Source fetches a candidate for key. It issues at most one upstream call.
type Source[T any] struct {
	Name  string
	Fetch func(ctx context.Context, key string) (T, error)
}

type Attempt struct {
	Source string
	Err    error
}

// ExhaustedError is returned when no source produced a valid result.
type ExhaustedError struct {
	Key      string
	Attempts []Attempt
}

func (e *ExhaustedError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Source, a.Err))
	}
	return fmt.Sprintf("resolve %q: no source succeeded (%s)", e.Key, strings.Join(parts, "; "))
}

// Unavailable reports whether every attempt failed in transport, as opposed to
// at least one source answering with nothing usable. A 4xx answer or an
// invalid result counts as an answer.
func (e *ExhaustedError) Unavailable() bool {
	if len(e.Attempts) == 0 {
		return false
	}
	for _, a := range e.Attempts {
		if errors.Is(a.Err, ErrInvalid) || !upstream.IsTransient(a.Err) {
			return false
		}
	}
	return true
}

// Result carries the winning value and the name of the source that produced it.
type Result[T any] struct {
	Value  T
	Source string
}

type Chain[T any] struct {
	sources []Source[T]
	valid   func(T) bool
}

// New builds a chain. A nil valid accepts every result that arrives.
func New[T any](valid func(T) bool, sources ...Source[T]) *Chain[T] {
	if valid == nil {
		valid = func(T) bool { return true }
	}
	return &Chain[T]{sources: sources, valid: valid}
}

// Then returns a copy of the chain with more sources appended.
func (c *Chain[T]) Then(sources ...Source[T]) *Chain[T] {
	all := make([]Source[T], 0, len(c.sources)+len(sources))
	all = append(all, c.sources...)
	all = append(all, sources...)
	return &Chain[T]{sources: all, valid: c.valid}
}

// Resolve returns the first valid result in source order. Earlier sources win
// whenever they produce a valid value; results are never merged.
func (c *Chain[T]) Resolve(ctx context.Context, key string) (Result[T], error) {
	logger := zerolog.Ctx(ctx)
	exhausted := &ExhaustedError{Key: key}

	for _, src := range c.sources {
		if err := ctx.Err(); err != nil {
			exhausted.Attempts = append(exhausted.Attempts, Attempt{Source: src.Name, Err: err})
			break
		}

		value, err := src.Fetch(ctx, key)
		if err != nil {
			logger.Debug().Err(err).Str("source", src.Name).Str("key", key).Msg("source failed, trying next")
			exhausted.Attempts = append(exhausted.Attempts, Attempt{Source: src.Name, Err: err})
			continue
		}
		if !c.valid(value) {
			logger.Debug().Str("source", src.Name).Str("key", key).Msg("source returned no usable record, trying next")
			exhausted.Attempts = append(exhausted.Attempts, Attempt{Source: src.Name, Err: ErrInvalid})
			continue
		}
		return Result[T]{Value: value, Source: src.Name}, nil
	}

	var zero T
	return Result[T]{Value: zero}, exhausted
}
