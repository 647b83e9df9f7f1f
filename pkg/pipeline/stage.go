// Package pipeline provides the stage abstraction and the types passed
// between the decode, composite and export stages.
package pipeline

import (
	"context"
)

// Stage turns one batch input into one batch output. Implementations check
// ctx between units of work and return ctx.Err() once it is done.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc lets a plain function stand in for a Stage, mostly in tests.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute calls f.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}
