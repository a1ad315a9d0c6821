package utils

import (
	"context"

	"github.com/teivah/onecontext"
)

// CombinedContexts merges the given contexts into a single context that is
// done as soon as any one of them is done. The returned cancel releases the
// merge and must be called once the combined context is no longer needed.
func CombinedContexts(ctxs ...context.Context) (context.Context, context.CancelFunc) {
	switch len(ctxs) {
	case 0:
		return context.WithCancel(context.Background())
	case 1:
		return context.WithCancel(ctxs[0])
	default:
		return onecontext.Merge(ctxs[0], ctxs[1:]...)
	}
}
