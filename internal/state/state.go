package state

import (
	"context"
	"fmt"

	"github.com/base-org/forcer/internal/core"
)

// Store ... Interface for the store of force inclusion attempts. Attempts are kept for
// operators only; every invocation re-derives its inputs from L1
type Store interface {
	Put(context.Context, *core.Attempt) error
	Get(context.Context, core.InvocationID) (*core.Attempt, error)
	List(ctx context.Context, limit int) ([]*core.Attempt, error)
}

// FromContext ... Fetches a state store from context
func FromContext(ctx context.Context) (Store, error) {
	if store, ok := ctx.Value(core.State).(Store); ok {
		return store, nil
	}

	return nil, fmt.Errorf("could not load state object from context")
}
