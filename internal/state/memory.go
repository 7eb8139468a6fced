package state

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/base-org/forcer/internal/core"
)

const (
	DefaultCapacity = 256
)

// ErrNotFound ... No attempt is stored under the requested id
var ErrNotFound = errors.New("attempt not found")

// stateStore ... In memory attempt store holding the most recent attempts
type stateStore struct {
	capacity int
	attempts map[core.InvocationID]*core.Attempt
	// order holds ids oldest first
	order []core.InvocationID

	sync.RWMutex
}

// NewMemState ... Initializer
func NewMemState(capacity int) Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &stateStore{
		capacity: capacity,
		attempts: make(map[core.InvocationID]*core.Attempt, capacity),
		order:    make([]core.InvocationID, 0, capacity),
		RWMutex:  sync.RWMutex{},
	}
}

// Put ... Inserts or replaces an attempt, evicting the oldest once full
func (ss *stateStore) Put(_ context.Context, attempt *core.Attempt) error {
	if attempt == nil || attempt.ID.IsNil() {
		return fmt.Errorf("attempt must carry an invocation id")
	}

	ss.Lock()
	defer ss.Unlock()

	if _, exists := ss.attempts[attempt.ID]; !exists {
		if len(ss.order) == ss.capacity {
			delete(ss.attempts, ss.order[0])
			ss.order = ss.order[1:]
		}
		ss.order = append(ss.order, attempt.ID)
	}

	ss.attempts[attempt.ID] = attempt
	return nil
}

// Get ... Fetches an attempt by invocation id
func (ss *stateStore) Get(_ context.Context, id core.InvocationID) (*core.Attempt, error) {
	ss.RLock()
	defer ss.RUnlock()

	attempt, exists := ss.attempts[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return attempt, nil
}

// List ... Returns up to limit attempts, newest first; limit <= 0 returns all
func (ss *stateStore) List(_ context.Context, limit int) ([]*core.Attempt, error) {
	ss.RLock()
	defer ss.RUnlock()

	if limit <= 0 || limit > len(ss.order) {
		limit = len(ss.order)
	}

	attempts := make([]*core.Attempt, 0, limit)
	for i := len(ss.order) - 1; i >= 0 && len(attempts) < limit; i-- {
		attempts = append(attempts, ss.attempts[ss.order[i]])
	}

	return attempts, nil
}
