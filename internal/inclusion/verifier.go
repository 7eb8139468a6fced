package inclusion

import (
	"context"
	"fmt"

	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/inbox"
)

// Verifier ... Confirms that a force inclusion advanced the sequencer inbox read counter
type Verifier struct {
	reader inbox.Reader
}

// NewVerifier ... Initializer
func NewVerifier(reader inbox.Reader) *Verifier {
	return &Verifier{reader: reader}
}

// Verify ... Returns true once the read counter reached expected. A lower counter after a
// confirmed transaction is reported as ErrInclusionNotObserved
func (v *Verifier) Verify(ctx context.Context, expected uint64) (bool, error) {
	read, err := v.reader.ReadCounter(ctx)
	if err != nil {
		return false, err
	}

	return check(read, expected)
}

// VerifyAt ... Verify against the state after block rather than latest
func (v *Verifier) VerifyAt(ctx context.Context, expected, block uint64) (bool, error) {
	read, err := v.reader.ReadCounterAt(ctx, block)
	if err != nil {
		return false, err
	}

	return check(read, expected)
}

func check(read, expected uint64) (bool, error) {
	if read >= expected {
		return true, nil
	}

	return false, fmt.Errorf("%w: read counter at %d, expected at least %d",
		core.ErrInclusionNotObserved, read, expected)
}
