package core

import (
	"time"
)

// Invocation outcomes that are not error classes
const (
	OutcomeForced  = "forced"
	OutcomeNothing = "nothing_to_force"
	OutcomeDryRun  = "dry_run"
)

// Attempt ... Record of a single force inclusion invocation
type Attempt struct {
	ID         InvocationID `json:"id"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`

	// Outcome is one of the Outcome constants or an ErrorClass label
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`

	Report *EligibilityReport `json:"report,omitempty"`
	Tx     *ForceInclusionTx  `json:"tx,omitempty"`
}

// Outcome ... Labels the result of an invocation
func Outcome(tx *ForceInclusionTx, err error) string {
	switch {
	case err != nil:
		return ErrorClass(err)
	case tx == nil:
		return OutcomeNothing
	case tx.Status == TxConstructed:
		return OutcomeDryRun
	}

	return OutcomeForced
}
