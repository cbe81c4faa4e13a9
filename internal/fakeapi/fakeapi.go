// Package fakeapi simulates a flaky backend for the classify demo. Calls
// fail with one typed error per outcome so callers can exercise chain
// classification.
package fakeapi

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/zerr-io/zerr"
)

// Codes returned by the simulated service.
const (
	CodeNegativeArgument = 1000001
	CodeAuditedRoll      = 1000002
)

// ZeroArgumentError reports a zero argument. It carries no state and is
// shared as ErrZeroArgument.
type ZeroArgumentError struct{ zerr.Base }

// ErrZeroArgument is the shared instance of ZeroArgumentError.
var ErrZeroArgument = &ZeroArgumentError{zerr.MakeBase(0, "argument is zero")}

// NegativeArgumentError reports a negative argument. It carries no state and
// is shared as ErrNegativeArgument.
type NegativeArgumentError struct{ zerr.Base }

// ErrNegativeArgument is the shared instance of NegativeArgumentError.
var ErrNegativeArgument = &NegativeArgumentError{
	zerr.MakeBase(CodeNegativeArgument, "argument is negative"),
}

// RollContext carries the two draws that beat the argument.
type RollContext struct {
	Roll1 int
	Roll2 int
}

// LowRollError reports an argument at or below the first draw.
type LowRollError struct {
	zerr.Contextual[RollContext]
}

// NewLowRollError returns a fresh node describing ctx.
func NewLowRollError(ctx RollContext) *LowRollError {
	return &LowRollError{zerr.MakeContextual(ctx, 0,
		"roll check failed, roll1: %d, roll2: %d", ctx.Roll1, ctx.Roll2)}
}

// AuditContext is RollContext plus the request id the failure was recorded
// under.
type AuditContext struct {
	RequestID uuid.UUID
	Roll1     int
	Roll2     int
}

// AuditedRollError reports an argument at or below the second draw. These
// failures are audited, so the context includes a request id.
type AuditedRollError struct {
	zerr.Contextual[AuditContext]
}

// NewAuditedRollError returns a fresh node describing ctx.
func NewAuditedRollError(ctx AuditContext) *AuditedRollError {
	return &AuditedRollError{zerr.MakeContextual(ctx, CodeAuditedRoll,
		"audited roll check failed, request: %s, roll1: %d, roll2: %d",
		ctx.RequestID, ctx.Roll1, ctx.Roll2)}
}

// API simulates a service that rejects bad arguments and sometimes loses a
// dice roll against good ones.
type API struct {
	rng *rand.Rand
}

// New returns an API whose roll sequence replays deterministically for a
// given seed. Request ids on audited failures stay random.
func New(seed int64) *API {
	return &API{rng: rand.New(rand.NewSource(seed))}
}

// Call validates n, then draws twice in [0,3]. It fails when n is at or
// below a draw and returns nil otherwise, so arguments above 3 always
// succeed.
func (a *API) Call(n int) zerr.Error {
	if n < 0 {
		return ErrNegativeArgument
	}
	if n == 0 {
		return ErrZeroArgument
	}
	r1 := a.rng.Intn(4)
	r2 := a.rng.Intn(4)
	if n <= r1 {
		return NewLowRollError(RollContext{Roll1: r1, Roll2: r2})
	}
	if n <= r2 {
		return NewAuditedRollError(AuditContext{
			RequestID: uuid.New(),
			Roll1:     r1,
			Roll2:     r2,
		})
	}
	return nil
}
