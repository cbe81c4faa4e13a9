package zerr

import "fmt"

// Base is the embeddable core of a named error variant. A variant is an
// ordinary struct type:
//
//	type QuotaError struct{ zerr.Base }
//
//	var ErrQuota = &QuotaError{zerr.MakeBase(0, "quota exhausted")}
//
// Parameterless variants like ErrQuota are stateless, so one shared
// instance serves every call site. Variants that record a cause are built
// fresh per call with WrapBase.
type Base struct {
	code  int
	msg   string
	cause Error
}

// MakeBase builds the node state for a root variant. Code 0 declares an
// uncoded variant.
func MakeBase(code int, msg string) Base {
	return Base{code: code, msg: msg}
}

// WrapBase builds the node state for a variant that records its cause.
func WrapBase(cause error, code int, msg string) Base {
	return Base{code: code, msg: msg, cause: From(cause)}
}

// Error renders the chain from this node down, as String does.
func (b Base) Error() string { return String(b) }

// Code returns the variant's fixed code, 0 when it has none.
func (b Base) Code() int { return b.code }

// Message returns the variant's message.
func (b Base) Message() string { return b.msg }

// Cause returns the recorded cause, nil for root variants.
func (b Base) Cause() Error { return b.cause }

// Unwrap exposes the cause to errors.Is and errors.As.
func (b Base) Unwrap() error {
	if b.cause == nil {
		return nil
	}
	return b.cause
}

// Contextual is Base plus a payload of caller-declared shape C. The payload
// is interpolated into the variant's message template once, at
// construction, and stays queryable through Context:
//
//	type PortContext struct{ Port, Max int }
//
//	type PortRangeError struct{ zerr.Contextual[PortContext] }
//
//	func NewPortRangeError(ctx PortContext) *PortRangeError {
//		return &PortRangeError{zerr.MakeContextual(ctx, 0,
//			"port %d outside range 1..%d", ctx.Port, ctx.Max)}
//	}
type Contextual[C any] struct {
	Base
	ctx C
}

// MakeContextual renders the message template eagerly and captures ctx.
func MakeContextual[C any](ctx C, code int, format string, args ...any) Contextual[C] {
	return Contextual[C]{Base: MakeBase(code, fmt.Sprintf(format, args...)), ctx: ctx}
}

// WrapContextual is MakeContextual for a variant that records its cause.
func WrapContextual[C any](cause error, ctx C, code int, format string, args ...any) Contextual[C] {
	return Contextual[C]{Base: WrapBase(cause, code, fmt.Sprintf(format, args...)), ctx: ctx}
}

// Context returns the payload captured at construction, unchanged.
func (c Contextual[C]) Context() C { return c.ctx }

var (
	_ Error = Base{}
	_ Error = Contextual[struct{}]{}
)
