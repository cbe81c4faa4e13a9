package zerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Variants used across the package tests, one per canonical shape.

type timeoutErr struct{ Base }

var errTimeout = &timeoutErr{MakeBase(0, "operation timed out")}

const codeQuota = 2001

type quotaErr struct{ Base }

var errQuota = &quotaErr{MakeBase(codeQuota, "quota exhausted")}

type parseCtx struct {
	Line, Col int
}

type parseErr struct{ Contextual[parseCtx] }

func newParseErr(ctx parseCtx) *parseErr {
	return &parseErr{MakeContextual(ctx, 0, "parse failed at %d:%d", ctx.Line, ctx.Col)}
}

const codeLimit = 4002

type limitCtx struct {
	Limit, Got int
}

type limitErr struct{ Contextual[limitCtx] }

func newLimitErr(cause error, ctx limitCtx) *limitErr {
	return &limitErr{WrapContextual(cause, ctx, codeLimit, "limit %d exceeded by %d", ctx.Limit, ctx.Got)}
}

func TestBaseVariants(t *testing.T) {
	t.Run("plain variant", func(t *testing.T) {
		assert.Equal(t, 0, errTimeout.Code())
		assert.Equal(t, "operation timed out", errTimeout.Message())
		assert.Nil(t, errTimeout.Cause())
		assert.Equal(t, "operation timed out", errTimeout.Error())
	})

	t.Run("coded variant", func(t *testing.T) {
		assert.Equal(t, codeQuota, errQuota.Code())
		assert.Equal(t, "quota exhausted", errQuota.Message())
		assert.Equal(t, "2001:quota exhausted", errQuota.Error())
	})

	t.Run("cause-carrying variant", func(t *testing.T) {
		e := &timeoutErr{WrapBase(errQuota, 0, "retry budget spent")}
		require.NotNil(t, e.Cause())
		assert.Same(t, errQuota, e.Cause())
		assert.Equal(t, "retry budget spent:2001:quota exhausted", String(e))
	})
}

func TestSingletonSharing(t *testing.T) {
	c1 := Wrap(errTimeout, "load profile")
	c2 := Wrap(errTimeout, "store profile")

	f1, ok1 := As[*timeoutErr](c1)
	f2, ok2 := As[*timeoutErr](c2)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Same(t, f1, f2)
	assert.Same(t, errTimeout, f1)
}

func TestContextualVariants(t *testing.T) {
	t.Run("context round-trip", func(t *testing.T) {
		e := newLimitErr(nil, limitCtx{Limit: 10, Got: 12})
		assert.Equal(t, limitCtx{Limit: 10, Got: 12}, e.Context())
		assert.Equal(t, codeLimit, e.Code())
		assert.Equal(t, "limit 10 exceeded by 12", e.Message())
	})

	t.Run("distinct nodes per construction", func(t *testing.T) {
		p1 := newParseErr(parseCtx{Line: 1, Col: 2})
		p2 := newParseErr(parseCtx{Line: 3, Col: 4})

		assert.NotSame(t, p1, p2)
		assert.Equal(t, parseCtx{Line: 1, Col: 2}, p1.Context())
		assert.Equal(t, parseCtx{Line: 3, Col: 4}, p2.Context())
		assert.Equal(t, "parse failed at 1:2", p1.Message())
		assert.Equal(t, "parse failed at 3:4", p2.Message())
	})

	t.Run("interpolation is eager", func(t *testing.T) {
		ctx := parseCtx{Line: 5, Col: 6}
		e := newParseErr(ctx)
		ctx.Col = 99

		assert.Equal(t, "parse failed at 5:6", e.Message())
		assert.Equal(t, 6, e.Context().Col)
	})

	t.Run("coded contextual with cause", func(t *testing.T) {
		e := newLimitErr(errQuota, limitCtx{Limit: 1, Got: 2})

		assert.Equal(t, "4002:limit 1 exceeded by 2:2001:quota exhausted", String(e))
		assert.Same(t, errQuota, e.Cause())
		assert.Equal(t, codeLimit, Code(e, DefaultCode))
	})
}

func TestVariantStdlibInterop(t *testing.T) {
	chain := Wrap(newLimitErr(errQuota, limitCtx{Limit: 3, Got: 9}), "ingest batch")

	var q *quotaErr
	require.True(t, errors.As(chain, &q))
	assert.Same(t, errQuota, q)

	assert.True(t, errors.Is(chain, errQuota))
}
