package zerr

import (
	"strconv"
	"strings"
)

// As returns the first node in err's chain whose concrete type is V,
// walking from err toward the root. It returns the zero V and false when
// the chain holds no V, including when err is nil.
func As[V Error](err Error) (V, bool) {
	for n := err; n != nil; n = n.Cause() {
		if v, ok := n.(V); ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// Is reports whether err's chain holds a node of concrete type V.
func Is[V Error](err Error) bool {
	_, ok := As[V](err)
	return ok
}

// AsCode returns the first node in err's chain whose code equals code.
// Zero never matches: it marks nodes that carry no code at all.
func AsCode(code int, err Error) Error {
	if code == 0 {
		return nil
	}
	var match Error
	Walk(err, func(n Error) bool {
		if n.Code() == code {
			match = n
			return false
		}
		return true
	})
	return match
}

// IsCode reports whether some node in err's chain carries code.
func IsCode(code int, err Error) bool {
	return AsCode(code, err) != nil
}

// Code resolves a chain to a single integer: 0 when err is nil (no error
// occurred), otherwise the first non-zero code walking toward the root, or
// defaultCode when the whole chain is uncoded. Callers that want the
// conventional fallback pass DefaultCode.
func Code(err Error, defaultCode int) int {
	if err == nil {
		return 0
	}
	code := defaultCode
	Walk(err, func(n Error) bool {
		if c := n.Code(); c != 0 {
			code = c
			return false
		}
		return true
	})
	return code
}

// String renders the chain from err toward the root, one segment per node,
// joined by ":". A node renders as "<code>:<message>", "<code>" or
// "<message>" depending on what it carries, and as "<EMPTY>" when it
// carries neither. A nil err renders as "<NIL>".
func String(err Error) string {
	if err == nil {
		return nilRender
	}
	var b strings.Builder
	Walk(err, func(n Error) bool {
		if b.Len() > 0 {
			b.WriteByte(':')
		}
		writeSegment(&b, n)
		return true
	})
	return b.String()
}

func writeSegment(b *strings.Builder, n Error) {
	code, msg := n.Code(), n.Message()
	switch {
	case code != 0 && msg != "":
		b.WriteString(strconv.Itoa(code))
		b.WriteByte(':')
		b.WriteString(msg)
	case code != 0:
		b.WriteString(strconv.Itoa(code))
	case msg != "":
		b.WriteString(msg)
	default:
		b.WriteString(emptyRender)
	}
}

// Walk visits the chain from err toward the root, stopping early when fn
// returns false. A nil err visits nothing.
func Walk(err Error, fn func(Error) bool) {
	for n := err; n != nil; n = n.Cause() {
		if !fn(n) {
			return
		}
	}
}

// Root returns the terminal node of err's chain, nil when err is nil.
func Root(err Error) Error {
	var root Error
	Walk(err, func(n Error) bool {
		root = n
		return true
	})
	return root
}
