package zerr

// Renderings produced by String for the two degenerate inputs: a nil error
// and a node carrying neither code nor message.
const (
	nilRender   = "<NIL>"
	emptyRender = "<EMPTY>"
)

// DefaultCode is the conventional fallback passed to Code by callers that
// need a non-zero status for a chain carrying no code of its own.
const DefaultCode = -1

// Error is one node of an error chain: an optional numeric code, an
// optional message, and an optional link to the error that caused this one.
// A nil Error means "no error"; there is no sentinel node for success.
//
// Nodes are immutable once constructed, so a chain may be shared freely
// across goroutines and holders. Types outside this package join the
// taxonomy by embedding Base or Contextual.
type Error interface {
	error

	// Code returns the node's numeric code. Zero means the node carries no
	// code; zero is reserved and never a real application code.
	Code() int

	// Message returns the node's own message, without its causes.
	Message() string

	// Cause returns the next node down the chain, or nil for a root node.
	Cause() Error

	// Unwrap exposes the chain to errors.Is and errors.As.
	Unwrap() error
}

// chainErr is the node built by Make, the New family and the Wrap family.
type chainErr struct {
	code  int
	msg   string
	cause Error
}

func (e *chainErr) Error() string {
	if e == nil {
		return nilRender
	}
	return String(e)
}

func (e *chainErr) Code() int {
	if e == nil {
		return 0
	}
	return e.code
}

func (e *chainErr) Message() string {
	if e == nil {
		return ""
	}
	return e.msg
}

func (e *chainErr) Cause() Error {
	if e == nil {
		return nil
	}
	return e.cause
}

func (e *chainErr) Unwrap() error {
	if e == nil || e.cause == nil {
		return nil
	}
	return e.cause
}

// adoptedErr lifts a foreign error into the chain as a root node. Unwrap
// still returns the original error, so stdlib inspection keeps seeing
// whatever that error wraps.
type adoptedErr struct {
	err error
}

func (e *adoptedErr) Error() string {
	if e == nil {
		return nilRender
	}
	return String(e)
}

func (e *adoptedErr) Code() int { return 0 }

func (e *adoptedErr) Message() string {
	if e == nil || e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *adoptedErr) Cause() Error { return nil }

func (e *adoptedErr) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Make builds a node from explicit parts: a code (0 for none), a message
// ("" for none) and a cause (nil for a root node). It is the general
// constructor that the New and Wrap families specialize, and it never
// fails.
func Make(code int, msg string, cause error) Error {
	return &chainErr{code: code, msg: msg, cause: From(cause)}
}

// From lifts an arbitrary error into the chain model. A nil error stays
// nil, a chain node is returned unchanged, and any other error is adopted
// as an uncoded root node whose message is err.Error().
func From(err error) Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		return e
	}
	return &adoptedErr{err: err}
}

var (
	_ Error = (*chainErr)(nil)
	_ Error = (*adoptedErr)(nil)
)
