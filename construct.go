package zerr

import "fmt"

// New returns a root node carrying msg verbatim.
func New(msg string) Error {
	return Make(0, msg, nil)
}

// Newf returns a root node whose message is rendered from format at call
// time. Formatting is eager; the arguments are not retained.
func Newf(format string, args ...any) Error {
	return Make(0, fmt.Sprintf(format, args...), nil)
}

// NewCode returns a root node carrying a code and a message.
func NewCode(code int, msg string) Error {
	return Make(code, msg, nil)
}

// NewCodef is Newf with a code attached.
func NewCodef(code int, format string, args ...any) Error {
	return Make(code, fmt.Sprintf(format, args...), nil)
}

// Wrap returns a node carrying msg whose cause is err, extending the chain
// by one. Wrapping a nil error yields a new root node: there is no "error
// about no error". A cause that is not already a chain node is adopted as
// with From.
func Wrap(err error, msg string) Error {
	return Make(0, msg, err)
}

// Wrapf is Wrap with eager formatting.
func Wrapf(err error, format string, args ...any) Error {
	return Make(0, fmt.Sprintf(format, args...), err)
}

// WrapCode returns a node carrying only a code on top of err.
func WrapCode(err error, code int) Error {
	return Make(code, "", err)
}

// WrapCodeMsg returns a node carrying a code and a message on top of err.
func WrapCodeMsg(err error, code int, msg string) Error {
	return Make(code, msg, err)
}

// WrapCodef is WrapCodeMsg with eager formatting.
func WrapCodef(err error, code int, format string, args ...any) Error {
	return Make(code, fmt.Sprintf(format, args...), err)
}
