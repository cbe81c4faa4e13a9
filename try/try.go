// Package try carries either a computed value or an error chain through a
// single return slot, for call boundaries that want one object instead of
// the two-value (T, error) form:
//
//	func SafeDiv(a, b int) try.Result[int] {
//		if b == 0 {
//			return try.Failure[int](zerr.New("div 0"))
//		}
//		return try.Value(a / b)
//	}
//
//	r := SafeDiv(10, 2)
//	if r.IsFailure() {
//		return zerr.Wrap(r.Error(), "compute ratio")
//	}
//	use(r.Value())
package try

import "github.com/zerr-io/zerr"

// Result holds a success value of type T or an error chain, never both.
// The zero Result is a degenerate success holding T's zero value. T is
// stored by value; a Result belongs to one logical call stack and is not
// safe for concurrent mutation.
type Result[T any] struct {
	val T
	err zerr.Error
}

// Value returns a Result in the success state holding v.
func Value[T any](v T) Result[T] {
	return Result[T]{val: v}
}

// Failure returns a Result in the failure state holding err. Passing nil is
// a caller bug: the Result then reports success with T's zero value, it
// does not fabricate a failure out of "no error".
func Failure[T any](err zerr.Error) Result[T] {
	return Result[T]{err: err}
}

// IsSuccess reports whether the Result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// IsFailure reports whether the Result holds an error.
func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// Value returns the held value. In the failure state it returns T's zero
// value; checking IsSuccess first is the caller's job.
func (r Result[T]) Value() T {
	return r.val
}

// Error returns the held chain, nil in the success state.
func (r Result[T]) Error() zerr.Error {
	return r.err
}

// Unpack returns the two-value view: exactly one of the results is
// populated.
func (r Result[T]) Unpack() (T, zerr.Error) {
	return r.val, r.err
}

// SetValue replaces the whole state with a success holding v; any held
// error is dropped.
func (r *Result[T]) SetValue(v T) {
	r.val = v
	r.err = nil
}

// SetError replaces the whole state with a failure holding err; the value
// slot is reset to T's zero value. As with Failure, a nil err leaves a
// degenerate success.
func (r *Result[T]) SetError(err zerr.Error) {
	var zero T
	r.val = zero
	r.err = err
}
