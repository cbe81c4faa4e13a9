// Package zerr builds and inspects chained errors.
//
// An error is a chain of immutable nodes. Each node carries an optional
// numeric code (0 means none), an optional message ("" means none) and an
// optional cause, the next node toward the original failure. A nil Error is
// the "no error" state; success is never modeled as a node. Because nodes
// never change after construction, chains are safe to share across
// goroutines and to reuse as package-level values.
//
// Roots are built with the New family, and existing errors are extended
// with the Wrap family:
//
//	if len(args) != 1 {
//		return zerr.Newf("want 1 argument, got %d", len(args))
//	}
//	if err := parse(args[0]); err != nil {
//		return zerr.Wrapf(err, "parse argument %q", args[0])
//	}
//
// Wrap accepts any error: a plain Go error is adopted as a root node (see
// From) while its own wrapped errors stay reachable through errors.Is and
// errors.As. Wrapping nil produces a fresh root node.
//
// Callers recover specific failures by walking the chain from the most
// recent wrap toward the root; the first match wins:
//
//	if e, ok := zerr.As[*PortRangeError](err); ok {
//		retryOn(e.Context().Max)
//	}
//	if zerr.IsCode(CodeExhausted, err) {
//		backOff()
//	}
//
// For display, String renders the chain outermost-first with ":" between
// node segments, and Code reduces it to a single integer suitable as a
// process exit status:
//
//	fmt.Fprintln(os.Stderr, zerr.String(err))
//	os.Exit(zerr.Code(err, 1))
//
// Named error kinds are declared as struct types over Base (fixed message,
// optional fixed code) or Contextual (a payload interpolated into the
// message at construction and queryable afterward). Parameterless kinds are
// stateless and conventionally shared as a single package-level instance.
package zerr
