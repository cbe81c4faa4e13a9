package zerr

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter.
//
//	%s, %v   the rendered chain, as Error()
//	%q       the rendered chain, double-quoted
//	%+v      one line per node with its index, code and quoted message
func (e *chainErr) Format(s fmt.State, verb rune) { formatNode(s, verb, e) }

func (e *adoptedErr) Format(s fmt.State, verb rune) { formatNode(s, verb, e) }

// Format implements fmt.Formatter; variants embedding Base inherit it.
func (b Base) Format(s fmt.State, verb rune) { formatNode(s, verb, b) }

func formatNode(s fmt.State, verb rune, err Error) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, err)
			return
		}
		_, _ = io.WriteString(s, String(err))
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", String(err))
	default:
		_, _ = io.WriteString(s, String(err))
	}
}

func formatVerbose(w io.Writer, err Error) {
	i := 0
	Walk(err, func(n Error) bool {
		if i > 0 {
			_, _ = io.WriteString(w, "\n")
		}
		_, _ = fmt.Fprintf(w, "#%d code=%d msg=%q", i, n.Code(), n.Message())
		i++
		return true
	})
}
