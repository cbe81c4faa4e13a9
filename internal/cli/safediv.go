package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zerr-io/zerr"
	"github.com/zerr-io/zerr/try"
)

var safedivCmd = &cobra.Command{
	Use:   "safediv <dividend> <divisor>",
	Short: "Divide two integers through a fallible result",
	Long: `safediv runs the division through a result value that holds either
the quotient or an error, never both.

Example:
  zerrdemo safediv 10 5
  zerrdemo safediv 10 0`,
	Args: cobra.ExactArgs(2),
	RunE: runSafediv,
}

func runSafediv(cmd *cobra.Command, args []string) error {
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return zerr.Wrapf(err, "parse dividend %q", args[0])
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return zerr.Wrapf(err, "parse divisor %q", args[1])
	}

	r := safeDiv(a, b)
	if r.IsFailure() {
		return zerr.Wrapf(r.Error(), "divide %d by %d", a, b)
	}
	logger.Info("division ok",
		zap.Int("dividend", a),
		zap.Int("divisor", b),
		zap.Int("quotient", r.Value()))
	return nil
}

// safeDiv returns a/b, or a failure for a zero divisor.
func safeDiv(a, b int) try.Result[int] {
	if b == 0 {
		return try.Failure[int](zerr.New("div 0"))
	}
	return try.Value(a / b)
}
