package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zerr-io/zerr"
)

var argcheckCmd = &cobra.Command{
	Use:   "argcheck <number>",
	Short: "Validate a single integer argument",
	Long: `argcheck accepts exactly one integer argument. Anything else is
rejected with a chained error whose rendering shows each validation layer.

Example:
  zerrdemo argcheck 12
  zerrdemo argcheck twelve`,
	Args: cobra.ArbitraryArgs,
	RunE: runArgcheck,
}

func runArgcheck(cmd *cobra.Command, args []string) error {
	if err := checkArguments(args); err != nil {
		return err
	}
	logger.Info("argument accepted", zap.String("arg", args[0]))
	return nil
}

// checkArguments accepts exactly one integer argument. Failures from the
// value check come back wrapped with the offending argument.
func checkArguments(args []string) zerr.Error {
	if len(args) != 1 {
		return zerr.Newf("want 1 argument, got %d", len(args))
	}
	if err := checkValue(args[0]); err != nil {
		return zerr.Wrapf(err, "validate argument %q", args[0])
	}
	return nil
}

func checkValue(arg string) zerr.Error {
	if _, err := strconv.Atoi(arg); err != nil {
		return zerr.Wrap(err, "conversion failed")
	}
	return nil
}
