package cli

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zerr-io/zerr"
	"github.com/zerr-io/zerr/internal/fakeapi"
)

var (
	classifyFrom int
	classifyTo   int
	classifySeed int64
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Call a flaky fake service and classify its failures",
	Long: `classify calls the fake service once per argument in [from, to)
and routes each outcome by error shape: typed match, code match or the
rendered chain.

Example:
  zerrdemo classify
  zerrdemo classify --from -1 --to 5 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().IntVar(&classifyFrom, "from", -1, "First argument to call with")
	classifyCmd.Flags().IntVar(&classifyTo, "to", 5, "Stop before this argument")
	classifyCmd.Flags().Int64Var(&classifySeed, "seed", 0, "Roll seed, 0 seeds from the clock")
}

func runClassify(cmd *cobra.Command, args []string) error {
	from, to, seed := cfg.Classify.From, cfg.Classify.To, cfg.Classify.Seed
	if cmd.Flags().Changed("from") {
		from = classifyFrom
	}
	if cmd.Flags().Changed("to") {
		to = classifyTo
	}
	if cmd.Flags().Changed("seed") {
		seed = classifySeed
	}
	if to < from {
		return zerr.Newf("range end %d before start %d", to, from)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log := logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.Int64("seed", seed),
	)

	api := fakeapi.New(seed)
	for n := from; n < to; n++ {
		classifyOutcome(log, n, api.Call(n))
	}
	return nil
}

// classifyOutcome routes one call result: known shapes get their own log
// line, everything else falls through to the rendered chain.
func classifyOutcome(log *zap.Logger, n int, err zerr.Error) {
	if err == nil {
		log.Info("call succeeded", zap.Int("arg", n))
		return
	}
	if low, ok := zerr.As[*fakeapi.LowRollError](err); ok {
		ctx := low.Context()
		log.Warn("lost the roll",
			zap.Int("arg", n),
			zap.Int("roll1", ctx.Roll1),
			zap.Int("roll2", ctx.Roll2))
		return
	}
	if zerr.Is[*fakeapi.ZeroArgumentError](err) {
		log.Info("ignoring zero argument", zap.Int("arg", n))
		return
	}
	if audited, ok := zerr.As[*fakeapi.AuditedRollError](err); ok {
		ctx := audited.Context()
		log.Warn("lost the audited roll",
			zap.Int("arg", n),
			zap.String("request_id", ctx.RequestID.String()),
			zap.Int("roll1", ctx.Roll1),
			zap.Int("roll2", ctx.Roll2))
		return
	}
	log.Error("call failed",
		zap.Int("arg", n),
		zap.Int("code", zerr.Code(err, zerr.DefaultCode)),
		zap.String("chain", zerr.String(err)))
}
