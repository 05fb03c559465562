// Command monadplay verifies the monad laws for the sequence triple
// (List, Unit, Prod) and exercises the algebra on arithmetic identities.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Pure-Company/seqmonad"
)

var (
	count   int64
	verbose bool
	strict  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "monadplay",
	Short: "Verify the sequence monad laws, then play with the algebra",
	Long: `monadplay generates the integer sequence 0..count-1, folds the three
monad laws (left identity, right identity, associativity) over every element,
and only if all of them hold proceeds to check aggregate arithmetic identities
(sum of doubles, sum of squares, sum of squares vs. square of sums) built
entirely from Unit, Prod, Fmap and Foldl.

Failures are reported as text; the exit status stays zero unless --strict is
set. The arithmetic runs in int64 on purpose: crank --count high enough and
you will overflow it, which the last check reports rather than prevents.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().Int64VarP(&count, "count", "n", 100, "length of the generated integer sequence")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "exit nonzero when any check fails")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable per-law debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ls := seqmonad.Iota(count)

	if logger.Core().Enabled(zapcore.DebugLevel) {
		left := seqmonad.Foldl(func(ok bool, x int64) bool {
			return ok && seqmonad.LeftIdentity(seqmonad.Square, x)
		}, ls, true)
		right := seqmonad.Foldl(func(ok bool, x int64) bool {
			return ok && seqmonad.RightIdentity(x)
		}, ls, true)
		assoc := seqmonad.Foldl(func(ok bool, x int64) bool {
			return ok && seqmonad.Associativity(seqmonad.Square, seqmonad.Double, x)
		}, ls, true)
		logger.Debug("individual laws",
			zap.Int64("count", count),
			zap.Bool("left_identity", left),
			zap.Bool("right_identity", right),
			zap.Bool("associativity", assoc))
	}

	lawsOK := seqmonad.Laws(seqmonad.Square, seqmonad.Double, ls)
	if lawsOK {
		fmt.Fprintf(out, "\nleft identity, right identity, associativity laws valid.\n")
		fmt.Fprintf(out, "... so, it is a monad after all!\n")
		fmt.Fprintf(out, "... so, we can now start playing and pay the consequences!\n")
	}

	doubles := seqmonad.DoublesIdentity(ls)
	logger.Debug("sum of doubles identity", zap.Bool("holds", doubles))
	fmt.Fprintf(out, "Sum of doubles of integer sequence 0,1,2,3,...,%d test: %s\n",
		count-1, boolWord(doubles))

	squares := seqmonad.SquaresIdentity(ls)
	logger.Debug("sum of squares identity", zap.Bool("holds", squares))
	fmt.Fprintf(out, "Sum of squares of integer sequence 0,1,2,3,...,%d test: %s\n",
		count-1, boolWord(squares))

	pairwise := seqmonad.PairwiseIdentity(ls)
	logger.Debug("pairwise difference identity", zap.Bool("holds", pairwise))
	verdict := "true"
	if !pairwise {
		verdict = "false (you overflowed it!)"
	}
	fmt.Fprintf(out, "Sum of squares vs square of sums (provided no overflow): %s\n\n", verdict)

	if strict && !(lawsOK && doubles && squares && pairwise) {
		return errors.New("one or more checks failed")
	}
	return nil
}

func boolWord(ok bool) string {
	if ok {
		return "true"
	}
	return "false"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
