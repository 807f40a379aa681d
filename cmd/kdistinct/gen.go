package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/kdistinct/seqgen"
)

// genFlags holds the gen subcommand's flag values.
type genFlags struct {
	n        int
	k        int
	seed     int64
	min      int
	max      int
	alphabet int
}

// genCmd writes a random problem in the stdin format, for piping back
// into kdistinct or saving as a fixture.
func (a *app) genCmd() *cobra.Command {
	var g genFlags
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random problem in the input format",
		Long: `Writes N, k and N random integers to standard output.

Example:
  kdistinct gen --n 10 --k 2 --seed 7 --min -5 --max 5 | kdistinct`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.generate(cmd, g)
		},
	}

	f := cmd.Flags()
	f.IntVar(&g.n, "n", 10, "number of values")
	f.IntVar(&g.k, "k", 0, "distinct-value bound (random in [0, 5] when unset)")
	f.Int64Var(&g.seed, "seed", 0, "random seed (0 selects the default seed)")
	f.IntVar(&g.min, "min", -100, "smallest value")
	f.IntVar(&g.max, "max", 100, "largest value")
	f.IntVar(&g.alphabet, "alphabet", 0, "cap on distinct values (0 = no cap)")

	return cmd
}

func (a *app) generate(cmd *cobra.Command, g genFlags) error {
	if g.min > g.max || int64(g.max)-int64(g.min) >= math.MaxInt32 {
		return fmt.Errorf("gen: --min %d --max %d: need min <= max and a span below %d", g.min, g.max, math.MaxInt32)
	}
	if g.alphabet < 0 {
		return fmt.Errorf("gen: --alphabet %d must not be negative", g.alphabet)
	}

	opts := []seqgen.Option{seqgen.WithSeed(g.seed), seqgen.WithRange(g.min, g.max)}
	if g.alphabet > 0 {
		opts = append(opts, seqgen.WithAlphabet(g.alphabet))
	}
	if cmd.Flags().Changed("k") {
		opts = append(opts, seqgen.WithK(g.k))
	}

	p, err := seqgen.Generate(g.n, opts...)
	if err != nil {
		return err
	}
	a.logger.Debug("problem generated", zap.Int("n", p.N), zap.Int("k", p.K), zap.Int64("seed", g.seed))

	return p.Encode(a.out)
}
