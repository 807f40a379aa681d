// Command kdistinct reads a problem from stdin and prints the maximum sum
// of a contiguous subarray holding at most k distinct values.
//
//	$ printf '4\n2\n1\n2\n1\n3\n' | kdistinct
//	4
//
// Exit status: 0 on success, 1 on malformed input, 2 on a value outside the
// configured counter range, a window sum outside int64, or an invalid
// configuration.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/kdistinct/config"
	"github.com/katalvlaran/kdistinct/input"
	"github.com/katalvlaran/kdistinct/window"
)

const (
	exitOK     = 0
	exitInput  = 1
	exitConfig = 2
)

// app carries the streams, logger and flag values shared by all commands.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	level  zap.AtomicLevel
	logger *zap.Logger
	cfg    *config.Config

	// Global flags
	configPath string
	verbose    bool

	// Root flags
	counter    string
	truncate32 bool
	explain    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and maps the outcome to an exit status.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	a := newApp(in, out, errOut)
	defer func() { _ = a.logger.Sync() }()

	root := a.rootCmd()
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()
	if err == nil {
		return exitOK
	}
	kind, code := classify(err)
	a.logger.Error("kdistinct failed", zap.String("kind", kind), zap.Error(err))

	return code
}

// newApp builds a console logger on errOut. The level starts at warn and
// is raised or lowered once configuration and flags are known.
func newApp(in io.Reader, out, errOut io.Writer) *app {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(errOut), level)

	return &app{
		in:     in,
		out:    out,
		errOut: errOut,
		level:  level,
		logger: zap.New(core),
		cfg:    config.Default(),
	}
}

// classify names the error kind reported to the user and picks the exit code.
func classify(err error) (string, int) {
	switch {
	case errors.Is(err, input.ErrInputParse):
		return "InputParseError", exitInput
	case errors.Is(err, window.ErrValueRange), errors.Is(err, window.ErrSumOverflow):
		return "ValueRangeError", exitConfig
	case errors.Is(err, config.ErrInvalid), errors.Is(err, window.ErrBadOptions):
		return "ConfigError", exitConfig
	default:
		return "Error", exitInput
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kdistinct",
		Short: "Maximum subarray sum with at most k distinct values",
		Long: `Reads N, k and N integers (one per line) from standard input and prints
the largest sum of a contiguous run of the integers that contains at most
k distinct values. The empty run counts, so the answer is never negative.`,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.solve,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	f := root.Flags()
	f.StringVar(&a.counter, "counter", "", "frequency counter: map or table (overrides config)")
	f.BoolVar(&a.truncate32, "truncate32", false, "truncate the result to a 32-bit signed integer")
	f.BoolVar(&a.explain, "explain", false, "log the winning window's bounds")

	root.AddCommand(a.genCmd())

	return root
}

// setup loads configuration, applies flag overrides, validates the result
// once and sets the log level.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}
	if cmd.Flags().Changed("counter") {
		cfg.Counter = a.counter
	}
	if cmd.Flags().Changed("truncate32") {
		cfg.Truncate32 = a.truncate32
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.explain && lvl > zapcore.InfoLevel {
		lvl = zapcore.InfoLevel
	}
	if a.verbose {
		lvl = zapcore.DebugLevel
	}
	a.level.SetLevel(lvl)
	a.cfg = cfg

	a.logger.Debug("configuration resolved",
		zap.String("config", a.configPath),
		zap.String("counter", cfg.Counter),
		zap.Int("min_value", cfg.MinValue),
		zap.Int("max_value", cfg.MaxValue),
		zap.Bool("truncate32", cfg.Truncate32),
	)

	return nil
}

// solve is the root command: parse stdin, scan, print one line.
func (a *app) solve(_ *cobra.Command, _ []string) error {
	p, err := input.Read(a.in)
	if err != nil {
		return err
	}
	a.logger.Debug("problem parsed", zap.Int("n", p.N), zap.Int("k", p.K))

	opts, err := a.cfg.WindowOptions()
	if err != nil {
		return err
	}
	span, err := window.BestWindow(p.Values, p.K, opts)
	if err != nil {
		return err
	}
	if a.explain {
		a.logger.Info("best window",
			zap.Int("left", span.Left),
			zap.Int("right", span.Right),
			zap.Int("length", span.Len()),
			zap.Int("distinct", span.Distinct),
			zap.Int64("sum", span.Sum),
		)
	}

	_, err = fmt.Fprintln(a.out, span.Value(opts))

	return err
}
