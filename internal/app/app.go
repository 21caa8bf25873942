// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"efdkeys/internal/cli"
	"efdkeys/internal/keymatch"
	"efdkeys/internal/pipeline"
	"efdkeys/internal/walk"
	"efdkeys/internal/writers"
)

// Exit codes: 0 success, 1 runtime failure, 2 usage error.
const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
)

// RunContext wires the whole program: parse flags, walk the directory,
// extract concurrently, write the sorted key list. Returns the process
// exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := cli.New(func(c *cobra.Command, opt cli.Options) error {
		return execute(c.Context(), opt, c.OutOrStdout(), c.ErrOrStderr())
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "efdkeys: %v\n", err)
		var usage *cli.UsageError
		if errors.As(err, &usage) {
			return exitUsage
		}
		return exitRuntime
	}
	return exitOK
}

// Run uses a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func execute(ctx context.Context, opt cli.Options, stdout, stderr io.Writer) error {
	start := time.Now()
	log := newLogger(stderr, opt.Verbose)
	defer func() { _ = log.Sync() }()

	files, err := walk.Files(opt.Path, walk.Options{MinDepth: opt.MinDepth, MaxDepth: opt.MaxDepth})
	if err != nil {
		return fmt.Errorf("listing files under %s: %w", opt.Path, err)
	}
	log.Debug("EFD files selected", zap.Int("count", len(files)), zap.String("root", opt.Path))

	matcher := keymatch.New()
	keys, err := pipeline.ExtractAll(ctx, pipeline.Config{Threads: opt.Threads, Log: log}, files, matcher)
	if err != nil {
		return err
	}

	sorted := keys.Sorted()
	if err := writers.WriteKeyFile(opt.Output, sorted); err != nil {
		return err
	}

	if opt.Verbose {
		if err := writers.WriteKeys(stdout, sorted); err != nil && !writers.IsBrokenPipe(err) {
			return err
		}
	}
	if _, err := fmt.Fprintf(stdout, "%d chaves -> %s\n", len(sorted), opt.Output); err != nil && !writers.IsBrokenPipe(err) {
		return err
	}

	if opt.Time {
		fmt.Fprintf(stderr, "total execution time: %s\n", time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// newLogger keeps the CLI quiet by default; --verbose opens Debug and below.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
