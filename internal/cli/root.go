// internal/cli/root.go
package cli

import (
	"github.com/spf13/cobra"

	"efdkeys/internal/version"
)

// RunFunc receives the validated options. The command's context, output and
// error streams come from the *cobra.Command.
type RunFunc func(cmd *cobra.Command, opt Options) error

// New builds the root command. Parsing and validation stay here; everything
// after that happens in run.
func New(run RunFunc) *cobra.Command {
	var opt Options

	cmd := &cobra.Command{
		Use:   "efdkeys",
		Short: "Extract unique 44-digit fiscal document keys from SPED EFD exports",
		Long: `efdkeys recursively searches a directory for EFD Contribuições exports
(PISCOFINS*.txt), scans them in parallel for 44-digit fiscal document keys
and writes the deduplicated, sorted list to a flat text file.

Lines are decoded as UTF-8 with a per-line Windows-1252 fallback; each
file's "9999" end-of-data record stops its scan.`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opt.Validate(); err != nil {
				return err
			}
			// Flags are sound past this point; failures are runtime errors
			// and should not render usage.
			cmd.SilenceUsage = true
			return run(cmd, opt)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&opt.Path, "path", "p", ".", "directory searched recursively for EFD txt files")
	fl.IntVarP(&opt.MinDepth, "min-depth", "d", 0, "minimum traversal depth")
	fl.IntVarP(&opt.MaxDepth, "max-depth", "D", 0, "maximum traversal depth (0 = unbounded)")
	fl.StringVarP(&opt.Output, "output", "o", DefaultOutput, "output file for the sorted key list")
	fl.IntVarP(&opt.Threads, "threads", "t", 0, "number of worker threads (0 = all CPUs)")
	fl.BoolVarP(&opt.Verbose, "verbose", "v", false, "print the extracted keys and debug logs")
	fl.BoolVar(&opt.Time, "time", false, "report total execution time on stderr")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	return cmd
}
