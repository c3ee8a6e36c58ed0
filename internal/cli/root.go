package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/giannimassi/ctxline/internal/statusline"
)

var Version = "dev"

func NewRootCmd() *cobra.Command {
	var logFile string

	root := &cobra.Command{
		Use:   "ctxline",
		Short: "Context window status line for Claude Code",
		Long: "ctxline reads the session document Claude Code writes to stdin, totals token usage " +
			"from the session transcript, and prints a one-line colored summary of context window usage.",
		// The host may pass anything; the line is printed regardless.
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog := newLogger(logFile)
			defer closeLog()
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), logger)
		},
	}

	root.Flags().StringVar(&logFile, "log-file", "", "Append debug logs to this file")
	_ = root.Flags().MarkHidden("log-file")

	root.Version = Version
	root.SetVersionTemplate(fmt.Sprintf("ctxline %s\n", Version))

	return root
}

// Execute runs the root command. It never exits non-zero: if the command
// itself fails, the fallback line is printed instead.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Println(statusline.New(statusline.DefaultConfig()).FallbackLine())
	}
}

func run(in io.Reader, out io.Writer, logger zerolog.Logger) error {
	composer := statusline.New(statusline.DefaultConfig())
	composer.Logger = logger

	input, err := readInput(in)
	if err != nil {
		logger.Warn().Err(err).Msg("read stdin")
		input = nil
	}

	res := composer.Render(input)
	if !res.OK() {
		logger.Warn().Err(res.Err).Msg("rendered fallback line")
	}

	_, err = fmt.Fprintln(out, res.Line)
	return err
}

// readInput reads the whole session document. An interactive terminal on
// stdin means no host is piping one, so nothing is read.
func readInput(in io.Reader) ([]byte, error) {
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return nil, nil
	}
	return io.ReadAll(in)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
