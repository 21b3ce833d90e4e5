package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/lithammer/dedent"
	"github.com/marcoimmel/IteratorTools/internal"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewCommand builds the itertools command tree.
func NewCommand() *cobra.Command {
	var controller Controller
	root := &cobra.Command{
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Use:               "itertools",
		Short:             "Combine sequences lazily",
		Long: dedent.Dedent(`
		itertools combines sequences lazily: Cartesian products and longest zip.

		Sequences are given with repeated --sequence flags or a YAML file:

		    sequences:
		    - name: digits
		      values: [1, 2, 3]
		    - name: naturals
		      count: {start: 0, step: 1}

		Infinite sequences (count:START[:STEP]) require --limit.
		Environment variables prefixed by ITERTOOLS_ set flags defaults,
		e.g. ITERTOOLS_SEPARATOR. A .env file in working directory is loaded first.
		`),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
			controller, err = loadController(cmd.Flags())
			if err != nil {
				return
			}
			internal.SetLoggingHandler(controller.LogLevel, controller.Color)
			slog.Debug("Starting itertools.",
				"version", version(),
				"runtime", runtime.Version(),
				"commit", commit,
				"command", cmd.Name(),
			)
			return nil
		},
	}
	registerFlags(root.PersistentFlags())

	root.AddCommand(
		newProductCommand(&controller),
		newPairCommand(&controller),
		newZipCommand(&controller),
		newVersionCommand(),
	)
	return root
}

func Main() {
	defer logPanic()

	// Bootstrap logging first to log in setup.
	internal.SetLoggingHandler(slog.LevelInfo, isatty.IsTerminal(os.Stderr.Fd()))

	err := NewCommand().Execute()
	if err == nil {
		return
	}

	var code errorCode
	if errors.As(err, &code) {
		slog.Error("Usage error.", "err", err)
		code.Exit()
	}
	slog.Error("Fatal error.", "err", err)
	if internal.CurrentLevel > slog.LevelDebug {
		slog.Error("Run itertools with --verbose to get more informations.")
	}
	os.Exit(1)
}

func logPanic() {
	r := recover()
	if r == nil {
		return
	}
	slog.Error("Panic!", "err", r)
	buf := debug.Stack()
	fmt.Fprintf(os.Stderr, "%s", buf)
	slog.Error("Aborting itertools.", "err", r)
	os.Exit(1)
}
