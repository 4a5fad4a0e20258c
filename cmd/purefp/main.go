package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Pure-Company/purefp/internal/config"
	"github.com/Pure-Company/purefp/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags and config are resolved.
type app struct {
	configPath string
	logLevel   string
	noColor    bool

	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "purefp",
		Short: "Folds, lists and composition, evaluated",
		Long: `purefp evaluates the demonstration transcript of the purefp library:
function composition, optional values, and the reductions derived from a
single right fold over a persistent list.

Examples:
  purefp transcript
  purefp transcript --format yaml --only sum --only map
  purefp fold --op product 4 1 2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file (default $"+config.PathEnv+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newTranscriptCmd(a))
	root.AddCommand(newFoldCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if a.noColor {
		cfg.Output.NoColor = true
	}
	a.cfg = cfg
	a.log = logging.New(cfg.Log.Level, cmd.ErrOrStderr())
	a.log.Debug().Interface("config", cfg).Msg("config resolved")
	return nil
}

// colorize reports whether text output to w should carry ANSI colors.
func (a *app) colorize(w io.Writer) bool {
	if a.cfg.Output.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
