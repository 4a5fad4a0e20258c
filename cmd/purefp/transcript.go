package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Pure-Company/purefp/internal/transcript"
)

func newTranscriptCmd(a *app) *cobra.Command {
	var (
		format   string
		only     []string
		numbered bool
	)

	cmd := &cobra.Command{
		Use:   "transcript",
		Short: "Print the demonstration transcript",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}
			f, err := transcript.ParseFormat(format)
			if err != nil {
				return err
			}
			for _, name := range only {
				if !slices.Contains(transcript.Names(), name) {
					return fmt.Errorf("unknown step %q (want one of %s)", name, strings.Join(transcript.Names(), ", "))
				}
			}

			style := transcript.Plain()
			if f == transcript.FormatText && a.colorize(cmd.OutOrStdout()) {
				style = transcript.Colored()
			}

			lines := 0
			out := transcript.Writer(cmd.OutOrStdout()).Tee(func(string) error {
				lines++
				return nil
			})
			if numbered {
				n := 0
				out = out.Map(func(line string) string {
					n++
					return fmt.Sprintf("%3d  %s", n, line)
				})
			}

			steps := transcript.Select(transcript.Steps(a.log), only...)
			if err := transcript.Render(out, f, steps, style); err != nil {
				return fmt.Errorf("failed to render transcript: %w", err)
			}
			a.log.Debug().Str("format", string(f)).Int("lines", lines).Msg("transcript written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json, yaml)")
	cmd.Flags().StringSliceVar(&only, "only", nil, "Only print steps with this name (repeatable)")
	cmd.Flags().BoolVarP(&numbered, "numbered", "n", false, "Prefix every output line with its number")
	return cmd
}
