package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/xdkit/pkg/datefmt"
	"github.com/dmitrymomot/xdkit/pkg/logger"
)

func newDateCmd(a *app) *cobra.Command {
	var (
		format string
		at     string
		utc    bool
	)

	cmd := &cobra.Command{
		Use:     "date [flags]",
		Short:   "Format a time through a token layout",
		GroupID: GroupCore,
		Long: `Format the current time, or the time given with --at, through a layout of
brace tokens. Run "xd tokens" for the list of tokens.

Tokens are matched exactly first, then case-insensitively: {Month} gives
"October", {MONTH} gives "OCTOBER". Unknown tokens are an error.`,
		Example: `  xd date
  xd date -f "{yyyy}-{MM}-{dd}"
  xd date -f "{Weekday}, {h12}:{mm} {P}" --at 2020-10-15T13:37:00+01:00
  XD_DATE_FORMAT="{hh24}{mm}" xd date --utc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !cmd.Flags().Changed("format") {
				format = a.settings.DateFormat
			}

			t := a.now()
			if at != "" {
				parsed, err := time.Parse(time.RFC3339Nano, at)
				if err != nil {
					return fmt.Errorf("invalid --at value %q: %w", at, err)
				}
				t = parsed
			}
			if utc {
				t = t.UTC()
			}

			out, err := datefmt.Format(t, format)
			if err != nil {
				a.log.ErrorContext(ctx, "format failed", logger.Layout(format), logger.Error(err))
				return err
			}

			a.log.DebugContext(ctx, "formatted", logger.Layout(format), logger.Time(t))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", datefmt.LayoutISO, "Token layout (env XD_DATE_FORMAT)")
	cmd.Flags().StringVar(&at, "at", "", "Time to format, RFC 3339 (default now)")
	cmd.Flags().BoolVar(&utc, "utc", false, "Convert the time to UTC before formatting")

	return cmd
}
