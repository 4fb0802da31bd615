package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/xdkit/pkg/logger"
	"github.com/dmitrymomot/xdkit/pkg/strgen"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		preset     string
		chars      string
		length     int
		interval   int
		separator  string
		presetFile string
		count      int
	)

	cmd := &cobra.Command{
		Use:     "gen [flags]",
		Short:   "Generate random strings from a preset",
		GroupID: GroupCore,
		Long: `Generate random strings by picking elements of a preset uniformly, with
replacement. A separator can be inserted every --interval elements.

Built-in presets: hex, digits, lower, upper, alpha, alnum, greek. More can be
loaded from a YAML file mapping names to lists (or strings of characters).
The output is not suitable for secrets.`,
		Example: `  xd gen
  xd gen -n 32 -i 4 -s -
  xd gen -p greek -n 4 -i 1 -s " "
  xd gen --chars a,e,i,o,u -n 10 -c 5
  xd gen --preset-file presets.yaml -p syllables -n 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()

			if !flags.Changed("preset") {
				preset = a.settings.Preset
			}
			if !flags.Changed("length") {
				length = a.settings.Length
			}
			if !flags.Changed("interval") {
				interval = a.settings.Interval
			}
			if !flags.Changed("separator") {
				separator = a.settings.Separator
			}
			if !flags.Changed("preset-file") {
				presetFile = a.settings.PresetFile
			}
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			var elements []string
			if chars != "" {
				preset = "custom"
				elements = strings.Split(chars, ",")
			} else {
				presets, err := loadPresets(presetFile)
				if err != nil {
					a.log.ErrorContext(ctx, "load presets failed", logger.Error(err))
					return err
				}
				var ok bool
				if elements, ok = presets[preset]; !ok {
					return fmt.Errorf("%w: %q (run \"xd presets\")", strgen.ErrUnknownPreset, preset)
				}
			}

			opts := &strgen.Options{
				Preset:    elements,
				Length:    length,
				Interval:  interval,
				Separator: separator,
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for range count {
				fmt.Fprintln(out, strgen.Generate(opts))
			}

			a.log.DebugContext(ctx, "generated", logger.Preset(preset, len(elements)), logger.Count(count))
			return nil
		},
	}

	cmd.Flags().StringVarP(&preset, "preset", "p", "hex", "Preset name (env XD_PRESET)")
	cmd.Flags().StringVar(&chars, "chars", "", "Comma-separated elements, overrides --preset")
	cmd.Flags().IntVarP(&length, "length", "n", 32, "Number of elements per string (env XD_LENGTH)")
	cmd.Flags().IntVarP(&interval, "interval", "i", 0, "Insert the separator every N elements (env XD_INTERVAL)")
	cmd.Flags().StringVarP(&separator, "separator", "s", "", "Separator text (env XD_SEPARATOR)")
	cmd.Flags().StringVar(&presetFile, "preset-file", "", "YAML file with extra presets (env XD_PRESET_FILE)")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "Number of strings to print")

	return cmd
}

// loadPresets returns the built-in presets merged with those in path, if any.
func loadPresets(path string) (map[string][]string, error) {
	if path == "" {
		return strgen.Presets(nil), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open preset file: %w", err)
	}
	defer f.Close()

	extra, err := strgen.LoadPresets(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return strgen.Presets(extra), nil
}
